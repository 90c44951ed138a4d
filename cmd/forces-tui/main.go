// Command forces-tui runs the force simulator in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/logging"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	logPath := flag.String("log", "forcelab-tui.log", "log file; the terminal is used for drawing")
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(logging.Options{Debug: config.Debug.Enabled, OutputPaths: []string{*logPath}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	logger.Info("terminal simulator started", zap.String("mode", config.Sim.Mode.String()))
	NewApp(screen).Run()
}
