package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/fonts"
	"github.com/automoto/forcelab/logging"
	"github.com/automoto/forcelab/scenes"
	"github.com/automoto/forcelab/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// Quit ends the game loop after the current frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(saved *systems.SavedView) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSimulatorScene(g, saved)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "enable debug logging")
	flag.BoolVar(&config.Debug.ShowHitbox, "hitbox", false, "outline the drag handle hit area")
	flag.Parse()

	logger, err := logging.New(logging.Options{Debug: config.Debug.Enabled})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Fatal("invalid configuration", zap.Error(err))
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved view preferences
	var saved *systems.SavedView
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	} else if saved, err = systems.LoadView(); err != nil {
		saved = nil
	}

	if err := ebiten.RunGame(NewGame(saved)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
