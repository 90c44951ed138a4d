// Command forces resolves one configuration and prints its forces as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/physics"
	"gopkg.in/yaml.v3"
)

// Report is the YAML document written to stdout
type Report struct {
	Mode        physics.Mode `yaml:"mode"`
	Mass        float64      `yaml:"mass"`
	G           float64      `yaml:"g"`
	Angle       *float64     `yaml:"angle,omitempty"`
	Tension     *float64     `yaml:"tension,omitempty"`
	Fg          float64      `yaml:"fg"`
	Ft          float64      `yaml:"ft"`
	Fn          float64      `yaml:"fn"`
	Ftx         float64      `yaml:"ftx"`
	Fty         float64      `yaml:"fty"`
	IsFloating  bool         `yaml:"isFloating"`
	ContactLost bool         `yaml:"contactLost"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("forces", flag.ContinueOnError)
	fs.SetOutput(stderr)

	mode := config.Sim.Mode
	fs.TextVar(&mode, "mode", config.Sim.Mode, "suspended or pulled")
	mass := fs.Float64("mass", config.Sim.Mass, "mass in kg")
	g := fs.Float64("g", config.Sim.G, "gravitational acceleration in m/s^2")
	angle := fs.Float64("angle", config.Sim.PulledAngle, "rope angle above horizontal in degrees (pulled only)")
	tension := fs.Float64("tension", config.Sim.Tension, "rope tension in N (pulled only)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	st := physics.Suspended(*mass, *g)
	if mode == physics.ModePulled {
		st = physics.Pulled(*mass, *g, *angle, *tension)
	}

	f, err := physics.ResolveStrict(st)
	if err != nil {
		fmt.Fprintf(stderr, "forces: %v\n", err)
		return 1
	}

	if err := write(stdout, st, f); err != nil {
		fmt.Fprintf(stderr, "forces: %v\n", err)
		return 1
	}
	return 0
}

func write(w io.Writer, st physics.State, f physics.Forces) error {
	r := Report{
		Mode:        f.Mode,
		Mass:        st.Mass,
		G:           st.G,
		Fg:          f.Fg,
		Ft:          f.Ft,
		Fn:          f.Fn,
		Ftx:         f.Ftx,
		Fty:         f.Fty,
		IsFloating:  f.IsFloating,
		ContactLost: f.ContactLost(),
	}
	if towed, ok := st.Setup.(physics.Towed); ok {
		r.Angle = &towed.Angle
		r.Tension = &towed.Tension
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
