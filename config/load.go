package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML shape of an override file. Keys that are absent keep
// their built-in defaults.
type File struct {
	Window     Config           `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Scales     ScaleConfig      `yaml:"scales"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Effects    EffectsConfig    `yaml:"effects"`
	Sliders    SliderConfig     `yaml:"sliders"`
}

// Current returns the active configuration in override-file form
func Current() File {
	return File{
		Window:     *C,
		Simulation: Sim,
		Scales:     Scales,
		Canvas:     Canvas,
		Effects:    Effects,
		Sliders:    Sliders,
	}
}

// Load applies YAML overrides from r on top of the active configuration.
// Nothing is applied if decoding or validation fails.
func Load(r io.Reader) error {
	f := Current()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return err
	}

	*C = f.Window
	Sim = f.Simulation
	Scales = f.Scales
	Canvas = f.Canvas
	Effects = f.Effects
	Sliders = f.Sliders
	return nil
}

// LoadFile applies the overrides stored at path
func LoadFile(path string) error {
	fh, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer fh.Close()

	if err := Load(fh); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}

// Validate checks that f describes a usable simulator
func (f File) Validate() error {
	for name, r := range map[string]Range{
		"mass":    f.Sliders.Mass,
		"angle":   f.Sliders.Angle,
		"tension": f.Sliders.Tension,
	} {
		if r.Step <= 0 || r.Max <= r.Min {
			return fmt.Errorf("slider %s: invalid range [%v, %v] step %v", name, r.Min, r.Max, r.Step)
		}
	}
	if f.Sliders.Mass.Min <= 0 {
		return fmt.Errorf("slider mass: minimum must be positive, got %v", f.Sliders.Mass.Min)
	}
	if f.Sliders.Angle.Min < 0 || f.Sliders.Angle.Max > 90 {
		return fmt.Errorf("slider angle: range must stay within [0, 90], got [%v, %v]", f.Sliders.Angle.Min, f.Sliders.Angle.Max)
	}
	if f.Sliders.Tension.Min < 0 {
		return fmt.Errorf("slider tension: minimum must be non-negative, got %v", f.Sliders.Tension.Min)
	}
	if f.Simulation.G <= 0 {
		return fmt.Errorf("simulation g must be positive, got %v", f.Simulation.G)
	}
	if f.Scales.ForceToPixels <= 0 || f.Scales.ObjectSize <= 0 {
		return fmt.Errorf("scales: forceToPixels and objectSize must be positive")
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 || f.Canvas.Width <= 0 || f.Canvas.Height <= 0 {
		return fmt.Errorf("window and canvas sizes must be positive")
	}
	return nil
}
