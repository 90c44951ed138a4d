package config

import "math"

// Range describes a bounded, stepped slider value
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
	Unit string  `yaml:"unit"`
}

// Clamp limits v to [Min, Max]
func (r Range) Clamp(v float64) float64 {
	return math.Min(r.Max, math.Max(r.Min, v))
}

// Snap rounds v to the nearest step counted from Min, then clamps it
func (r Range) Snap(v float64) float64 {
	return r.FromTick(r.Tick(v))
}

// Ticks is the number of steps between Min and Max
func (r Range) Ticks() int {
	if r.Step <= 0 {
		return 0
	}
	return int(math.Round((r.Max - r.Min) / r.Step))
}

// Tick converts a value to its nearest slider position
func (r Range) Tick(v float64) int {
	if r.Step <= 0 {
		return 0
	}
	t := int(math.Round((r.Clamp(v) - r.Min) / r.Step))
	return min(max(t, 0), r.Ticks())
}

// FromTick converts a slider position back to a value
func (r Range) FromTick(t int) float64 {
	t = min(max(t, 0), r.Ticks())
	return r.Clamp(r.Min + float64(t)*r.Step)
}

// SliderConfig contains the bounds of every user-adjustable input
type SliderConfig struct {
	Mass    Range `yaml:"mass"`
	Angle   Range `yaml:"angle"`
	Tension Range `yaml:"tension"`
}

// Sliders is the global slider configuration
var Sliders SliderConfig

// ViewConfig contains view preference defaults
type ViewConfig struct {
	ShowComponents bool
	AppName        string // gdata storage namespace
}

// View is the global view preference configuration
var View ViewConfig

func init() {
	Sliders = SliderConfig{
		Mass:    Range{Min: 0.5, Max: 50, Step: 0.5, Unit: "kg"},
		Angle:   Range{Min: 0, Max: 90, Step: 1, Unit: "°"},
		Tension: Range{Min: 0, Max: 500, Step: 10, Unit: "N"},
	}

	View = ViewConfig{
		ShowComponents: true,
		AppName:        "forcelab",
	}
}
