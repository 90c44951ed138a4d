package config

import (
	"image/color"

	"github.com/automoto/forcelab/physics"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// SimulationConfig is the state the simulator starts with and resets to
type SimulationConfig struct {
	Mode    physics.Mode `yaml:"mode"`
	Mass    float64      `yaml:"mass"`    // kg
	Angle   float64      `yaml:"angle"`   // degrees
	Tension float64      `yaml:"tension"` // N
	G       float64      `yaml:"g"`       // m/s^2

	// Angle applied when switching into each mode
	SuspendedAngle float64 `yaml:"suspendedAngle"`
	PulledAngle    float64 `yaml:"pulledAngle"`
}

// ScaleConfig contains the diagram's visual constants
type ScaleConfig struct {
	ForceToPixels    float64 `yaml:"forceToPixels"` // 1 N = ForceToPixels px
	MinForceToPixels float64 `yaml:"minForceToPixels"`
	MaxForceToPixels float64 `yaml:"maxForceToPixels"`
	ScaleStep        float64 `yaml:"scaleStep"`
	ObjectSize       float64 `yaml:"objectSize"`
	LiftOffset       float64 `yaml:"liftOffset"` // px the block rises when contact is lost
	ArrowHead        float64 `yaml:"arrowHead"`
	LabelOffset      float64 `yaml:"labelOffset"`
	ArrowWidth       float64 `yaml:"arrowWidth"`
	DashLength       float64 `yaml:"dashLength"`
	HandleSize       float64 `yaml:"handleSize"` // drag handle at the tension tip
}

// CanvasConfig places the diagram on screen
type CanvasConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EffectsConfig contains tween durations in seconds
type EffectsConfig struct {
	LiftDuration  float64 `yaml:"liftDuration"`
	BadgeDuration float64 `yaml:"badgeDuration"`
}

// ColorConfig is the diagram palette
type ColorConfig struct {
	Background color.RGBA
	Canvas     color.RGBA
	Object     color.RGBA
	Outline    color.RGBA
	Surface    color.RGBA
	Ceiling    color.RGBA
	Rope       color.RGBA
	Weight     color.RGBA
	Tension    color.RGBA
	Normal     color.RGBA
	Components color.RGBA
	Text       color.RGBA
	Handle     color.RGBA
	WarningBg  color.RGBA
	WarningFg  color.RGBA
}

// DebugConfig contains command-line debug options
type DebugConfig struct {
	Enabled    bool // debug logging
	ShowHitbox bool // outline drag handles
}

// Global configuration instances
var C *Config
var Sim SimulationConfig
var Scales ScaleConfig
var Canvas CanvasConfig
var Effects EffectsConfig
var Colors ColorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Slate        = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	DarkSlate    = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Blue         = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	LightBlue    = color.RGBA{R: 239, G: 246, B: 255, A: 255}
	NavyBlue     = color.RGBA{R: 30, G: 58, B: 138, A: 255}
	Amber        = color.RGBA{R: 254, G: 243, B: 199, A: 255}
	DarkAmber    = color.RGBA{R: 146, G: 64, B: 14, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)

// DefaultSimulation returns the documented starting state
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		Mode:           physics.ModeSuspended,
		Mass:           10,
		Angle:          0,
		Tension:        100,
		G:              10,
		SuspendedAngle: 90,
		PulledAngle:    0,
	}
}

func init() {
	C = &Config{
		Width:  1000,
		Height: 620,
		Title:  "Force Explorer: tension and normal force",
	}

	Sim = DefaultSimulation()

	Scales = ScaleConfig{
		ForceToPixels:    2,
		MinForceToPixels: 0.25,
		MaxForceToPixels: 4,
		ScaleStep:        0.25,
		ObjectSize:       60,
		LiftOffset:       20,
		ArrowHead:        10,
		LabelOffset:      15,
		ArrowWidth:       3,
		DashLength:       5,
		HandleSize:       16,
	}

	Canvas = CanvasConfig{
		X:      20,
		Y:      20,
		Width:  600,
		Height: 400,
	}

	Effects = EffectsConfig{
		LiftDuration:  0.3,
		BadgeDuration: 0.25,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 240, G: 244, B: 250, A: 255},
		Canvas:     White,
		Object:     color.RGBA{R: 255, G: 217, B: 102, A: 255},
		Outline:    Black,
		Surface:    color.RGBA{R: 139, G: 139, B: 139, A: 255},
		Ceiling:    color.RGBA{R: 68, G: 68, B: 68, A: 255},
		Rope:       color.RGBA{R: 85, G: 85, B: 85, A: 255},
		Weight:     color.RGBA{R: 51, G: 102, B: 255, A: 255},
		Tension:    color.RGBA{R: 255, G: 51, B: 51, A: 255},
		Normal:     color.RGBA{R: 51, G: 170, B: 51, A: 255},
		Components: color.RGBA{R: 153, G: 31, B: 31, A: 153}, // premultiplied 60% of Tension
		Text:       color.RGBA{R: 26, G: 26, B: 26, A: 255},
		Handle:     color.RGBA{R: 96, G: 19, B: 19, A: 96},
		WarningBg:  Amber,
		WarningFg:  DarkAmber,
	}
}
