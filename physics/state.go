// Package physics resolves the forces acting on a single mass held by a rope,
// either hanging from a ceiling or pulled along a surface at an angle.
package physics

import (
	"fmt"
	"strings"
)

// Mode selects which physical configuration applies.
type Mode int

const (
	ModeSuspended Mode = iota
	ModePulled
)

func (m Mode) String() string {
	switch m {
	case ModeSuspended:
		return "suspended"
	case ModePulled:
		return "pulled"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "suspended" or "pulled", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "suspended":
		return ModeSuspended, nil
	case "pulled":
		return ModePulled, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want suspended or pulled)", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Setup is the mode-specific part of a State. Only Hanging and Towed
// implement it, so an angle can never be read in suspended mode.
type Setup interface {
	Mode() Mode
}

// Hanging is a mass hanging at rest from a vertical rope.
type Hanging struct{}

func (Hanging) Mode() Mode { return ModeSuspended }

// Towed is a mass resting on a surface and pulled by a rope.
type Towed struct {
	Angle   float64 // degrees above horizontal, [0, 90]
	Tension float64 // newtons
}

func (Towed) Mode() Mode { return ModePulled }

// State is the input of Resolve. A nil Setup resolves as Hanging.
type State struct {
	Setup Setup
	Mass  float64 // kg
	G     float64 // m/s^2
}

// Suspended returns the state of a hanging mass.
func Suspended(mass, g float64) State {
	return State{Setup: Hanging{}, Mass: mass, G: g}
}

// Pulled returns the state of a mass pulled at angle degrees with the given tension.
func Pulled(mass, g, angle, tension float64) State {
	return State{Setup: Towed{Angle: angle, Tension: tension}, Mass: mass, G: g}
}

// Mode reports the configuration selected by s.Setup.
func (s State) Mode() Mode {
	if s.Setup == nil {
		return ModeSuspended
	}
	return s.Setup.Mode()
}

// Forces holds every resolved force magnitude, in newtons.
type Forces struct {
	Mode Mode

	Fg  float64 // weight
	Ft  float64 // tension in effect
	Fn  float64 // normal force, never negative
	Ftx float64 // horizontal tension component
	Fty float64 // vertical tension component

	// IsFloating is true when the vertical pull exceeds the weight. It is
	// also always true in suspended mode, where nothing supports the mass
	// from below; use ContactLost for the surface warning.
	IsFloating bool
}

// ContactLost reports whether a pulled mass would leave its surface.
func (f Forces) ContactLost() bool {
	return f.Mode == ModePulled && f.IsFloating
}
