package physics

import (
	"errors"
	"fmt"
	"math"
)

// Resolve maps a state to its forces. It is pure and defined for every input;
// use Validate or ResolveStrict when the state comes from an untrusted source.
func Resolve(s State) Forces {
	fg := s.Mass * s.G

	towed, ok := s.Setup.(Towed)
	if !ok {
		// Static equilibrium: the rope carries the whole weight.
		return Forces{
			Mode:       ModeSuspended,
			Fg:         fg,
			Ft:         fg,
			Fn:         0,
			Ftx:        0,
			Fty:        fg,
			IsFloating: true,
		}
	}

	rad := towed.Angle * math.Pi / 180
	ft := towed.Tension
	ftx := ft * math.Cos(rad)
	fty := ft * math.Sin(rad)

	return Forces{
		Mode:       ModePulled,
		Fg:         fg,
		Ft:         ft,
		Fn:         math.Max(0, fg-fty), // a surface can only push
		Ftx:        ftx,
		Fty:        fty,
		IsFloating: fty > fg,
	}
}

var (
	ErrMass    = errors.New("mass must be a positive number of kilograms")
	ErrGravity = errors.New("gravitational acceleration must be positive")
	ErrTension = errors.New("tension must be a non-negative number of newtons")
	ErrAngle   = errors.New("angle must be between 0 and 90 degrees")
)

// Validate rejects states outside the physical domain instead of clamping them.
func Validate(s State) error {
	if !finite(s.Mass) || s.Mass <= 0 {
		return fmt.Errorf("mass %v: %w", s.Mass, ErrMass)
	}
	if !finite(s.G) || s.G <= 0 {
		return fmt.Errorf("g %v: %w", s.G, ErrGravity)
	}
	towed, ok := s.Setup.(Towed)
	if !ok {
		return nil
	}
	if !finite(towed.Tension) || towed.Tension < 0 {
		return fmt.Errorf("tension %v: %w", towed.Tension, ErrTension)
	}
	if !finite(towed.Angle) || towed.Angle < 0 || towed.Angle > 90 {
		return fmt.Errorf("angle %v: %w", towed.Angle, ErrAngle)
	}
	return nil
}

// ResolveStrict validates s before resolving it.
func ResolveStrict(s State) (Forces, error) {
	if err := Validate(s); err != nil {
		return Forces{}, err
	}
	return Resolve(s), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
