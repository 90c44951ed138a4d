// Package simulation owns the mutable simulator state and announces every
// effective change on the world's event bus.
package simulation

import (
	"math"

	"github.com/automoto/forcelab/archetypes"
	"github.com/automoto/forcelab/components"
	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/logging"
	"github.com/automoto/forcelab/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// Field names an adjustable input
type Field int

const (
	FieldMode Field = iota
	FieldMass
	FieldAngle
	FieldTension
	FieldAll // reset
)

func (f Field) String() string {
	switch f {
	case FieldMode:
		return "mode"
	case FieldMass:
		return "mass"
	case FieldAngle:
		return "angle"
	case FieldTension:
		return "tension"
	default:
		return "all"
	}
}

// Change is published after the state was modified
type Change struct {
	State physics.State
	Field Field
}

// StateChanged delivers a Change to subscribers when the world processes its events
var StateChanged = events.NewEventType[Change]()

// GetOrCreate returns the singleton simulation state, creating it from the
// configured defaults if needed
func GetOrCreate(w donburi.World) *components.SimulationData {
	entry, ok := components.Simulation.First(w)
	if !ok {
		entry = archetypes.Simulation.Spawn(w)
		components.Simulation.SetValue(entry, initial())
	}
	return components.Simulation.Get(entry)
}

func initial() components.SimulationData {
	return components.SimulationData{
		Mode:    config.Sim.Mode,
		Mass:    config.Sliders.Mass.Snap(config.Sim.Mass),
		Angle:   config.Sliders.Angle.Snap(config.Sim.Angle),
		Tension: config.Sliders.Tension.Snap(config.Sim.Tension),
		G:       config.Sim.G,
	}
}

// Snapshot converts the mutable state into the resolver's input
func Snapshot(d components.SimulationData) physics.State {
	if d.Mode == physics.ModePulled {
		return physics.Pulled(d.Mass, d.G, d.Angle, d.Tension)
	}
	return physics.Suspended(d.Mass, d.G)
}

// Current returns the state as the resolver sees it
func Current(w donburi.World) physics.State {
	return Snapshot(*GetOrCreate(w))
}

// SetMode switches the scenario. Entering SUSPENDED puts the rope vertical,
// entering PULLED lays it horizontal.
func SetMode(w donburi.World, mode physics.Mode) bool {
	d := GetOrCreate(w)
	if d.Mode == mode {
		return false
	}
	d.Mode = mode
	if mode == physics.ModePulled {
		d.Angle = config.Sliders.Angle.Snap(config.Sim.PulledAngle)
	} else {
		d.Angle = config.Sliders.Angle.Snap(config.Sim.SuspendedAngle)
	}
	publish(w, d, FieldMode)
	return true
}

// ToggleMode flips between SUSPENDED and PULLED
func ToggleMode(w donburi.World) {
	if GetOrCreate(w).Mode == physics.ModePulled {
		SetMode(w, physics.ModeSuspended)
		return
	}
	SetMode(w, physics.ModePulled)
}

// SetMass snaps mass to the slider step and reports whether it changed
func SetMass(w donburi.World, mass float64) bool {
	d := GetOrCreate(w)
	return set(w, d, &d.Mass, config.Sliders.Mass, mass, FieldMass)
}

// SetAngle snaps the rope angle. Ignored in SUSPENDED mode where the rope
// is always vertical.
func SetAngle(w donburi.World, angle float64) bool {
	d := GetOrCreate(w)
	if d.Mode != physics.ModePulled {
		return false
	}
	return set(w, d, &d.Angle, config.Sliders.Angle, angle, FieldAngle)
}

// SetTension snaps the applied tension. Ignored in SUSPENDED mode where the
// tension is whatever holds the weight.
func SetTension(w donburi.World, tension float64) bool {
	d := GetOrCreate(w)
	if d.Mode != physics.ModePulled {
		return false
	}
	return set(w, d, &d.Tension, config.Sliders.Tension, tension, FieldTension)
}

// Nudge moves a field by whole slider steps
func Nudge(w donburi.World, f Field, steps int) bool {
	d := GetOrCreate(w)
	switch f {
	case FieldMass:
		return SetMass(w, d.Mass+float64(steps)*config.Sliders.Mass.Step)
	case FieldAngle:
		return SetAngle(w, d.Angle+float64(steps)*config.Sliders.Angle.Step)
	case FieldTension:
		return SetTension(w, d.Tension+float64(steps)*config.Sliders.Tension.Step)
	}
	return false
}

// Reset restores the configured starting state
func Reset(w donburi.World) bool {
	d := GetOrCreate(w)
	next := initial()
	if *d == next {
		return false
	}
	*d = next
	publish(w, d, FieldAll)
	return true
}

func set(w donburi.World, d *components.SimulationData, dst *float64, r config.Range, v float64, f Field) bool {
	if math.IsNaN(v) {
		return false
	}
	v = r.Snap(v)
	if *dst == v {
		return false
	}
	*dst = v
	publish(w, d, f)
	return true
}

func publish(w donburi.World, d *components.SimulationData, f Field) {
	logging.Provide().Debug("simulation changed",
		zap.Stringer("field", f),
		zap.Stringer("mode", d.Mode),
		zap.Float64("mass", d.Mass),
		zap.Float64("angle", d.Angle),
		zap.Float64("tension", d.Tension),
	)
	StateChanged.Publish(w, Change{State: Snapshot(*d), Field: f})
}

// Resolve computes the forces for the current state
func Resolve(w donburi.World) physics.Forces {
	return physics.Resolve(Current(w))
}
