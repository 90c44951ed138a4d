package components

import (
	"github.com/automoto/forcelab/physics"
	"github.com/yohamta/donburi"
)

// SimulationData is the learner-adjustable input to the force resolver.
// Tension survives a mode switch; Angle is reset by it.
type SimulationData struct {
	Mode    physics.Mode
	Mass    float64 // kg
	Angle   float64 // degrees above horizontal
	Tension float64 // N
	G       float64 // m/s^2, fixed
}

var Simulation = donburi.NewComponentType[SimulationData]()
