package systems

import (
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEffects advances the lift and warning badge tweens by one tick
func UpdateEffects(ecs *ecs.ECS) {
	simulation.StepEffects(ecs.World, 1/float64(ebiten.TPS()))
}

// ProcessEvents delivers queued StateChanged events to their subscribers
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
