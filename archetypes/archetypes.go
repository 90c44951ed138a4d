package archetypes

import (
	"github.com/automoto/forcelab/components"
	"github.com/automoto/forcelab/tags"
	"github.com/yohamta/donburi"
)

var (
	Simulation = newArchetype(
		tags.Simulation,
		components.Simulation,
	)
	View = newArchetype(
		tags.View,
		components.View,
	)
	Effects = newArchetype(
		tags.Effects,
		components.Lift,
		components.Badge,
	)
	Pointer = newArchetype(
		tags.Pointer,
		components.Drag,
	)
	Input = newArchetype(
		tags.Input,
		components.Input,
	)
	Layout = newArchetype(
		tags.Layout,
		components.Layout,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity carrying the archetype's components plus cs
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType{}, a.components...), cs...)
	return w.Entry(w.Create(all...))
}
