package simulation

import (
	"math"

	"github.com/automoto/forcelab/archetypes"
	"github.com/automoto/forcelab/components"
	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/yohamta/donburi"
)

// GetOrCreateView returns the singleton view preferences
func GetOrCreateView(w donburi.World) *components.ViewData {
	entry, ok := components.View.First(w)
	if !ok {
		entry = archetypes.View.Spawn(w)
		components.View.SetValue(entry, components.ViewData{
			ForceToPixels:  config.Scales.ForceToPixels,
			ShowComponents: config.View.ShowComponents,
		})
	}
	return components.View.Get(entry)
}

// ToggleComponents shows or hides the dashed FTx / FTy arrows
func ToggleComponents(w donburi.World) {
	v := GetOrCreateView(w)
	v.ShowComponents = !v.ShowComponents
	v.Dirty = true
}

// ScaleArrows changes the arrow scale by whole steps within the configured bounds
func ScaleArrows(w donburi.World, steps int) bool {
	v := GetOrCreateView(w)
	next := clampScale(v.ForceToPixels + float64(steps)*config.Scales.ScaleStep)
	if next == v.ForceToPixels {
		return false
	}
	v.ForceToPixels = next
	v.Dirty = true
	return true
}

func clampScale(s float64) float64 {
	return math.Min(config.Scales.MaxForceToPixels, math.Max(config.Scales.MinForceToPixels, s))
}

// SetHelp opens or closes the help window
func SetHelp(w donburi.World, open bool) {
	GetOrCreateView(w).HelpOpen = open
}

// ToggleFullscreen flips the fullscreen preference and returns the new value
func ToggleFullscreen(w donburi.World) bool {
	v := GetOrCreateView(w)
	v.Fullscreen = !v.Fullscreen
	v.Dirty = true
	return v.Fullscreen
}

// ApplyView restores saved preferences without marking them dirty
func ApplyView(w donburi.World, scale float64, showComponents, fullscreen bool) {
	v := GetOrCreateView(w)
	if scale > 0 {
		v.ForceToPixels = clampScale(scale)
	}
	v.ShowComponents = showComponents
	v.Fullscreen = fullscreen
}

// DiagramOptions combines the configured scales with the view and effect state
func DiagramOptions(w donburi.World) diagram.Options {
	v := GetOrCreateView(w)
	o := diagram.DefaultOptions()
	o.ForceToPixels = v.ForceToPixels
	o.ShowComponents = v.ShowComponents
	o.Lift = GetOrCreateLift(w).Value
	return o
}

// Diagram lays out the current state on l
func Diagram(w donburi.World, l diagram.Layout) diagram.Scene {
	st := Current(w)
	return diagram.Build(st, Resolve(w), l, DiagramOptions(w))
}
