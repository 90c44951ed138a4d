package systems

import (
	"github.com/automoto/forcelab/archetypes"
	"github.com/automoto/forcelab/assets"
	"github.com/automoto/forcelab/components"
	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/logging"
	"github.com/automoto/forcelab/physics"
	"github.com/automoto/forcelab/simulation"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// GetOrCreateLayouts returns the diagram layouts, loading them on first use.
// A broken layout file falls back to the built-in geometry.
func GetOrCreateLayouts(e *ecs.ECS) assets.Layouts {
	entry, ok := components.Layout.First(e.World)
	if !ok {
		entry = archetypes.Layout.Spawn(e.World)
		layouts, err := assets.LoadEmbedded()
		if err != nil {
			logging.Provide().Warn("using built-in layout", zap.Error(err))
			fb := assets.Fallback(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.Scales.ObjectSize)
			layouts = assets.Layouts{physics.ModeSuspended: fb, physics.ModePulled: fb}
		}
		components.Layout.SetValue(entry, components.LayoutData{Layouts: layouts})
	}
	return components.Layout.Get(entry).Layouts
}

// CurrentScene lays out the diagram for the current state
func CurrentScene(e *ecs.ECS) diagram.Scene {
	mode := simulation.GetOrCreate(e.World).Mode
	return simulation.Diagram(e.World, GetOrCreateLayouts(e)[mode])
}
