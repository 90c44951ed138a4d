package systems

import (
	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// nudges maps repeatable actions to the field and direction they move
var nudges = []struct {
	action cfg.ActionID
	field  simulation.Field
	steps  int
}{
	{cfg.ActionMassUp, simulation.FieldMass, 1},
	{cfg.ActionMassDown, simulation.FieldMass, -1},
	{cfg.ActionAngleUp, simulation.FieldAngle, 1},
	{cfg.ActionAngleDown, simulation.FieldAngle, -1},
	{cfg.ActionTensionUp, simulation.FieldTension, 1},
	{cfg.ActionTensionDown, simulation.FieldTension, -1},
}

// NewUpdateControls creates the keyboard/gamepad system. quit is called when
// Back is pressed with no window open.
func NewUpdateControls(quit func()) ecs.System {
	return func(e *ecs.ECS) {
		w := e.World
		input := getOrCreateInput(e)
		view := simulation.GetOrCreateView(w)

		if GetAction(input, cfg.ActionBack).JustPressed {
			if view.HelpOpen {
				simulation.SetHelp(w, false)
			} else if quit != nil {
				quit()
			}
			return
		}
		if GetAction(input, cfg.ActionHelp).JustPressed {
			simulation.SetHelp(w, !view.HelpOpen)
			return
		}
		if GetAction(input, cfg.ActionFullscreen).JustPressed {
			ebiten.SetFullscreen(simulation.ToggleFullscreen(w))
		}
		if view.HelpOpen {
			return
		}

		if GetAction(input, cfg.ActionToggleMode).JustPressed {
			simulation.ToggleMode(w)
		}
		if GetAction(input, cfg.ActionReset).JustPressed {
			simulation.Reset(w)
		}
		for _, n := range nudges {
			if GetAction(input, n.action).Repeat {
				simulation.Nudge(w, n.field, n.steps)
			}
		}

		if GetAction(input, cfg.ActionToggleComponents).JustPressed {
			simulation.ToggleComponents(w)
		}
		if GetAction(input, cfg.ActionScaleUp).Repeat {
			simulation.ScaleArrows(w, 1)
		}
		if GetAction(input, cfg.ActionScaleDown).Repeat {
			simulation.ScaleArrows(w, -1)
		}
	}
}
