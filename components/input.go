package components

import (
	cfg "github.com/automoto/forcelab/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
	Repeat       bool // JustPressed, or a key-repeat tick while held
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Held     [cfg.ActionCount]int // frames the action has been held
}

var Input = donburi.NewComponentType[InputData]()
