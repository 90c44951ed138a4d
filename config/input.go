package config

// ActionID represents a logical simulator action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionToggleMode
	ActionMassUp
	ActionMassDown
	ActionAngleUp
	ActionAngleDown
	ActionTensionUp
	ActionTensionDown
	ActionReset
	ActionHelp
	ActionToggleComponents
	ActionScaleUp
	ActionScaleDown
	ActionFullscreen
	ActionBack
	ActionCount // Must be last - used for array sizing
)

// Repeatable reports whether holding the action keeps firing it
func (a ActionID) Repeatable() bool {
	switch a {
	case ActionMassUp, ActionMassDown,
		ActionAngleUp, ActionAngleDown,
		ActionTensionUp, ActionTensionDown:
		return true
	}
	return false
}

// InputConfig holds key repeat timing in frames
type InputConfig struct {
	RepeatDelay    int
	RepeatInterval int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		RepeatDelay:    24,
		RepeatInterval: 4,
	}
}
