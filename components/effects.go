package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData animates a single value toward Target. Tween is nil once the
// value has settled.
type TweenData struct {
	Tween  *gween.Tween
	Value  float64
	Target float64
}

// Lift raises the block off the surface when contact is lost (pixels)
var Lift = donburi.NewComponentType[TweenData]()

// Badge fades the contact-lost warning in and out (alpha 0..1)
var Badge = donburi.NewComponentType[TweenData]()
