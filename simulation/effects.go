package simulation

import (
	"github.com/automoto/forcelab/archetypes"
	"github.com/automoto/forcelab/components"
	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func getOrCreateEffects(w donburi.World) *donburi.Entry {
	entry, ok := components.Lift.First(w)
	if !ok {
		entry = archetypes.Effects.Spawn(w)
	}
	return entry
}

// GetOrCreateLift returns the block lift tween in pixels
func GetOrCreateLift(w donburi.World) *components.TweenData {
	return components.Lift.Get(getOrCreateEffects(w))
}

// GetOrCreateBadge returns the warning badge tween, as alpha in [0, 1]
func GetOrCreateBadge(w donburi.World) *components.TweenData {
	return components.Badge.Get(getOrCreateEffects(w))
}

// WatchContact animates the lift and badge whenever the state changes
func WatchContact(w donburi.World) {
	StateChanged.Subscribe(w, func(w donburi.World, c Change) {
		Retarget(w, physics.Resolve(c.State).ContactLost())
	})
}

// Retarget tweens the effects toward the given contact state
func Retarget(w donburi.World, contactLost bool) {
	lift, badge := 0.0, 0.0
	if contactLost {
		lift, badge = config.Scales.LiftOffset, 1
	}
	retarget(GetOrCreateLift(w), lift, config.Effects.LiftDuration, ease.OutQuad)
	retarget(GetOrCreateBadge(w), badge, config.Effects.BadgeDuration, ease.Linear)
}

// Settle jumps the effects straight to the given contact state
func Settle(w donburi.World, contactLost bool) {
	Retarget(w, contactLost)
	for _, t := range []*components.TweenData{GetOrCreateLift(w), GetOrCreateBadge(w)} {
		t.Value = t.Target
		t.Tween = nil
	}
}

func retarget(t *components.TweenData, target, duration float64, fn ease.TweenFunc) {
	if t.Target == target && (t.Tween != nil || t.Value == target) {
		return
	}
	t.Target = target
	if duration <= 0 {
		t.Value = target
		t.Tween = nil
		return
	}
	t.Tween = gween.New(float32(t.Value), float32(target), float32(duration), fn)
}

// StepEffects advances every running tween by dt seconds
func StepEffects(w donburi.World, dt float64) {
	for _, t := range []*components.TweenData{GetOrCreateLift(w), GetOrCreateBadge(w)} {
		if t.Tween == nil {
			continue
		}
		v, done := t.Tween.Update(float32(dt))
		t.Value = float64(v)
		if done {
			t.Value = t.Target
			t.Tween = nil
		}
	}
}
