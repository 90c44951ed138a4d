package simulation

import (
	"math"
	"testing"

	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// recorder collects StateChanged deliveries for one world
type recorder struct {
	changes []Change
}

func newWorld(t *testing.T) (donburi.World, *recorder) {
	t.Helper()
	w := donburi.NewWorld()
	rec := &recorder{}
	StateChanged.Subscribe(w, func(_ donburi.World, c Change) {
		rec.changes = append(rec.changes, c)
	})
	return w, rec
}

func (r *recorder) drain(w donburi.World) []Change {
	events.ProcessAllEvents(w)
	out := r.changes
	r.changes = nil
	return out
}

func TestGetOrCreateDefaults(t *testing.T) {
	w, rec := newWorld(t)

	d := GetOrCreate(w)
	require.Equal(t, physics.ModeSuspended, d.Mode)
	require.Equal(t, 10.0, d.Mass)
	require.Equal(t, 0.0, d.Angle)
	require.Equal(t, 100.0, d.Tension)
	require.Equal(t, 10.0, d.G)

	require.Same(t, d, GetOrCreate(w))
	require.Empty(t, rec.drain(w))
}

func TestSetModeAngleRules(t *testing.T) {
	w, rec := newWorld(t)

	require.True(t, SetMode(w, physics.ModePulled))
	require.Equal(t, 0.0, GetOrCreate(w).Angle)
	require.True(t, SetAngle(w, 35))

	require.True(t, SetMode(w, physics.ModeSuspended))
	require.Equal(t, 90.0, GetOrCreate(w).Angle)

	require.True(t, SetMode(w, physics.ModePulled))
	require.Equal(t, 0.0, GetOrCreate(w).Angle)
	require.Equal(t, 100.0, GetOrCreate(w).Tension)

	require.False(t, SetMode(w, physics.ModePulled))

	changes := rec.drain(w)
	require.Len(t, changes, 4)
	require.Equal(t, FieldMode, changes[0].Field)
	require.Equal(t, physics.ModePulled, changes[0].State.Mode())
	require.Equal(t, FieldAngle, changes[1].Field)
	require.Equal(t, physics.ModeSuspended, changes[2].State.Mode())
}

func TestToggleMode(t *testing.T) {
	w, _ := newWorld(t)

	ToggleMode(w)
	require.Equal(t, physics.ModePulled, GetOrCreate(w).Mode)
	ToggleMode(w)
	require.Equal(t, physics.ModeSuspended, GetOrCreate(w).Mode)
}

func TestSettersSnapAndClamp(t *testing.T) {
	w, _ := newWorld(t)
	SetMode(w, physics.ModePulled)

	tests := []struct {
		name string
		set  func(donburi.World, float64) bool
		get  func() float64
		in   float64
		want float64
	}{
		{"mass snaps", SetMass, func() float64 { return GetOrCreate(w).Mass }, 12.3, 12.5},
		{"mass clamps low", SetMass, func() float64 { return GetOrCreate(w).Mass }, 0, 0.5},
		{"mass clamps high", SetMass, func() float64 { return GetOrCreate(w).Mass }, 80, 50},
		{"angle snaps", SetAngle, func() float64 { return GetOrCreate(w).Angle }, 29.6, 30},
		{"angle clamps", SetAngle, func() float64 { return GetOrCreate(w).Angle }, 135, 90},
		{"angle floor", SetAngle, func() float64 { return GetOrCreate(w).Angle }, -10, 0},
		{"tension snaps", SetTension, func() float64 { return GetOrCreate(w).Tension }, 204, 200},
		{"tension clamps", SetTension, func() float64 { return GetOrCreate(w).Tension }, 9000, 500},
		{"tension infinite", SetTension, func() float64 { return GetOrCreate(w).Tension }, math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.set(w, tt.in)
			require.Equal(t, tt.want, tt.get())
		})
	}
}

func TestNaNIgnored(t *testing.T) {
	w, rec := newWorld(t)
	require.False(t, SetMass(w, math.NaN()))
	require.Equal(t, 10.0, GetOrCreate(w).Mass)
	require.Empty(t, rec.drain(w))
}

func TestSuspendedIgnoresAngleAndTension(t *testing.T) {
	w, rec := newWorld(t)

	require.False(t, SetAngle(w, 45))
	require.False(t, SetTension(w, 300))
	require.False(t, Nudge(w, FieldTension, 3))
	require.Equal(t, 100.0, GetOrCreate(w).Tension)
	require.Empty(t, rec.drain(w))
}

func TestPublishOnlyOnEffectiveChange(t *testing.T) {
	w, rec := newWorld(t)

	require.False(t, SetMass(w, 10))
	require.False(t, SetMass(w, 10.1)) // snaps back to 10
	require.True(t, SetMass(w, 20))
	require.False(t, SetMass(w, 20))

	changes := rec.drain(w)
	require.Len(t, changes, 1)
	require.Equal(t, FieldMass, changes[0].Field)
	require.Equal(t, 20.0, changes[0].State.Mass)
}

func TestNudge(t *testing.T) {
	w, _ := newWorld(t)

	require.True(t, Nudge(w, FieldMass, 3))
	require.Equal(t, 11.5, GetOrCreate(w).Mass)
	require.True(t, Nudge(w, FieldMass, -1))
	require.Equal(t, 11.0, GetOrCreate(w).Mass)

	SetMode(w, physics.ModePulled)
	require.True(t, Nudge(w, FieldAngle, 5))
	require.Equal(t, 5.0, GetOrCreate(w).Angle)
	require.True(t, Nudge(w, FieldTension, -2))
	require.Equal(t, 80.0, GetOrCreate(w).Tension)

	require.True(t, Nudge(w, FieldAngle, -10))
	require.Equal(t, 0.0, GetOrCreate(w).Angle)
	require.False(t, Nudge(w, FieldAngle, -1))
	require.False(t, Nudge(w, FieldMode, 1))
}

func TestReset(t *testing.T) {
	w, rec := newWorld(t)
	require.False(t, Reset(w))

	SetMode(w, physics.ModePulled)
	SetTension(w, 400)
	SetMass(w, 3)
	rec.drain(w)

	require.True(t, Reset(w))
	d := GetOrCreate(w)
	require.Equal(t, physics.ModeSuspended, d.Mode)
	require.Equal(t, 10.0, d.Mass)
	require.Equal(t, 100.0, d.Tension)

	changes := rec.drain(w)
	require.Len(t, changes, 1)
	require.Equal(t, FieldAll, changes[0].Field)
}

func TestChangeCarriesResolvableState(t *testing.T) {
	w, rec := newWorld(t)
	SetMode(w, physics.ModePulled)
	SetAngle(w, 90)
	SetTension(w, 150)

	changes := rec.drain(w)
	require.NotEmpty(t, changes)
	f := physics.Resolve(changes[len(changes)-1].State)
	require.True(t, f.ContactLost())
	require.Equal(t, 0.0, f.Fn)
}

func TestSnapshot(t *testing.T) {
	w, _ := newWorld(t)
	require.Equal(t, physics.Suspended(10, 10), Current(w))

	SetMode(w, physics.ModePulled)
	SetAngle(w, 30)
	require.Equal(t, physics.Pulled(10, 10, 30, 100), Current(w))
}
