package simulation

import (
	"testing"

	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var dragLayout = diagram.Layout{
	Width:  600,
	Height: 400,
	Block:  dmath.Vec2{X: 300, Y: 200},
	Ground: diagram.Rect{X: 50, Y: 232, W: 500, H: 4},
}

func TestOverHandle(t *testing.T) {
	w := donburi.NewWorld()
	d := GetOrCreateDrag(w)
	MoveHandle(d, dmath.Vec2{X: 500, Y: 200})

	require.True(t, OverHandle(d, dmath.Vec2{X: 500, Y: 200}))
	require.True(t, OverHandle(d, dmath.Vec2{X: 493, Y: 207}))
	require.False(t, OverHandle(d, dmath.Vec2{X: 520, Y: 200}))
	require.False(t, OverHandle(d, dmath.Vec2{X: 300, Y: 200}))
	require.False(t, OverHandle(d, dmath.Vec2{X: -40, Y: -40}))
}

func TestPointerDrag(t *testing.T) {
	w := donburi.NewWorld()
	SetMode(w, physics.ModePulled)

	sc := Diagram(w, dragLayout)
	tip := sc.TensionTip
	require.Equal(t, dmath.Vec2{X: 500, Y: 200}, tip)

	// press away from the handle does nothing
	require.False(t, Pointer(w, sc, dmath.Vec2{X: 100, Y: 100}, true, true))
	require.False(t, GetOrCreateDrag(w).Dragging)

	require.False(t, Pointer(w, sc, tip, true, true))
	require.True(t, GetOrCreateDrag(w).Dragging)

	// straight up at 150 px is 90 degrees and 75 N, snapped to 80
	require.True(t, Pointer(w, Diagram(w, dragLayout), dmath.Vec2{X: 300, Y: 50}, true, false))
	require.Equal(t, 90.0, GetOrCreate(w).Angle)
	require.Equal(t, 80.0, GetOrCreate(w).Tension)

	require.False(t, Pointer(w, Diagram(w, dragLayout), dmath.Vec2{X: 300, Y: 50}, false, false))
	require.False(t, GetOrCreateDrag(w).Dragging)
}

func TestPointerIgnoredWhenSuspendedOrHelpOpen(t *testing.T) {
	w := donburi.NewWorld()
	sc := Diagram(w, dragLayout)
	require.False(t, Pointer(w, sc, sc.TensionTip, true, true))
	require.False(t, GetOrCreateDrag(w).Dragging)

	SetMode(w, physics.ModePulled)
	SetHelp(w, true)
	sc = Diagram(w, dragLayout)
	require.False(t, Pointer(w, sc, sc.TensionTip, true, true))
	require.False(t, GetOrCreateDrag(w).Dragging)
}
