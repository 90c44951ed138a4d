package systems

import (
	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateDrag lets the mouse pull the tension arrow tip in PULLED mode
func UpdateDrag(e *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	p := dmath.Vec2{X: float64(x - cfg.Canvas.X), Y: float64(y - cfg.Canvas.Y)}

	simulation.Pointer(e.World, CurrentScene(e), p,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	)

	d := simulation.GetOrCreateDrag(e.World)
	switch {
	case d.Dragging:
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case d.Hover:
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
