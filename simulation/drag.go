package simulation

import (
	"math"

	"github.com/automoto/forcelab/archetypes"
	"github.com/automoto/forcelab/components"
	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/physics"
	"github.com/automoto/forcelab/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

const dragCellSize = 4

// GetOrCreateDrag returns the drag state, creating a hit-test space the size
// of the canvas
func GetOrCreateDrag(w donburi.World) *components.DragData {
	entry, ok := components.Drag.First(w)
	if !ok {
		entry = archetypes.Pointer.Spawn(w)
		space := resolv.NewSpace(config.Canvas.Width, config.Canvas.Height, dragCellSize, dragCellSize)
		handle := resolv.NewObject(0, 0, config.Scales.HandleSize, config.Scales.HandleSize, tags.ResolvHandle)
		cursor := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
		space.Add(handle, cursor)
		components.Drag.SetValue(entry, components.DragData{
			Space:  space,
			Handle: handle,
			Cursor: cursor,
		})
	}
	return components.Drag.Get(entry)
}

// MoveHandle centres the drag handle on the tension arrow tip
func MoveHandle(d *components.DragData, tip dmath.Vec2) {
	d.Handle.X = tip.X - d.Handle.W/2
	d.Handle.Y = tip.Y - d.Handle.H/2
	d.Handle.Update()
}

// OverHandle reports whether the canvas point p is on the drag handle
func OverHandle(d *components.DragData, p dmath.Vec2) bool {
	d.Cursor.X = math.Floor(p.X)
	d.Cursor.Y = math.Floor(p.Y)
	d.Cursor.Update()

	if d.Cursor.Check(0, 0, tags.ResolvHandle) == nil {
		return false
	}
	h := d.Handle
	return p.X >= h.X && p.X < h.X+h.W && p.Y >= h.Y && p.Y < h.Y+h.H
}

// Pointer feeds one frame of pointer state for the diagram sc. A press on
// the handle starts a drag; while held, the pointer sets angle and tension.
// Reports whether the drag changed the state.
func Pointer(w donburi.World, sc diagram.Scene, p dmath.Vec2, pressed, justPressed bool) bool {
	d := GetOrCreateDrag(w)
	if sc.Mode != physics.ModePulled || GetOrCreateView(w).HelpOpen {
		d.Dragging = false
		d.Hover = false
		return false
	}

	MoveHandle(d, sc.TensionTip)
	d.Hover = OverHandle(d, p)

	if justPressed && d.Hover {
		d.Dragging = true
	}
	if !pressed {
		d.Dragging = false
		return false
	}
	if !d.Dragging {
		return false
	}

	angle, tension := diagram.PullAt(sc.Origin, p, DiagramOptions(w))
	changed := SetAngle(w, angle)
	if SetTension(w, tension) {
		changed = true
	}
	return changed
}
