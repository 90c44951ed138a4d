package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DragData tracks the tension arrow's drag handle
type DragData struct {
	Space    *resolv.Space
	Handle   *resolv.Object // follows the FT arrow tip
	Cursor   *resolv.Object
	Dragging bool
	Hover    bool
}

var Drag = donburi.NewComponentType[DragData]()
