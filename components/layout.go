package components

import (
	"github.com/automoto/forcelab/assets"
	"github.com/yohamta/donburi"
)

// LayoutData holds the diagram anchors for every mode
type LayoutData struct {
	Layouts assets.Layouts
}

var Layout = donburi.NewComponentType[LayoutData]()
