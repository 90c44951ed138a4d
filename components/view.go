package components

import "github.com/yohamta/donburi"

// ViewData holds presentation preferences that never affect the physics
type ViewData struct {
	ForceToPixels  float64 // arrow length per newton
	ShowComponents bool    // dashed FTx / FTy arrows
	Fullscreen     bool
	HelpOpen       bool
	Dirty          bool // preferences changed since the last save
}

var View = donburi.NewComponentType[ViewData]()
