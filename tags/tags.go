package tags

import "github.com/yohamta/donburi"

var (
	Simulation = donburi.NewTag().SetName("Simulation")
	View       = donburi.NewTag().SetName("View")
	Effects    = donburi.NewTag().SetName("Effects")
	Pointer    = donburi.NewTag().SetName("Pointer")
	Input      = donburi.NewTag().SetName("Input")
	Layout     = donburi.NewTag().SetName("Layout")
)

// Resolv tags for pointer hit-testing
const (
	ResolvHandle = "handle"
	ResolvCursor = "cursor"
)
