package systems

import (
	"image/color"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/simulation"
	"github.com/automoto/forcelab/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the hit-test objects of the drag space
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitbox {
		return
	}

	d := simulation.GetOrCreateDrag(ecs.World)
	offX, offY := float64(cfg.Canvas.X), float64(cfg.Canvas.Y)

	for _, obj := range d.Space.Objects() {
		x := obj.X + offX
		y := obj.Y + offY

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvHandle) {
			c = color.RGBA{255, 0, 0, 255}
			if d.Hover {
				c = color.RGBA{0, 200, 0, 255}
			}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
