package systems

import (
	"image/color"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/fonts"
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// WarningText is shown while a pulled block has lost contact with the surface
const WarningText = "Contact lost: the object lifts off the surface"

const (
	badgePadX   = 12
	badgePadY   = 6
	badgeMargin = 10
)

// DrawWarning renders the contact-lost badge at the top of the canvas,
// faded by the badge tween.
func DrawWarning(e *ecs.ECS, screen *ebiten.Image) {
	alpha := simulation.GetOrCreateBadge(e.World).Value
	if alpha <= 0 {
		return
	}

	tw, th := fonts.Measure(fonts.Badge, WarningText)
	bw := tw + 2*badgePadX
	bh := th + 2*badgePadY
	x := cfg.Canvas.X + (cfg.Canvas.Width-bw)/2
	y := cfg.Canvas.Y + badgeMargin

	vector.FillRect(screen, float32(x), float32(y), float32(bw), float32(bh), fade(cfg.Colors.WarningBg, alpha), false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(bw), float32(bh), 1, fade(cfg.Colors.WarningFg, alpha), false)
	text.Draw(screen, WarningText, fonts.Badge.Get(), x+badgePadX, y+badgePadY+th*3/4, fade(cfg.Colors.WarningFg, alpha))
}

// fade scales a premultiplied color by alpha in [0, 1]
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
