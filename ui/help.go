package ui

import (
	stdimage "image"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/simulation"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

const (
	helpWidth  = 560
	helpHeight = 420
)

var helpSections = []struct {
	title string
	body  string
}{
	{"Weight (Fg)", "Gravity pulls the block down with Fg = m × g. It always points straight down."},
	{"Tension (FT)", "The rope pulls along its own direction. A hanging block needs FT = Fg to stay at rest."},
	{"Normal force (FN)", "A surface pushes back on whatever rests on it. It can push but never pull, so FN is never negative."},
	{"Components (FTx, FTy)", "An angled rope pulls sideways and upward at once: FTx = FT × cos θ and FTy = FT × sin θ. The upward part takes weight off the surface, so FN = max(0, Fg - FTy)."},
	{"Contact lost", "When FTy is larger than Fg the surface has nothing left to push against. FN stays at 0 N and the block lifts off."},
	{"Controls", "M mode · ↑/↓ mass · ←/→ angle · PgUp/PgDn tension · R reset · C components · +/- arrow scale · F fullscreen · H help · Esc close. In Pulled mode, drag the tip of the FT arrow."},
}

func (sui *SimulatorUI) buildHelpWindow() *widget.Window {
	contents := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.White)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	contents.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("How the forces work", &sui.titleFace, &widget.LabelColor{Idle: cfg.DarkSlate}),
	))
	for _, s := range helpSections {
		contents.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(s.title, &sui.boldFace, &widget.LabelColor{Idle: cfg.NavyBlue}),
		))
		contents.AddChild(widget.NewText(
			widget.TextOpts.Text(s.body, &sui.smallFace, cfg.DarkSlate),
			widget.TextOpts.MaxWidth(helpWidth-32),
		))
	}
	contents.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Click outside this window to close it.", &sui.smallFace, &widget.LabelColor{Idle: cfg.Slate}),
	))

	return widget.NewWindow(
		widget.WindowOpts.Contents(contents),
		widget.WindowOpts.Modal(),
		widget.WindowOpts.CloseMode(widget.CLICK_OUT),
		widget.WindowOpts.ClosedHandler(func(args *widget.WindowClosedEventArgs) {
			sui.helpIsOpen = false
			simulation.SetHelp(sui.world, false)
		}),
	)
}

func (sui *SimulatorUI) openHelp() {
	x := (cfg.C.Width - helpWidth) / 2
	y := (cfg.C.Height - helpHeight) / 2
	sui.help.SetLocation(stdimage.Rect(x, y, x+helpWidth, y+helpHeight))
	sui.UI.AddWindow(sui.help)
	sui.helpIsOpen = true
}
