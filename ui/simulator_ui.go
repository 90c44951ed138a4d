package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/logging"
	"github.com/automoto/forcelab/physics"
	"github.com/automoto/forcelab/simulation"
	"github.com/automoto/forcelab/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 340

// SimulatorUI holds the ebitenui control panel, readouts and help window
type SimulatorUI struct {
	UI    *ebitenui.UI
	world donburi.World

	// Widget references for updates
	suspendedButton *widget.Button
	pulledButton    *widget.Button
	massLabel       *widget.Label
	massSlider      *widget.Slider
	angleLabel      *widget.Label
	angleSlider     *widget.Slider
	tensionLabel    *widget.Label
	tensionSlider   *widget.Slider
	pulledRows      *widget.Container
	angleRow        *widget.Container
	tensionRow      *widget.Container
	cards           *widget.Container
	explanation     *widget.Text
	warning         *widget.Label

	help       *widget.Window
	helpIsOpen bool

	shownMode physics.Mode
	built     bool

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	boldFace   text.Face
	smallFace  text.Face
}

// NewSimulatorUI creates the control panel bound to the simulation in w
func NewSimulatorUI(w donburi.World) *SimulatorUI {
	sui := &SimulatorUI{world: w}
	sui.loadFonts()
	sui.buildUI()
	sui.Sync()
	return sui
}

func (sui *SimulatorUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{Source: bold, Size: 20}
	sui.boldFace = &text.GoTextFace{Source: bold, Size: 14}
	sui.normalFace = &text.GoTextFace{Source: regular, Size: 14}
	sui.smallFace = &text.GoTextFace{Source: regular, Size: 12}
}

func (sui *SimulatorUI) buildUI() {
	// Root container fills the screen; the diagram is drawn underneath
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Canvas.Y)),
		)),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.White)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Force Explorer", &sui.titleFace, &widget.LabelColor{Idle: cfg.DarkSlate}),
	))
	panel.AddChild(sui.buildModeRow())

	var massRow *widget.Container
	massRow, sui.massLabel, sui.massSlider = sui.buildSliderRow(cfg.Sliders.Mass, func(v float64) {
		simulation.SetMass(sui.world, v)
	})
	panel.AddChild(massRow)

	sui.angleRow, sui.angleLabel, sui.angleSlider = sui.buildSliderRow(cfg.Sliders.Angle, func(v float64) {
		simulation.SetAngle(sui.world, v)
	})
	sui.tensionRow, sui.tensionLabel, sui.tensionSlider = sui.buildSliderRow(cfg.Sliders.Tension, func(v float64) {
		simulation.SetTension(sui.world, v)
	})
	sui.pulledRows = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	panel.AddChild(sui.pulledRows)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("g = %.1f m/s² (fixed)", cfg.Sim.G), &sui.smallFace, &widget.LabelColor{Idle: cfg.Slate}),
	))

	sui.cards = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	panel.AddChild(sui.cards)
	panel.AddChild(sui.buildButtonsRow())

	rootContainer.AddChild(panel)
	rootContainer.AddChild(sui.buildExplanation())

	sui.help = sui.buildHelpWindow()

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	sui.built = true
}

func (sui *SimulatorUI) buildModeRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	sui.suspendedButton = sui.modeButton("Suspended", physics.ModeSuspended)
	sui.pulledButton = sui.modeButton("Pulled", physics.ModePulled)
	row.AddChild(sui.suspendedButton)
	row.AddChild(sui.pulledButton)
	return row
}

func (sui *SimulatorUI) modeButton(label string, mode physics.Mode) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(155, 30)),
		widget.ButtonOpts.Image(sui.modeButtonImage()),
		widget.ButtonOpts.Text(label, &sui.boldFace, &widget.ButtonTextColor{
			Idle:     cfg.DarkSlate,
			Hover:    cfg.NavyBlue,
			Pressed:  cfg.NavyBlue,
			Disabled: cfg.White,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			simulation.SetMode(sui.world, mode)
		}),
	)
}

// buildSliderRow returns a "name: value" label above a slider over r's ticks
func (sui *SimulatorUI) buildSliderRow(r cfg.Range, set func(float64)) (*widget.Container, *widget.Label, *widget.Slider) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: cfg.DarkSlate}),
	)
	row.AddChild(label)

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, r.Ticks()),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-24, 16)),
		widget.SliderOpts.Images(&widget.SliderTrackImage{
			Idle:  image.NewNineSliceColor(color.RGBA{226, 232, 240, 255}),
			Hover: image.NewNineSliceColor(color.RGBA{203, 213, 225, 255}),
		}, sui.buttonImage()),
		widget.SliderOpts.FixedHandleSize(12),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 1 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			// programmatic updates land here too; setters ignore unchanged values
			set(r.FromTick(args.Current))
		}),
	)
	row.AddChild(slider)
	return row, label, slider
}

func (sui *SimulatorUI) buildButtonsRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	for _, b := range []struct {
		label string
		click func()
	}{
		{"Reset", func() { simulation.Reset(sui.world) }},
		{"Help", func() { simulation.SetHelp(sui.world, true) }},
	} {
		click := b.click
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text(b.label, &sui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   cfg.LightBlue,
				Pressed: cfg.LightBlue,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				click()
			}),
		))
	}
	return row
}

func (sui *SimulatorUI) buildExplanation() *widget.Container {
	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.LightBlue)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Canvas.Width, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	box.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("What is happening?", &sui.boldFace, &widget.LabelColor{Idle: cfg.NavyBlue}),
	))
	sui.explanation = widget.NewText(
		widget.TextOpts.Text("", &sui.normalFace, cfg.NavyBlue),
		widget.TextOpts.MaxWidth(float64(cfg.Canvas.Width-20)),
	)
	box.AddChild(sui.explanation)
	sui.warning = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.boldFace, &widget.LabelColor{Idle: cfg.DarkAmber}),
	)
	box.AddChild(sui.warning)
	return box
}

func (sui *SimulatorUI) buildCard(c diagram.Card) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{248, 250, 252, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-24, 0)),
	)

	card.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%s (%s)", c.Title, c.Kind), &sui.smallFace, &widget.LabelColor{Idle: cfg.Slate}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 0))),
	))
	card.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(c.Value, &sui.boldFace, &widget.LabelColor{Idle: cardColor(c.Kind)}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 0))),
	))
	card.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(c.Formula, &sui.smallFace, &widget.LabelColor{Idle: cfg.Slate}),
	))
	return card
}

func cardColor(k diagram.Kind) color.Color {
	switch k {
	case diagram.KindWeight:
		return cfg.Colors.Weight
	case diagram.KindNormal:
		return cfg.Colors.Normal
	}
	return cfg.Colors.Tension
}

func (sui *SimulatorUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Blue),
		Hover:    image.NewNineSliceColor(color.RGBA{29, 78, 216, 255}),
		Pressed:  image.NewNineSliceColor(cfg.NavyBlue),
		Disabled: image.NewNineSliceColor(cfg.Slate),
	}
}

// modeButtonImage styles the selected mode as the disabled state
func (sui *SimulatorUI) modeButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{241, 245, 249, 255}),
		Hover:    image.NewNineSliceColor(cfg.LightBlue),
		Pressed:  image.NewNineSliceColor(cfg.LightBlue),
		Disabled: image.NewNineSliceColor(cfg.Blue),
	}
}

// Sync updates every widget from the current simulation state
func (sui *SimulatorUI) Sync() {
	if !sui.built {
		return
	}
	d := simulation.GetOrCreate(sui.world)
	st := simulation.Snapshot(*d)
	f := physics.Resolve(st)

	sui.suspendedButton.GetWidget().Disabled = d.Mode == physics.ModeSuspended
	sui.pulledButton.GetWidget().Disabled = d.Mode == physics.ModePulled

	sui.massLabel.Label = sliderLabel("Mass (m)", d.Mass, cfg.Sliders.Mass)
	sui.massSlider.Current = cfg.Sliders.Mass.Tick(d.Mass)
	sui.angleLabel.Label = sliderLabel("Rope angle (θ)", d.Angle, cfg.Sliders.Angle)
	sui.angleSlider.Current = cfg.Sliders.Angle.Tick(d.Angle)
	sui.tensionLabel.Label = sliderLabel("Applied tension (FT)", d.Tension, cfg.Sliders.Tension)
	sui.tensionSlider.Current = cfg.Sliders.Tension.Tick(d.Tension)

	if d.Mode != sui.shownMode {
		sui.pulledRows.RemoveChildren()
		if d.Mode == physics.ModePulled {
			sui.pulledRows.AddChild(sui.angleRow)
			sui.pulledRows.AddChild(sui.tensionRow)
		}
		sui.shownMode = d.Mode
	}

	sui.cards.RemoveChildren()
	for _, c := range diagram.Cards(f) {
		sui.cards.AddChild(sui.buildCard(c))
	}

	sui.explanation.Label = strings.Join(diagram.Explain(st, f), "\n")
	sui.warning.Label = ""
	if f.ContactLost() {
		sui.warning.Label = systems.WarningText
	}
}

func sliderLabel(name string, v float64, r cfg.Range) string {
	if r.Step < 1 {
		return fmt.Sprintf("%s: %.1f %s", name, v, r.Unit)
	}
	return fmt.Sprintf("%s: %.0f %s", name, v, r.Unit)
}

// OnStateChanged is a simulation.StateChanged subscriber
func (sui *SimulatorUI) OnStateChanged(_ donburi.World, c simulation.Change) {
	logging.Provide().Debug("ui sync", zap.Stringer("field", c.Field))
	sui.Sync()
}

// Update runs the widgets and opens or closes the help window to match the view state
func (sui *SimulatorUI) Update() {
	open := simulation.GetOrCreateView(sui.world).HelpOpen
	switch {
	case open && !sui.helpIsOpen:
		sui.openHelp()
	case !open && sui.helpIsOpen:
		sui.help.Close()
	}
	sui.UI.Update()
}
