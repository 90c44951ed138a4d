package main

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/physics"
	"github.com/automoto/forcelab/simulation"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// cellPixels is how many diagram pixels one bar cell stands for
const cellPixels = 8

const warningText = "CONTACT LOST: the object lifts off the surface"

var helpLines = []string{
	"Keys",
	"",
	"  M            switch suspended / pulled",
	"  Up / Down    mass",
	"  Right / Left angle (pulled)",
	"  PgUp / PgDn  tension (pulled)",
	"  C            show FTx and FTy bars",
	"  + / -        bar scale",
	"  R            reset",
	"  H            close this help",
	"  Esc / Q      close help or quit",
}

var (
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarning = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// nudges maps repeatable actions to the field and direction they move
var nudges = map[config.ActionID]struct {
	field simulation.Field
	steps int
}{
	config.ActionMassUp:      {simulation.FieldMass, 1},
	config.ActionMassDown:    {simulation.FieldMass, -1},
	config.ActionAngleUp:     {simulation.FieldAngle, 1},
	config.ActionAngleDown:   {simulation.FieldAngle, -1},
	config.ActionTensionUp:   {simulation.FieldTension, 1},
	config.ActionTensionDown: {simulation.FieldTension, -1},
}

// App is the terminal front end. It shares the simulation world and
// StateChanged event with the graphical one.
type App struct {
	world  donburi.World
	screen tcell.Screen
	dirty  bool
}

func NewApp(screen tcell.Screen) *App {
	w := donburi.NewWorld()
	simulation.GetOrCreate(w)
	simulation.GetOrCreateView(w)

	a := &App{world: w, screen: screen, dirty: true}
	simulation.StateChanged.Subscribe(w, a.onStateChanged)
	return a
}

func (a *App) onStateChanged(w donburi.World, c simulation.Change) {
	a.dirty = true
}

// Run draws and handles events until the user quits
func (a *App) Run() {
	for {
		if a.dirty {
			a.draw()
			a.dirty = false
		}
		ev := a.screen.PollEvent()
		if ev == nil || !a.handleEvent(ev) {
			return
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		return a.apply(actionFor(ev))
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	}
	return true
}

// apply performs one action and returns false when the app should exit
func (a *App) apply(action config.ActionID) bool {
	w := a.world
	view := simulation.GetOrCreateView(w)

	switch action {
	case config.ActionNone:
		return true
	case config.ActionBack:
		if !view.HelpOpen {
			return false
		}
		simulation.SetHelp(w, false)
	case config.ActionHelp:
		simulation.SetHelp(w, !view.HelpOpen)
	}
	a.dirty = true
	if view.HelpOpen {
		return true
	}

	switch action {
	case config.ActionToggleMode:
		simulation.ToggleMode(w)
	case config.ActionReset:
		simulation.Reset(w)
	case config.ActionToggleComponents:
		simulation.ToggleComponents(w)
	case config.ActionScaleUp:
		simulation.ScaleArrows(w, 1)
	case config.ActionScaleDown:
		simulation.ScaleArrows(w, -1)
	default:
		if n, ok := nudges[action]; ok {
			simulation.Nudge(w, n.field, n.steps)
		}
	}

	events.ProcessAllEvents(w)
	return true
}

func actionFor(ev *tcell.EventKey) config.ActionID {
	switch ev.Key() {
	case tcell.KeyUp:
		return config.ActionMassUp
	case tcell.KeyDown:
		return config.ActionMassDown
	case tcell.KeyRight:
		return config.ActionAngleUp
	case tcell.KeyLeft:
		return config.ActionAngleDown
	case tcell.KeyPgUp:
		return config.ActionTensionUp
	case tcell.KeyPgDn:
		return config.ActionTensionDown
	case tcell.KeyEscape:
		return config.ActionBack
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'm':
			return config.ActionToggleMode
		case 'r':
			return config.ActionReset
		case 'h', '?':
			return config.ActionHelp
		case 'c':
			return config.ActionToggleComponents
		case '+', '=':
			return config.ActionScaleUp
		case '-', '_':
			return config.ActionScaleDown
		case 'q':
			return config.ActionBack
		}
	}
	return config.ActionNone
}

// barCells converts a force to a bar length, capped at limit cells
func barCells(force, forceToPixels float64, limit int) (cells int, clipped bool) {
	limit = max(0, limit)
	cells = int(math.Round(force * forceToPixels / cellPixels))
	if cells < 0 {
		return 0, false
	}
	if cells > limit {
		return limit, true
	}
	return cells, false
}

func forceOf(f physics.Forces, k diagram.Kind) float64 {
	switch k {
	case diagram.KindWeight:
		return f.Fg
	case diagram.KindTension:
		return f.Ft
	case diagram.KindNormal:
		return f.Fn
	case diagram.KindTensionX:
		return f.Ftx
	default:
		return f.Fty
	}
}

func kindStyle(k diagram.Kind) tcell.Style {
	switch k {
	case diagram.KindWeight:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case diagram.KindTension:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case diagram.KindNormal:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	}
}

func (a *App) draw() {
	s := a.screen
	s.Clear()
	width, height := s.Size()

	st := simulation.Current(a.world)
	f := physics.Resolve(st)
	view := simulation.GetOrCreateView(a.world)
	sim := simulation.GetOrCreate(a.world)

	y := 0
	puts(s, 0, y, styleTitle, fmt.Sprintf("%s  [%s]", config.C.Title, strings.ToUpper(st.Mode().String())))
	y += 2

	puts(s, 2, y, tcell.StyleDefault, fmt.Sprintf("mass     %6.1f kg", sim.Mass))
	puts(s, 28, y, styleDim, "Up/Down")
	y++
	if st.Mode() == physics.ModePulled {
		puts(s, 2, y, tcell.StyleDefault, fmt.Sprintf("angle    %6.0f °", sim.Angle))
		puts(s, 28, y, styleDim, "Right/Left")
		y++
		puts(s, 2, y, tcell.StyleDefault, fmt.Sprintf("tension  %6.1f N", sim.Tension))
		puts(s, 28, y, styleDim, "PgUp/PgDn")
		y++
	}
	puts(s, 2, y, tcell.StyleDefault, fmt.Sprintf("g        %6.1f m/s²", sim.G))
	y += 2

	const labelWidth = 24
	maxBar := max(0, width-labelWidth-14)
	for _, c := range diagram.Cards(f) {
		if (c.Kind == diagram.KindTensionX || c.Kind == diagram.KindTensionY) && !view.ShowComponents {
			continue
		}
		style := kindStyle(c.Kind)
		puts(s, 2, y, style, fmt.Sprintf("%-4s %s", c.Kind, c.Title))
		n, clipped := barCells(forceOf(f, c.Kind), view.ForceToPixels, maxBar)
		puts(s, labelWidth, y, style, strings.Repeat("█", n))
		end := labelWidth + n
		if clipped {
			puts(s, end, y, style, "▶")
			end++
		}
		puts(s, end+1, y, tcell.StyleDefault, c.Value)
		y++
	}
	y++

	for _, line := range diagram.Explain(st, f) {
		puts(s, 2, y, tcell.StyleDefault, line)
		y++
	}
	if f.ContactLost() {
		y++
		puts(s, 2, y, styleWarning, " "+warningText+" ")
	}

	puts(s, 0, height-1, styleDim, "M mode  R reset  C components  +/- scale  H help  Esc quit")

	if view.HelpOpen {
		drawHelp(s, width, height)
	}
	s.Show()
}

func drawHelp(s tcell.Screen, width, height int) {
	boxW := 0
	for _, l := range helpLines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(helpLines) + 2
	x0 := max(0, (width-boxW)/2)
	y0 := max(0, (height-boxH)/2)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			s.SetContent(x, y, ' ', nil, styleHelp)
		}
	}
	for i, l := range helpLines {
		puts(s, x0+2, y0+1+i, styleHelp, l)
	}
}

func puts(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
