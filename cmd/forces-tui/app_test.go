package main

import (
	"strings"
	"testing"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/physics"
	"github.com/automoto/forcelab/simulation"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(120, 40)
	t.Cleanup(s.Fini)
	return NewApp(s), s
}

func screenText(s tcell.SimulationScreen) string {
	cells, w, h := s.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				b.WriteRune(c.Runes[0])
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want config.ActionID
	}{
		{char('m'), config.ActionToggleMode},
		{char('M'), config.ActionToggleMode},
		{key(tcell.KeyUp), config.ActionMassUp},
		{key(tcell.KeyDown), config.ActionMassDown},
		{key(tcell.KeyRight), config.ActionAngleUp},
		{key(tcell.KeyLeft), config.ActionAngleDown},
		{key(tcell.KeyPgUp), config.ActionTensionUp},
		{key(tcell.KeyPgDn), config.ActionTensionDown},
		{char('r'), config.ActionReset},
		{char('h'), config.ActionHelp},
		{char('c'), config.ActionToggleComponents},
		{char('+'), config.ActionScaleUp},
		{char('-'), config.ActionScaleDown},
		{key(tcell.KeyEscape), config.ActionBack},
		{char('q'), config.ActionBack},
		{char('x'), config.ActionNone},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, actionFor(tt.ev), tt.ev.Name())
	}
}

func TestBarCells(t *testing.T) {
	n, clipped := barCells(100, 2, 80)
	require.Equal(t, 25, n)
	require.False(t, clipped)

	n, clipped = barCells(1000, 2, 80)
	require.Equal(t, 80, n)
	require.True(t, clipped)

	n, _ = barCells(0, 2, 80)
	require.Zero(t, n)

	n, clipped = barCells(100, 2, -10)
	require.Zero(t, n)
	require.True(t, clipped)
}

func TestDrawOnNarrowTerminal(t *testing.T) {
	a, s := newTestApp(t)
	s.SetSize(30, 20)

	require.NotPanics(t, a.draw)

	a.handleEvent(char('m'))
	s.SetSize(10, 5)
	require.NotPanics(t, a.draw)
}

func TestKeysDriveSimulation(t *testing.T) {
	a, _ := newTestApp(t)

	require.True(t, a.handleEvent(char('m')))
	require.Equal(t, physics.ModePulled, simulation.Current(a.world).Mode())

	require.True(t, a.handleEvent(key(tcell.KeyUp)))
	require.Equal(t, 10.5, simulation.GetOrCreate(a.world).Mass)

	require.True(t, a.handleEvent(char('r')))
	require.Equal(t, physics.ModeSuspended, simulation.Current(a.world).Mode())
}

func TestHelpBlocksSimulationKeys(t *testing.T) {
	a, _ := newTestApp(t)

	require.True(t, a.handleEvent(char('h')))
	require.True(t, simulation.GetOrCreateView(a.world).HelpOpen)

	require.True(t, a.handleEvent(char('m')))
	require.Equal(t, physics.ModeSuspended, simulation.Current(a.world).Mode())

	require.True(t, a.handleEvent(key(tcell.KeyEscape)))
	require.False(t, simulation.GetOrCreateView(a.world).HelpOpen)

	require.False(t, a.handleEvent(key(tcell.KeyEscape)))
}

func TestDrawShowsContactLoss(t *testing.T) {
	a, s := newTestApp(t)

	a.draw()
	text := screenText(s)
	require.Contains(t, text, "SUSPENDED")
	require.Contains(t, text, "100.0 N")
	require.NotContains(t, text, "CONTACT LOST")

	a.handleEvent(char('m'))
	for i := 0; i < 90; i++ {
		a.handleEvent(key(tcell.KeyRight))
	}
	a.handleEvent(key(tcell.KeyPgUp))
	require.True(t, simulation.Resolve(a.world).ContactLost())

	a.draw()
	text = screenText(s)
	require.Contains(t, text, "PULLED")
	require.Contains(t, text, "CONTACT LOST")
}
