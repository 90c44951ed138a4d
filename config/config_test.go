package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
)

// restore puts the package globals back after a test that loads overrides.
func restore(t *testing.T) {
	saved := Current()
	window := *C
	t.Cleanup(func() {
		*C = window
		Sim = saved.Simulation
		Scales = saved.Scales
		Canvas = saved.Canvas
		Effects = saved.Effects
		Sliders = saved.Sliders
	})
}

func TestDefaults(t *testing.T) {
	d := DefaultSimulation()
	require.Equal(t, physics.ModeSuspended, d.Mode)
	require.Equal(t, 10.0, d.Mass)
	require.Equal(t, 0.0, d.Angle)
	require.Equal(t, 100.0, d.Tension)
	require.Equal(t, 10.0, d.G)

	require.Equal(t, 2.0, Scales.ForceToPixels)
	require.Equal(t, 60.0, Scales.ObjectSize)
	require.NoError(t, Current().Validate())
}

func TestRange(t *testing.T) {
	mass := Range{Min: 0.5, Max: 50, Step: 0.5}

	t.Run("Ticks", func(t *testing.T) {
		require.Equal(t, 99, mass.Ticks())
		require.Equal(t, 90, Sliders.Angle.Ticks())
		require.Equal(t, 50, Sliders.Tension.Ticks())
	})

	t.Run("Tick round trip", func(t *testing.T) {
		for tick := 0; tick <= mass.Ticks(); tick++ {
			require.Equal(t, tick, mass.Tick(mass.FromTick(tick)))
		}
	})

	t.Run("Snap", func(t *testing.T) {
		require.Equal(t, 10.0, mass.Snap(10.2))
		require.Equal(t, 10.5, mass.Snap(10.3))
		require.Equal(t, 0.5, mass.Snap(-4))
		require.Equal(t, 50.0, mass.Snap(400))
		require.Equal(t, 130.0, Sliders.Tension.Snap(127))
	})

	t.Run("FromTick clamps", func(t *testing.T) {
		require.Equal(t, 0.5, mass.FromTick(-3))
		require.Equal(t, 50.0, mass.FromTick(1000))
	})

	t.Run("zero step", func(t *testing.T) {
		r := Range{Min: 1, Max: 2}
		require.Equal(t, 0, r.Ticks())
		require.Equal(t, 1.0, r.Snap(1.7))
	})
}

func TestLoad(t *testing.T) {
	t.Run("partial override keeps defaults", func(t *testing.T) {
		restore(t)

		err := Load(strings.NewReader(`
simulation:
  mode: pulled
  g: 9.81
scales:
  forceToPixels: 1.5
sliders:
  tension:
    max: 800
`))
		require.NoError(t, err)
		require.Equal(t, physics.ModePulled, Sim.Mode)
		require.Equal(t, 9.81, Sim.G)
		require.Equal(t, 10.0, Sim.Mass)
		require.Equal(t, 1.5, Scales.ForceToPixels)
		require.Equal(t, 60.0, Scales.ObjectSize)
		require.Equal(t, 800.0, Sliders.Tension.Max)
		require.Equal(t, 10.0, Sliders.Tension.Step)
	})

	t.Run("empty document", func(t *testing.T) {
		restore(t)
		require.NoError(t, Load(strings.NewReader("")))
		require.Equal(t, DefaultSimulation(), Sim)
	})

	t.Run("invalid values leave config untouched", func(t *testing.T) {
		restore(t)
		err := Load(strings.NewReader("sliders:\n  angle:\n    max: 120\n"))
		require.Error(t, err)
		require.Equal(t, 90.0, Sliders.Angle.Max)

		err = Load(strings.NewReader("simulation:\n  g: 0\n"))
		require.Error(t, err)
		require.Equal(t, 10.0, Sim.G)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		restore(t)
		require.Error(t, Load(strings.NewReader("simulation:\n  friction: 0.2\n")))
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		restore(t)
		require.Error(t, Load(strings.NewReader("simulation:\n  mode: sliding\n")))
		require.Equal(t, physics.ModeSuspended, Sim.Mode)
	})
}

func TestLoadFile(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "forcelab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Lab 3\n"), 0o600))
	require.NoError(t, LoadFile(path))
	require.Equal(t, "Lab 3", C.Title)
	require.Equal(t, 1000, C.Width)

	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
