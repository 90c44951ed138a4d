package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/physics"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="30" height="20" tilewidth="20" tileheight="20" infinite="0">
`

func tmx(objects string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(header + ` <objectgroup id="1" name="Anchors">
` + objects + ` </objectgroup>
</map>
`)}
}

func TestEmbeddedLayouts(t *testing.T) {
	layouts, err := LoadLayouts(layoutFS)
	require.NoError(t, err)
	require.Len(t, layouts, 2)

	s := layouts[physics.ModeSuspended]
	require.Equal(t, 600.0, s.Width)
	require.Equal(t, 400.0, s.Height)
	require.Equal(t, dmath.Vec2{X: 300, Y: 200}, s.Block)
	require.Equal(t, diagram.Rect{X: 250, Y: 20, W: 100, H: 10}, s.Ceiling)

	p := layouts[physics.ModePulled]
	require.Equal(t, dmath.Vec2{X: 300, Y: 200}, p.Block)
	require.Equal(t, diagram.Rect{X: 50, Y: 232, W: 500, H: 4}, p.Ground)
	require.True(t, p.Ceiling.Empty())
}

func TestEmbeddedMatchesFallback(t *testing.T) {
	layouts, err := LoadEmbedded()
	require.NoError(t, err)
	fb := Fallback(600, 400, 60)
	require.Equal(t, fb.Block, layouts[physics.ModeSuspended].Block)
	require.Equal(t, fb.Ceiling, layouts[physics.ModeSuspended].Ceiling)
	require.Equal(t, fb.Ground, layouts[physics.ModePulled].Ground)
}

func TestLoadLayoutErrors(t *testing.T) {
	t.Run("missing ground", func(t *testing.T) {
		fsys := fstest.MapFS{
			"layouts/suspended.tmx": tmx(`  <object id="1" name="ceiling" x="0" y="0" width="10" height="10"/>
  <object id="2" name="block" x="0" y="0" width="10" height="10"/>
`),
			"layouts/pulled.tmx": tmx(`  <object id="1" name="block" x="0" y="0" width="10" height="10"/>
`),
		}
		_, err := LoadLayouts(fsys)
		require.ErrorContains(t, err, `missing "ground"`)
	})

	t.Run("unknown mode file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"layouts/sliding.tmx": tmx(""),
		}
		_, err := LoadLayouts(fsys)
		require.Error(t, err)
	})

	t.Run("missing mode", func(t *testing.T) {
		fsys := fstest.MapFS{
			"layouts/pulled.tmx": tmx(`  <object id="1" name="ground" x="0" y="0" width="10" height="10"/>
  <object id="2" name="block" x="0" y="0" width="10" height="10"/>
`),
		}
		_, err := LoadLayouts(fsys)
		require.ErrorContains(t, err, "no layout for mode")
	})

	t.Run("no directory", func(t *testing.T) {
		_, err := LoadLayouts(fstest.MapFS{})
		require.Error(t, err)
	})

	t.Run("unknown objects are ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"pulled.tmx": tmx(`  <object id="1" name="ground" x="0" y="300" width="600" height="4"/>
  <object id="2" name="block" x="100" y="100" width="40" height="40"/>
  <object id="3" name="note" x="1" y="1" width="1" height="1"/>
`),
		}
		l, err := LoadLayout(fsys, "pulled.tmx", physics.ModePulled)
		require.NoError(t, err)
		require.Equal(t, dmath.Vec2{X: 120, Y: 120}, l.Block)
	})
}
