// Package assets loads the diagram layouts authored in Tiled.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/physics"
	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

//go:embed layouts/*.tmx
var layoutFS embed.FS

// Object names inside the Anchors object group
const (
	anchorGroup   = "Anchors"
	anchorBlock   = "block"
	anchorCeiling = "ceiling"
	anchorGround  = "ground"
)

// Layouts holds one diagram layout per mode
type Layouts map[physics.Mode]diagram.Layout

// LoadLayouts reads every layouts/<mode>.tmx file from fsys
func LoadLayouts(fsys fs.FS) (Layouts, error) {
	entries, err := fs.ReadDir(fsys, "layouts")
	if err != nil {
		return nil, fmt.Errorf("read layouts: %w", err)
	}

	out := Layouts{}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		mode, err := physics.ParseMode(strings.TrimSuffix(entry.Name(), ".tmx"))
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", entry.Name(), err)
		}
		l, err := LoadLayout(fsys, path.Join("layouts", entry.Name()), mode)
		if err != nil {
			return nil, err
		}
		out[mode] = l
	}

	for _, mode := range []physics.Mode{physics.ModeSuspended, physics.ModePulled} {
		if _, ok := out[mode]; !ok {
			return nil, fmt.Errorf("no layout for mode %s", mode)
		}
	}
	return out, nil
}

// LoadLayout parses a single TMX file
func LoadLayout(fsys fs.FS, tmxPath string, mode physics.Mode) (diagram.Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return diagram.Layout{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	l := diagram.Layout{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	found := map[string]bool{}
	for _, og := range m.ObjectGroups {
		if og.Name != anchorGroup {
			continue
		}
		for _, o := range og.Objects {
			r := diagram.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch o.Name {
			case anchorBlock:
				l.Block = r.Center()
			case anchorCeiling:
				l.Ceiling = r
			case anchorGround:
				l.Ground = r
			default:
				continue
			}
			found[o.Name] = true
		}
	}

	required := []string{anchorBlock, anchorCeiling}
	if mode == physics.ModePulled {
		required = []string{anchorBlock, anchorGround}
	}
	for _, name := range required {
		if !found[name] {
			return diagram.Layout{}, fmt.Errorf("layout %s: missing %q in %s group", tmxPath, name, anchorGroup)
		}
	}
	return l, nil
}

// LoadEmbedded loads the layouts bundled with the binary
func LoadEmbedded() (Layouts, error) {
	return LoadLayouts(layoutFS)
}

// Fallback returns the built-in layout for a canvas of the given size, used
// when no TMX layout is available
func Fallback(width, height, objectSize float64) diagram.Layout {
	c := dmath.Vec2{X: width / 2, Y: height / 2}
	return diagram.Layout{
		Width:   width,
		Height:  height,
		Block:   c,
		Ceiling: diagram.Rect{X: c.X - 50, Y: 20, W: 100, H: 10},
		Ground:  diagram.Rect{X: 50, Y: c.Y + objectSize/2 + 2, W: width - 100, H: 4},
	}
}
