// Package diagram turns resolved forces into free-body diagram geometry.
// Coordinates are canvas pixels with y pointing down.
package diagram

import (
	"fmt"
	"math"

	"github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/physics"
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind identifies which force an arrow shows
type Kind int

const (
	KindWeight Kind = iota
	KindTension
	KindNormal
	KindTensionX
	KindTensionY
)

func (k Kind) String() string {
	switch k {
	case KindWeight:
		return "Fg"
	case KindTension:
		return "FT"
	case KindNormal:
		return "FN"
	case KindTensionX:
		return "FTx"
	case KindTensionY:
		return "FTy"
	}
	return "?"
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Layout holds the fixed anchors of a scenario
type Layout struct {
	Width, Height float64
	Block         dmath.Vec2 // block centre at rest
	Ceiling       Rect       // SUSPENDED only
	Ground        Rect       // PULLED only
}

// Options controls scaling and optional overlays
type Options struct {
	ForceToPixels  float64
	ObjectSize     float64
	ArrowHead      float64
	LabelOffset    float64
	Lift           float64 // how far the block is raised off the surface
	ShowComponents bool
}

// DefaultOptions reads the configured scales
func DefaultOptions() Options {
	return Options{
		ForceToPixels:  config.Scales.ForceToPixels,
		ObjectSize:     config.Scales.ObjectSize,
		ArrowHead:      config.Scales.ArrowHead,
		LabelOffset:    config.Scales.LabelOffset,
		ShowComponents: config.View.ShowComponents,
	}
}

// Arrow is a single force vector ready to draw
type Arrow struct {
	Kind     Kind
	From, To dmath.Vec2
	Head     [3]dmath.Vec2 // tip, then the two barbs
	Label    string
	LabelAt  dmath.Vec2
	Dashed   bool
}

// Length returns the drawn length in pixels
func (a Arrow) Length() float64 {
	return math.Hypot(a.To.X-a.From.X, a.To.Y-a.From.Y)
}

// Scene is everything needed to draw one frame of the diagram
type Scene struct {
	Mode    physics.Mode
	Width   float64
	Height  float64
	Block   Rect
	Ceiling Rect
	Rope    [2]dmath.Vec2 // ceiling to block, SUSPENDED only
	Ground  Rect
	Arrows  []Arrow

	// Origin is where the tension acts, TensionTip the end of its arrow.
	Origin     dmath.Vec2
	TensionTip dmath.Vec2
}

// Arrow returns the first arrow of kind k
func (s Scene) Arrow(k Kind) (Arrow, bool) {
	for _, a := range s.Arrows {
		if a.Kind == k {
			return a, true
		}
	}
	return Arrow{}, false
}

// Build lays out the diagram for st and its resolved forces f
func Build(st physics.State, f physics.Forces, l Layout, o Options) Scene {
	half := o.ObjectSize / 2
	sc := Scene{
		Mode:   f.Mode,
		Width:  l.Width,
		Height: l.Height,
	}

	towed, pulled := st.Setup.(physics.Towed)
	if !pulled {
		c := l.Block
		sc.Block = Rect{X: c.X - half, Y: c.Y - half, W: o.ObjectSize, H: o.ObjectSize}
		sc.Ceiling = l.Ceiling
		sc.Rope = [2]dmath.Vec2{
			{X: c.X, Y: l.Ceiling.Y + l.Ceiling.H},
			{X: c.X, Y: c.Y - half},
		}
		sc.Origin = c
		sc.Arrows = append(sc.Arrows,
			o.arrow(KindWeight, c, math.Pi/2, f.Fg, value(KindWeight, f.Fg), false),
			o.arrow(KindTension, c, -math.Pi/2, f.Ft, value(KindTension, f.Ft), false),
		)
		sc.TensionTip = sc.Arrows[1].To
		return sc
	}

	c := dmath.Vec2{X: l.Block.X, Y: l.Block.Y - o.Lift}
	bottom := dmath.Vec2{X: c.X, Y: c.Y + half}
	rad := towed.Angle * math.Pi / 180

	sc.Block = Rect{X: c.X - half, Y: c.Y - half, W: o.ObjectSize, H: o.ObjectSize}
	sc.Ground = l.Ground
	sc.Origin = c

	sc.Arrows = append(sc.Arrows, o.arrow(KindWeight, c, math.Pi/2, f.Fg, value(KindWeight, f.Fg), false))
	if f.Fn > 0 {
		sc.Arrows = append(sc.Arrows, o.arrow(KindNormal, bottom, -math.Pi/2, f.Fn, value(KindNormal, f.Fn), false))
	}
	ft := o.arrow(KindTension, c, -rad, f.Ft, value(KindTension, f.Ft), false)
	sc.Arrows = append(sc.Arrows, ft)
	sc.TensionTip = ft.To

	if o.ShowComponents && towed.Angle > 0 && towed.Angle < 90 {
		x := o.arrow(KindTensionX, c, 0, f.Ftx, KindTensionX.String(), true)
		y := o.arrow(KindTensionY, x.To, -math.Pi/2, f.Fty, KindTensionY.String(), true)
		sc.Arrows = append(sc.Arrows, x, y)
	}
	return sc
}

// arrow starts at from and points along dir (radians, y down) for force newtons
func (o Options) arrow(k Kind, from dmath.Vec2, dir, force float64, label string, dashed bool) Arrow {
	cos, sin := math.Cos(dir), math.Sin(dir)
	n := force * o.ForceToPixels
	to := dmath.Vec2{X: from.X + n*cos, Y: from.Y + n*sin}
	return Arrow{
		Kind:    k,
		From:    from,
		To:      to,
		Head:    head(to, dir, o.ArrowHead),
		Label:   label,
		LabelAt: dmath.Vec2{X: to.X + o.LabelOffset*cos, Y: to.Y + o.LabelOffset*sin},
		Dashed:  dashed,
	}
}

// head returns a triangle with its tip at tip and barbs 30 degrees off dir
func head(tip dmath.Vec2, dir, size float64) [3]dmath.Vec2 {
	const spread = math.Pi / 6
	return [3]dmath.Vec2{
		tip,
		{X: tip.X - size*math.Cos(dir-spread), Y: tip.Y - size*math.Sin(dir-spread)},
		{X: tip.X - size*math.Cos(dir+spread), Y: tip.Y - size*math.Sin(dir+spread)},
	}
}

func value(k Kind, v float64) string {
	return fmt.Sprintf("%s = %.1fN", k, v)
}

// PullAt converts a point dragged to on the canvas into the angle and tension
// whose FT arrow would end there. The angle is limited to [0, 90].
func PullAt(origin, p dmath.Vec2, o Options) (angle, tension float64) {
	dx := p.X - origin.X
	dy := origin.Y - p.Y
	angle = math.Atan2(dy, dx) * 180 / math.Pi
	angle = math.Min(90, math.Max(0, angle))
	rad := angle * math.Pi / 180
	// length of the projection onto the clamped direction
	along := dx*math.Cos(rad) + dy*math.Sin(rad)
	if along < 0 || o.ForceToPixels <= 0 {
		return angle, 0
	}
	return angle, along / o.ForceToPixels
}
