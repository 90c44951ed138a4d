package systems

import (
	"image"
	"image/color"
	"math"

	cfg "github.com/automoto/forcelab/config"
	"github.com/automoto/forcelab/diagram"
	"github.com/automoto/forcelab/fonts"
	"github.com/automoto/forcelab/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	canvas   *ebiten.Image
	canvasOp = &ebiten.DrawImageOptions{}

	// 1x1 white source for DrawTriangles
	whiteImage = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}()
	headVertices = make([]ebiten.Vertex, 3)
	headIndices  = []uint16{0, 1, 2}
)

// DrawDiagram renders the free-body diagram onto the canvas area of screen
func DrawDiagram(e *ecs.ECS, screen *ebiten.Image) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	if canvas == nil || canvas.Bounds().Dx() != w || canvas.Bounds().Dy() != h {
		canvas = ebiten.NewImage(w, h)
	}
	canvas.Fill(cfg.Colors.Canvas)

	sc := CurrentScene(e)
	drawSupports(canvas, sc)
	drawBlock(canvas, sc.Block)
	for _, a := range sc.Arrows {
		drawArrow(canvas, a)
	}
	drawHandle(canvas, e, sc)

	canvasOp.GeoM.Reset()
	canvasOp.GeoM.Translate(float64(cfg.Canvas.X), float64(cfg.Canvas.Y))
	screen.DrawImage(canvas, canvasOp)
	vector.StrokeRect(screen,
		float32(cfg.Canvas.X), float32(cfg.Canvas.Y), float32(w), float32(h),
		1, cfg.Slate, false)
}

func drawSupports(dst *ebiten.Image, sc diagram.Scene) {
	if !sc.Ceiling.Empty() {
		fillRect(dst, sc.Ceiling, cfg.Colors.Ceiling)
		vector.StrokeLine(dst,
			float32(sc.Rope[0].X), float32(sc.Rope[0].Y),
			float32(sc.Rope[1].X), float32(sc.Rope[1].Y),
			2, cfg.Colors.Rope, true)
	}
	if !sc.Ground.Empty() {
		fillRect(dst, sc.Ground, cfg.Colors.Surface)
	}
}

func drawBlock(dst *ebiten.Image, r diagram.Rect) {
	fillRect(dst, r, cfg.Colors.Object)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, cfg.Colors.Outline, false)
}

func fillRect(dst *ebiten.Image, r diagram.Rect, c color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func arrowColor(k diagram.Kind) color.RGBA {
	switch k {
	case diagram.KindWeight:
		return cfg.Colors.Weight
	case diagram.KindNormal:
		return cfg.Colors.Normal
	case diagram.KindTensionX, diagram.KindTensionY:
		return cfg.Colors.Components
	}
	return cfg.Colors.Tension
}

func drawArrow(dst *ebiten.Image, a diagram.Arrow) {
	c := arrowColor(a.Kind)
	width := float32(cfg.Scales.ArrowWidth)

	if a.Dashed {
		drawDashed(dst, a.From, a.To, width, c)
	} else {
		vector.StrokeLine(dst, float32(a.From.X), float32(a.From.Y), float32(a.To.X), float32(a.To.Y), width, c, true)
	}
	fillTriangle(dst, a.Head, c)

	face := fonts.Label
	if a.Dashed {
		face = fonts.LabelSmall
	}
	tw, _ := fonts.Measure(face, a.Label)
	text.Draw(dst, a.Label, face.Get(), int(a.LabelAt.X)-tw/2, int(a.LabelAt.Y), cfg.Colors.Text)
}

func drawDashed(dst *ebiten.Image, from, to dmath.Vec2, width float32, c color.Color) {
	dash := cfg.Scales.DashLength
	length := math.Hypot(to.X-from.X, to.Y-from.Y)
	if dash <= 0 || length == 0 {
		return
	}
	ux, uy := (to.X-from.X)/length, (to.Y-from.Y)/length
	for d := 0.0; d < length; d += 2 * dash {
		end := math.Min(d+dash, length)
		vector.StrokeLine(dst,
			float32(from.X+ux*d), float32(from.Y+uy*d),
			float32(from.X+ux*end), float32(from.Y+uy*end),
			width, c, true)
	}
}

func fillTriangle(dst *ebiten.Image, pts [3]dmath.Vec2, c color.RGBA) {
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i, p := range pts {
		headVertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(headVertices, headIndices, whiteImage, op)
}

// drawHandle outlines the draggable tension tip while it is hovered or held
func drawHandle(dst *ebiten.Image, e *ecs.ECS, sc diagram.Scene) {
	d := simulation.GetOrCreateDrag(e.World)
	if !d.Hover && !d.Dragging {
		return
	}
	size := float32(cfg.Scales.HandleSize)
	vector.FillCircle(dst, float32(sc.TensionTip.X), float32(sc.TensionTip.Y), size/2, cfg.Colors.Handle, true)
}
