package app

import (
	"image"
	"image/color"
	"iter"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/landing/internal/render"
	"github.com/iburimskiy/landing/internal/wave"
)

// gradientSegments is the number of spokes in the gradient mesh.
const gradientSegments = 96

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// canvas is a render.Surface backed by an offscreen ebiten image, composited
// over the page background every frame.
type canvas struct {
	img *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*canvas)(nil)

func newCanvas(w, h int) *canvas {
	return &canvas{img: ebiten.NewImage(max(w, 1), max(h, 1))}
}

// Resize reallocates the backing image when the window size changes. The old
// contents are dropped; the next frame redraws everything anyway.
func (c *canvas) Resize(w, h int) bool {
	w, h = max(w, 1), max(h, 1)
	if cw, ch := c.Size(); cw == w && ch == h {
		return false
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(w, h)
	return true
}

func (c *canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *canvas) Clear() { c.img.Clear() }

// FillRadialGradient draws g as a triangle mesh: a fan from the center to the
// first ring, then one band of quads per following stop. Vertex colors are
// interpolated linearly, which matches linear color stops along every spoke.
func (c *canvas) FillRadialGradient(g render.RadialGradient) {
	if len(g.Stops) == 0 || g.Radius <= 0 {
		return
	}

	radii := make([]float64, 0, len(g.Stops)+1)
	colors := make([]color.NRGBA, 0, len(g.Stops)+1)
	for _, s := range g.Stops {
		if s.Offset <= 0 {
			continue
		}
		radii = append(radii, s.Offset*g.Radius)
		colors = append(colors, s.Color)
	}

	// Past the last stop the surface keeps the last color; extend the mesh
	// beyond the corners unless that color is invisible.
	last := g.Stops[len(g.Stops)-1].Color
	if last.A > 0 {
		w, h := c.Size()
		radii = append(radii, g.Radius+math.Hypot(float64(w), float64(h)))
		colors = append(colors, last)
	}

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]

	c.vertices = append(c.vertices, vertex(g.CenterX, g.CenterY, g.ColorAt(0)))
	for ring, r := range radii {
		for s := range gradientSegments {
			theta := 2 * math.Pi * float64(s) / gradientSegments
			x := g.CenterX + r*math.Cos(theta)
			y := g.CenterY + r*math.Sin(theta)
			c.vertices = append(c.vertices, vertex(x, y, colors[ring]))
		}
	}

	at := func(ring, s int) uint16 {
		return uint16(1 + ring*gradientSegments + s%gradientSegments)
	}
	for s := range gradientSegments {
		c.indices = append(c.indices, 0, at(0, s), at(0, s+1))
	}
	for ring := 1; ring < len(radii); ring++ {
		for s := range gradientSegments {
			a, b := at(ring-1, s), at(ring-1, s+1)
			d, e := at(ring, s), at(ring, s+1)
			c.indices = append(c.indices, a, d, e, a, e, b)
		}
	}

	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *canvas) StrokePath(points iter.Seq[wave.Point], s render.Stroke) {
	var path vector.Path
	started := false
	for p := range points {
		if !started {
			path.MoveTo(float32(p.X), float32(p.Y))
			started = true
			continue
		}
		path.LineTo(float32(p.X), float32(p.Y))
	}
	if !started {
		return
	}

	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:      float32(s.Width),
		LineCap:    lineCap(s.Cap),
		LineJoin:   lineJoin(s.Join),
		MiterLimit: 10,
	})

	r, g, b, a := colorComponents(s.Color)
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}

	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func vertex(x, y float64, clr color.NRGBA) ebiten.Vertex {
	r, g, b, a := colorComponents(clr)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}

// colorComponents returns straight-alpha components in [0, 1], the default
// color scale mode of DrawTriangles.
func colorComponents(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

func lineCap(c render.LineCap) vector.LineCap {
	switch c {
	case render.CapRound:
		return vector.LineCapRound
	case render.CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func lineJoin(j render.LineJoin) vector.LineJoin {
	switch j {
	case render.JoinRound:
		return vector.LineJoinRound
	case render.JoinBevel:
		return vector.LineJoinBevel
	default:
		return vector.LineJoinMiter
	}
}
