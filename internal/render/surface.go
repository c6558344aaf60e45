// Package render draws the audio-reactive background: a radial glow that
// pulses with the bass and three waves that follow the music.
package render

import (
	"image/color"
	"iter"

	"github.com/iburimskiy/landing/internal/wave"
)

// Surface is a drawable area. Implementations are used from the frame loop
// only.
type Surface interface {
	// Size returns the current pixel size. It may change between frames.
	Size() (width, height int)
	// Clear makes the whole surface transparent.
	Clear()
	// FillRadialGradient fills the whole surface with g.
	FillRadialGradient(g RadialGradient)
	// StrokePath strokes an open path through points.
	StrokePath(points iter.Seq[wave.Point], s Stroke)
}

// ColorStop is one stop of a gradient, Offset in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient is a gradient from a center point out to Radius. Past the
// radius the last stop's color is used.
type RadialGradient struct {
	CenterX, CenterY float64
	Radius           float64
	Stops            []ColorStop
}

// ColorAt returns the color at distance d from the center, interpolated
// linearly in straight alpha between the surrounding stops.
func (g RadialGradient) ColorAt(d float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	t := 1.0
	if g.Radius > 0 {
		t = d / g.Radius
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// LineCap is the shape at the ends of a stroked path.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the shape where path segments meet.
type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinBevel
	JoinRound
)

// Stroke styles a stroked path.
type Stroke struct {
	Color color.NRGBA
	Width float64
	Cap   LineCap
	Join  LineJoin
}
