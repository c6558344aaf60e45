// Package wave holds the three animated sine waves drawn behind the page and
// the rules that tie their amplitude to the music.
package wave

import (
	"iter"
	"math"

	"github.com/iburimskiy/landing/internal/audio"
)

// Count is the number of waves in a Field.
const Count = 3

// Step is the horizontal distance between curve points, in pixels.
const Step = 2

// gain scales a band ratio before it is added to the base amplitude.
const gain = 1.5

// Point is a point on a curve, in surface pixels.
type Point struct {
	X, Y float64
}

// Wave is one sinusoid. Phase is the only field that changes after creation.
type Wave struct {
	// Y is the vertical center line.
	Y float64
	// Amplitude is the base amplitude before audio modulation.
	Amplitude float64
	// Frequency is the spatial frequency, radians per pixel.
	Frequency float64
	// Speed is added to Phase every frame.
	Speed     float64
	Phase     float64
	ColorSlot int
}

// Field is the fixed set of waves.
type Field struct {
	waves [Count]Wave
}

// NewField creates the waves for a surface of the given height. Vertical
// positions are fixed fractions of that height and are not updated later.
func NewField(height float64) *Field {
	var f Field
	for i := range f.waves {
		fi := float64(i)
		f.waves[i] = Wave{
			Y:         height * (0.3 + fi*0.2),
			Amplitude: 30 + fi*15,
			Frequency: 0.005 + fi*0.003,
			Speed:     0.015 + fi*0.008,
			ColorSlot: i,
		}
	}
	return &f
}

// Len returns the number of waves.
func (f *Field) Len() int { return len(f.waves) }

// Wave returns a copy of wave i.
func (f *Field) Wave(i int) Wave { return f.waves[i] }

// BandRatio returns the audio ratio wave i reacts to: bass for the first,
// mid for the second and treble for the third.
func BandRatio(i int, r audio.FrequencyReading) float64 {
	switch i {
	case 0:
		return r.Bass / 50
	case 1:
		return r.Mid / 80
	default:
		return r.Treble / 100
	}
}

// AmplitudeFor returns the drawable amplitude of wave i for reading r. Loud
// input is not clamped.
func (f *Field) AmplitudeFor(i int, r audio.FrequencyReading) float64 {
	return f.waves[i].Amplitude * (1 + BandRatio(i, r)*gain)
}

// Advance moves wave i one frame forward.
func (f *Field) Advance(i int) {
	f.waves[i].Phase += f.waves[i].Speed
}

// Curve returns the points of wave i across a surface of the given width,
// using amplitude instead of the base amplitude. The sequence reads the
// phase at the time it is ranged over.
func (f *Field) Curve(i int, width, amplitude float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		w := &f.waves[i]
		for x := 0.0; x < width; x += Step {
			y := w.Y + math.Sin(x*w.Frequency+w.Phase)*amplitude
			if !yield(Point{X: x, Y: y}) {
				return
			}
		}
	}
}
