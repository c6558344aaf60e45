package render

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/landing/internal/theme"
)

func TestPalettes(t *testing.T) {
	dark := PaletteFor(theme.Dark)
	if dark[0] != (color.NRGBA{R: 100, G: 100, B: 100, A: 77}) {
		t.Fatalf("dark[0] = %v", dark[0])
	}
	light := PaletteFor(theme.Light)
	if light[4] != (color.NRGBA{R: 220, G: 220, B: 220, A: 64}) {
		t.Fatalf("light[4] = %v", light[4])
	}
}

func TestRadialGradientColorAt(t *testing.T) {
	g := RadialGradient{
		Radius: 100,
		Stops: []ColorStop{
			{Offset: 0, Color: color.NRGBA{R: 200, A: 200}},
			{Offset: 0.5, Color: color.NRGBA{R: 100, A: 100}},
			{Offset: 1, Color: color.NRGBA{}},
		},
	}

	tests := []struct {
		d    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 200, A: 200}},
		{25, color.NRGBA{R: 150, A: 150}},
		{50, color.NRGBA{R: 100, A: 100}},
		{75, color.NRGBA{R: 50, A: 50}},
		{100, color.NRGBA{}},
		{500, color.NRGBA{}},
	}
	for _, test := range tests {
		if got := g.ColorAt(test.d); got != test.want {
			t.Errorf("ColorAt(%v) = %v, want %v", test.d, got, test.want)
		}
	}
}
