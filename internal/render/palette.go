package render

import (
	"image/color"

	"github.com/iburimskiy/landing/internal/theme"
)

// PaletteSize is the number of colors in a Palette.
const PaletteSize = 5

// Palette is a fixed set of translucent colors. Slots 0 and 1 color the glow,
// wave i uses slot i.
type Palette [PaletteSize]color.NRGBA

// alpha converts a CSS alpha in [0, 1] to a byte.
func alpha(a float64) uint8 { return uint8(a*255 + 0.5) }

func gray(v uint8, a float64) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: alpha(a)}
}

var (
	lightPalette = Palette{
		gray(200, 0.3),
		gray(180, 0.25),
		gray(160, 0.2),
		gray(140, 0.15),
		gray(220, 0.25),
	}
	darkPalette = Palette{
		gray(100, 0.3),
		gray(80, 0.25),
		gray(60, 0.2),
		gray(120, 0.15),
		gray(90, 0.25),
	}
)

// PaletteFor returns the palette of theme t.
func PaletteFor(t theme.Theme) Palette {
	if t == theme.Dark {
		return darkPalette
	}
	return lightPalette
}
