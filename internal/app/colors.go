package app

import (
	"image/color"

	"github.com/iburimskiy/landing/internal/theme"
)

// pageColors are the solid colors of the page around the canvas.
type pageColors struct {
	background    color.NRGBA
	veil          color.NRGBA
	button        color.NRGBA
	buttonHovered color.NRGBA
	buttonPressed color.NRGBA
	border        color.NRGBA
}

var (
	darkColors = pageColors{
		background:    color.NRGBA{R: 14, G: 14, B: 16, A: 255},
		veil:          color.NRGBA{R: 14, G: 14, B: 16, A: 170},
		button:        color.NRGBA{R: 48, G: 48, B: 52, A: 235},
		buttonHovered: color.NRGBA{R: 64, G: 64, B: 70, A: 245},
		buttonPressed: color.NRGBA{R: 36, G: 36, B: 40, A: 255},
		border:        color.NRGBA{R: 130, G: 130, B: 136, A: 255},
	}
	lightColors = pageColors{
		background:    color.NRGBA{R: 238, G: 238, B: 236, A: 255},
		veil:          color.NRGBA{R: 238, G: 238, B: 236, A: 170},
		button:        color.NRGBA{R: 90, G: 90, B: 96, A: 235},
		buttonHovered: color.NRGBA{R: 110, G: 110, B: 118, A: 245},
		buttonPressed: color.NRGBA{R: 70, G: 70, B: 76, A: 255},
		border:        color.NRGBA{R: 60, G: 60, B: 64, A: 255},
	}
)

func pageColorsFor(t theme.Theme) pageColors {
	if t == theme.Dark {
		return darkColors
	}
	return lightColors
}

// fade scales the alpha of c by opacity.
func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(opacity) + 0.5)
	return c
}
