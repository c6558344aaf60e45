package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// glyphWidth and glyphHeight are the debug font cell size.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

type button struct {
	X, Y, W, H int
	Label      string

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// update tracks hover and press state and reports a click: a press and a
// release both inside the button.
func (b *button) update(mouseX, mouseY int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mouseX, mouseY)

	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image, c pageColors, opacity float64) {
	var bg color.NRGBA
	switch {
	case b.pressed:
		bg = c.buttonPressed
	case b.hovered:
		bg = c.buttonHovered
	default:
		bg = c.button
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fade(bg, opacity), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, fade(c.border, opacity), false)

	if opacity < 0.5 {
		return
	}
	textX := b.X + (b.W-len(b.Label)*glyphWidth)/2
	textY := b.Y + (b.H-glyphHeight)/2
	ebitenutil.DebugPrintAt(screen, b.Label, textX, textY)
}
