package app

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

type gateState uint8

const (
	gateShown gateState = iota
	gateFading
	gateHidden
)

// entryGate is the "Enter" screen. Opening it fades the button out for a
// fixed time and then reveals the content, exactly once.
type entryGate struct {
	state    gateState
	opacity  float64
	velocity float64
	spring   harmonica.Spring

	fadeTicks int
	remaining int
}

func newEntryGate(fade time.Duration, tps int) *entryGate {
	return &entryGate{
		opacity:   1,
		spring:    harmonica.NewSpring(harmonica.FPS(tps), 12, 1),
		fadeTicks: int(math.Ceil(fade.Seconds() * float64(tps))),
	}
}

// Accepting reports whether the entry button still takes input.
func (g *entryGate) Accepting() bool { return g.state == gateShown }

// Hidden reports whether the content has been revealed.
func (g *entryGate) Hidden() bool { return g.state == gateHidden }

// Opacity returns the entry button opacity in [0, 1].
func (g *entryGate) Opacity() float64 { return clamp01(g.opacity) }

// Open starts the fade. It returns false if the gate was already opened.
func (g *entryGate) Open() bool {
	if g.state != gateShown {
		return false
	}
	g.state = gateFading
	g.remaining = g.fadeTicks
	return true
}

// Update advances the fade by one tick. It returns true on the single tick
// the content is revealed.
func (g *entryGate) Update() bool {
	if g.state != gateFading {
		return false
	}

	g.opacity, g.velocity = g.spring.Update(g.opacity, g.velocity, 0)
	if g.remaining > 0 {
		g.remaining--
		return false
	}

	g.state = gateHidden
	g.opacity = 0
	return true
}
