package render

import (
	"image/color"

	"github.com/iburimskiy/landing/internal/audio"
	"github.com/iburimskiy/landing/internal/theme"
	"github.com/iburimskiy/landing/internal/wave"
	"go.uber.org/zap"
)

const (
	// StrokeWidth is the width of every wave.
	StrokeWidth = 2.5

	glowBase  = 0.5
	glowPulse = 0.3
)

// ReadingSource provides one frequency reading per frame.
type ReadingSource interface {
	Sample() audio.FrequencyReading
}

// Renderer draws one frame per scheduled callback and reschedules itself until
// stopped. Every method must be called from the frame loop's goroutine.
type Renderer struct {
	surface Surface
	sched   Scheduler
	source  ReadingSource
	field   *wave.Field
	theme   func() theme.Theme
	logger  *zap.Logger

	handle  FrameHandle
	running bool
	frames  uint64
}

// NewRenderer creates a stopped renderer.
func NewRenderer(
	surface Surface,
	sched Scheduler,
	source ReadingSource,
	field *wave.Field,
	themeFn func() theme.Theme,
	logger *zap.Logger,
) *Renderer {
	return &Renderer{
		surface: surface,
		sched:   sched,
		source:  source,
		field:   field,
		theme:   themeFn,
		logger:  logger.Named("renderer"),
	}
}

// Start schedules the first frame. It does nothing if already running.
func (r *Renderer) Start() {
	if r.running {
		return
	}
	r.running = true
	r.handle = r.sched.RequestFrame(r.frame)
	r.logger.Debug("started")
}

// Stop cancels the pending frame; nothing is drawn after it returns.
func (r *Renderer) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.sched.CancelFrame(r.handle)
	r.handle = 0
	r.logger.Debug("stopped", zap.Uint64("frames", r.frames))
}

// Running reports whether a frame is scheduled.
func (r *Renderer) Running() bool { return r.running }

// Frames returns the number of frames drawn so far.
func (r *Renderer) Frames() uint64 { return r.frames }

func (r *Renderer) frame() {
	if !r.running {
		return
	}
	r.Draw()
	r.handle = r.sched.RequestFrame(r.frame)
}

// Draw renders a single frame without scheduling another one.
func (r *Renderer) Draw() {
	r.surface.Clear()

	reading := r.source.Sample()
	palette := PaletteFor(r.theme())
	w, h := r.surface.Size()

	r.surface.FillRadialGradient(Glow(w, h, reading.Bass, palette))

	stroke := Stroke{
		Width: StrokeWidth,
		Cap:   CapRound,
		Join:  JoinRound,
	}
	for i := range r.field.Len() {
		amplitude := r.field.AmplitudeFor(i, reading)
		stroke.Color = palette[r.field.Wave(i).ColorSlot]
		r.surface.StrokePath(r.field.Curve(i, float64(w), amplitude), stroke)
		r.field.Advance(i)
	}

	r.frames++
}

// GradientRadius returns the glow radius for a w×h surface: half the larger
// side at silence, growing to 0.8 of it at full bass.
func GradientRadius(w, h int, bass float64) float64 {
	return float64(max(w, h)) * (glowBase + (bass/255)*glowPulse)
}

// Glow returns the bass-driven background gradient, centered on the surface.
func Glow(w, h int, bass float64, p Palette) RadialGradient {
	return RadialGradient{
		CenterX: float64(w) / 2,
		CenterY: float64(h) / 2,
		Radius:  GradientRadius(w, h, bass),
		Stops: []ColorStop{
			{Offset: 0, Color: p[0]},
			{Offset: 0.5, Color: p[1]},
			{Offset: 1, Color: color.NRGBA{}},
		},
	}
}
