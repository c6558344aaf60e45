// Package app hosts the landing screen in an ebiten window: the entry gate,
// the music and theme buttons, and the wave canvas behind them.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/landing/internal/audio"
	"github.com/iburimskiy/landing/internal/config"
	"github.com/iburimskiy/landing/internal/render"
	"github.com/iburimskiy/landing/internal/theme"
	"github.com/iburimskiy/landing/internal/wave"
	"go.uber.org/zap"
)

const tagline = "Sound on. Stay a while."

// Game is the ebiten game for the landing screen.
type Game struct {
	cfg    *config.Config
	logger *zap.Logger

	player  *audio.Player
	sampler *audio.Sampler
	themes  *theme.Store

	canvas   *canvas
	frames   *render.FrameQueue
	renderer *render.Renderer

	gate     *entryGate
	entry    button
	musicBtn button
	themeBtn button

	width, height int
	lastErr       error
	closed        bool
}

var _ ebiten.Game = (*Game)(nil)

// New creates the game and starts the wave renderer. Audio analysis is
// attached the first time the player starts.
func New(cfg *config.Config, player *audio.Player, themes *theme.Store, logger *zap.Logger) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height

	g := &Game{
		cfg:     cfg,
		logger:  logger.Named("app"),
		player:  player,
		sampler: audio.NewSampler(cfg.Audio.FFTSize/2, logger),
		themes:  themes,
		canvas:  newCanvas(w, h),
		frames:  &render.FrameQueue{},
		gate:    newEntryGate(time.Duration(cfg.Entry.Fade), ebiten.TPS()),
		width:   w,
		height:  h,
		entry: button{
			W:     config.EntryButtonWidth,
			H:     config.EntryButtonHeight,
			Label: "Enter",
		},
		musicBtn: button{W: config.ButtonWidth, H: config.ButtonHeight},
		themeBtn: button{W: config.ButtonWidth, H: config.ButtonHeight},
	}
	g.layoutButtons()

	player.OnPlay(g.attachAnalyser)

	g.renderer = render.NewRenderer(
		g.canvas,
		g.frames,
		g.sampler,
		wave.NewField(float64(h)),
		themes.Current,
		logger,
	)
	g.renderer.Start()

	return g
}

// attachAnalyser runs on every playback start; the sampler only acts on the
// first one.
func (g *Game) attachAnalyser() {
	g.sampler.Activate(func() (audio.BinSource, error) {
		a, err := audio.NewAnalyser(g.player.Tap(), audio.AnalyserOptions{
			FFTSize:     g.cfg.Audio.FFTSize,
			Smoothing:   g.cfg.Audio.Smoothing,
			MinDecibels: g.cfg.Audio.MinDecibels,
			MaxDecibels: g.cfg.Audio.MaxDecibels,
		})
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}

func (g *Game) layoutButtons() {
	g.entry.X = (g.width - g.entry.W) / 2
	g.entry.Y = (g.height - g.entry.H) / 2

	g.musicBtn.X = config.ButtonMargin
	g.musicBtn.Y = g.height - config.ButtonMargin - g.musicBtn.H
	g.themeBtn.X = g.width - config.ButtonMargin - g.themeBtn.W
	g.themeBtn.Y = g.height - config.ButtonMargin - g.themeBtn.H
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	justReleased := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.gate.Accepting() {
		clicked := g.entry.update(mouseX, mouseY, justPressed, justReleased)
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.gate.Open()
			g.logger.Debug("entry opened")
		}
	}
	if g.gate.Update() {
		g.reveal()
	}

	if g.gate.Hidden() {
		if g.musicBtn.update(mouseX, mouseY, justPressed, justReleased) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.toggleMusic()
		}
		if g.themeBtn.update(mouseX, mouseY, justPressed, justReleased) || inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.toggleTheme()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	return nil
}

// reveal shows the content and starts the music. Playback failures leave the
// page silent but otherwise working.
func (g *Game) reveal() {
	g.logger.Debug("content revealed")
	err := g.player.Play()
	switch {
	case err == nil:
	case errors.Is(err, audio.ErrNoTrack):
		g.logger.Debug("no music to play")
	default:
		g.logger.Warn("audio playback prevented", zap.Error(err))
		g.lastErr = err
	}
}

func (g *Game) toggleMusic() {
	if err := g.player.Toggle(); err != nil {
		g.logger.Warn("failed to toggle music", zap.Error(err))
		g.lastErr = err
		return
	}
	g.lastErr = nil
}

func (g *Game) toggleTheme() {
	t, err := g.themes.Toggle()
	if err != nil {
		g.logger.Warn("failed to save theme", zap.Error(err))
		g.lastErr = err
	}
	g.logger.Debug("theme changed", zap.String("theme", string(t)))
}

func (g *Game) Draw(screen *ebiten.Image) {
	colors := pageColorsFor(g.themes.Current())
	screen.Fill(colors.background)

	g.frames.Flush()
	screen.DrawImage(g.canvas.img, nil)

	if g.gate.Hidden() {
		g.drawContent(screen, colors)
	} else {
		g.drawEntry(screen, colors)
	}

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

func (g *Game) drawEntry(screen *ebiten.Image, c pageColors) {
	// The veil stands in for the page blur and lifts with the button.
	veil := fade(c.veil, g.gate.Opacity())
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), veil, false)
	g.entry.draw(screen, c, g.gate.Opacity())
}

func (g *Game) drawContent(screen *ebiten.Image, c pageColors) {
	title := g.cfg.Window.Title
	ebitenutil.DebugPrintAt(screen, title, (g.width-len(title)*glyphWidth)/2, g.height/2-glyphHeight)
	ebitenutil.DebugPrintAt(screen, tagline, (g.width-len(tagline)*glyphWidth)/2, g.height/2+4)

	g.musicBtn.Label = "Music: off"
	if g.player.Playing() {
		g.musicBtn.Label = "Music: on"
	}
	g.musicBtn.draw(screen, c, 1)

	g.themeBtn.Label = "Theme: " + string(g.themes.Current())
	g.themeBtn.draw(screen, c, 1)

	if length := g.player.Length(); length > 0 {
		pos := fmt.Sprintf("%s / %s", formatDuration(g.player.Position()), formatDuration(length))
		ebitenutil.DebugPrintAt(screen, pos,
			g.musicBtn.X+g.musicBtn.W+config.ButtonMargin,
			g.musicBtn.Y+(g.musicBtn.H-glyphHeight)/2)
	}
}

// Layout follows the window size. A change resizes the canvas before the next
// frame is drawn; the waves keep the positions computed at startup.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.canvas.Resize(w, h)
		g.layoutButtons()
		g.logger.Debug("resized", zap.Int("width", w), zap.Int("height", h))
	}
	return w, h
}

// Close stops the renderer and releases the audio device. It is safe to call
// more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.renderer.Stop()
	if err := g.player.Close(); err != nil {
		g.logger.Warn("failed to close player", zap.Error(err))
	}
}
