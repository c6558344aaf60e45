package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrNoTrack is returned by Play when no track has been loaded.
	ErrNoTrack = errors.New("no track loaded")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// PlayerOptions configures a Player.
type PlayerOptions struct {
	// Volume is in beep/effects units, base 2. 0 leaves the track untouched.
	Volume   float64
	Loop     bool
	RingSize int
}

// Player plays one background track: decoder -> loop -> volume -> tap -> ctrl.
type Player struct {
	logger *zap.Logger
	opts   PlayerOptions

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *Tap

	initDone    bool
	speakerRate beep.SampleRate
	started     bool
	paused      bool
	onPlay      []func()

	// initSpeaker is swapped out in tests.
	initSpeaker func(beep.SampleRate, int) error
}

// NewPlayer creates a player with nothing loaded.
func NewPlayer(opts PlayerOptions, logger *zap.Logger) *Player {
	return &Player{
		logger:      logger.Named("player"),
		opts:        opts,
		paused:      true,
		initSpeaker: speaker.Init,
	}
}

// OnPlay registers f to be called every time playback starts or resumes.
func (p *Player) OnPlay(f func()) {
	p.onPlay = append(p.onPlay, f)
}

// Load opens and decodes the track at path. The track does not play until
// Play is called.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open track")
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to decode %s", filepath.Base(path))
	}

	p.logger.Info("loaded track",
		zap.String("path", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Duration("length", format.SampleRate.D(streamer.Len())))

	p.attach(f, streamer, format)
	return nil
}

func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, errors.Wrap(ErrUnsupportedFormat, ext)
	}
}

// attach replaces the current track with streamer, closing the old one. file
// may be nil for streams not backed by a file.
func (p *Player) attach(file *os.File, streamer beep.StreamSeekCloser, format beep.Format) {
	p.stopCurrent()

	var src beep.Streamer = streamer
	if p.opts.Loop {
		src = beep.Loop(-1, streamer)
	}
	if p.opts.Volume != 0 {
		src = &effects.Volume{Streamer: src, Base: 2, Volume: p.opts.Volume}
	}

	p.tap = NewTap(src, p.opts.RingSize)
	p.ctrl = &beep.Ctrl{Streamer: p.tap, Paused: true}
	p.file = file
	p.streamer = streamer
	p.format = format
	p.started = false
	p.paused = true
}

// Tap returns the tap of the loaded track, or nil.
func (p *Player) Tap() *Tap { return p.tap }

// Playing reports whether the track is currently audible.
func (p *Player) Playing() bool { return p.ctrl != nil && !p.paused }

// Play starts or resumes the track. A speaker failure is returned and leaves
// the player paused.
func (p *Player) Play() error {
	if p.ctrl == nil {
		return ErrNoTrack
	}

	if !p.started {
		if err := p.ensureSpeaker(); err != nil {
			return err
		}
		p.ctrl.Paused = false
		speaker.Play(p.ctrl)
		p.started = true
	} else {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
	}
	p.paused = false

	p.logger.Debug("playback started")
	for _, f := range p.onPlay {
		f()
	}
	return nil
}

// ensureSpeaker initializes the speaker once, and again whenever the track's
// sample rate differs from the one the speaker runs at.
func (p *Player) ensureSpeaker() error {
	if p.initDone && p.speakerRate == p.format.SampleRate {
		return nil
	}

	bufferSize := p.format.SampleRate.N(time.Second / 20)
	if err := p.initSpeaker(p.format.SampleRate, bufferSize); err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}
	p.initDone = true
	p.speakerRate = p.format.SampleRate
	return nil
}

// Pause pauses the track.
func (p *Player) Pause() {
	if p.ctrl == nil || p.paused {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.paused = true
	p.logger.Debug("playback paused")
}

// Toggle flips between playing and paused.
func (p *Player) Toggle() error {
	if p.Playing() {
		p.Pause()
		return nil
	}
	return p.Play()
}

// Position returns the playback position within the track.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	if p.initDone {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.format.SampleRate.D(p.streamer.Position())
}

// Length returns the length of the track.
func (p *Player) Length() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

func (p *Player) stopCurrent() {
	if p.initDone {
		speaker.Clear()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
}

// Close stops playback and releases the track.
func (p *Player) Close() error {
	p.stopCurrent()
	if p.initDone {
		speaker.Close()
		p.initDone = false
	}
	return nil
}
