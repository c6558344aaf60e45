package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

func writeTestTrack(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create track: %v", err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(4410, sine(0.2, 440.0/44100)), format); err != nil {
		t.Fatalf("encode track: %v", err)
	}
	return path
}

func newTestPlayer(initErr error) (*Player, *int) {
	p := NewPlayer(PlayerOptions{Loop: true, RingSize: 1024}, zap.NewNop())
	inits := new(int)
	p.initSpeaker = func(beep.SampleRate, int) error {
		*inits++
		return initErr
	}
	return p, inits
}

func TestPlayerPlayWithoutTrack(t *testing.T) {
	p, _ := newTestPlayer(nil)
	if err := p.Play(); !errors.Is(err, ErrNoTrack) {
		t.Fatalf("Play() error = %v, want %v", err, ErrNoTrack)
	}
}

func TestPlayerLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	p, _ := newTestPlayer(nil)
	if err := p.Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Load() error = %v, want %v", err, ErrUnsupportedFormat)
	}
	if p.Tap() != nil {
		t.Fatal("Tap() != nil after a failed load")
	}
}

func TestPlayerPlayNotifiesAndToggles(t *testing.T) {
	p, inits := newTestPlayer(nil)
	defer p.Close()

	if err := p.Load(writeTestTrack(t)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Tap() == nil {
		t.Fatal("Tap() = nil after load")
	}
	if got := p.Length(); got <= 0 {
		t.Fatalf("Length() = %v, want > 0", got)
	}

	started := 0
	p.OnPlay(func() { started++ })

	if err := p.Play(); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if !p.Playing() {
		t.Fatal("Playing() = false after Play")
	}

	if err := p.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if p.Playing() {
		t.Fatal("Playing() = true after toggling off")
	}

	if err := p.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !p.Playing() {
		t.Fatal("Playing() = false after toggling on")
	}

	if started != 2 {
		t.Fatalf("OnPlay fired %d times, want 2", started)
	}
	if *inits != 1 {
		t.Fatalf("speaker initialized %d times, want 1", *inits)
	}
}

func TestPlayerSpeakerFailureIsReported(t *testing.T) {
	initErr := errors.New("autoplay blocked")
	p, _ := newTestPlayer(initErr)
	defer p.Close()

	if err := p.Load(writeTestTrack(t)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	started := false
	p.OnPlay(func() { started = true })

	if err := p.Play(); !errors.Is(err, initErr) {
		t.Fatalf("Play() error = %v, want %v", err, initErr)
	}
	if p.Playing() {
		t.Fatal("Playing() = true after a failed start")
	}
	if started {
		t.Fatal("OnPlay fired after a failed start")
	}
}
