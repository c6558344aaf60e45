package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(`
[window]
title = "Studio"

[audio]
track = "music/loop.mp3"
fft_size = 512

[entry]
fade = "750ms"
`))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Window.Title != "Studio" {
		t.Errorf("Window.Title = %q, want %q", cfg.Window.Title, "Studio")
	}
	if cfg.Window.Width != WindowWidth {
		t.Errorf("Window.Width = %d, want %d", cfg.Window.Width, WindowWidth)
	}
	if cfg.Audio.Track != "music/loop.mp3" || cfg.Audio.FFTSize != 512 {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
	if cfg.Audio.Smoothing != SmoothingFactor {
		t.Errorf("Audio.Smoothing = %v, want %v", cfg.Audio.Smoothing, SmoothingFactor)
	}
	if time.Duration(cfg.Entry.Fade) != 750*time.Millisecond {
		t.Errorf("Entry.Fade = %v, want 750ms", time.Duration(cfg.Entry.Fade))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestParseConfigBadDuration(t *testing.T) {
	if _, err := ParseConfig(strings.NewReader("[entry]\nfade = \"soon\"\n")); err == nil {
		t.Fatal("ParseConfig() error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"fft not power of two", func(c *Config) { c.Audio.FFTSize = 300 }},
		{"fft too small", func(c *Config) { c.Audio.FFTSize = 64 }},
		{"ring smaller than fft", func(c *Config) { c.Audio.RingSize = 100 }},
		{"smoothing above one", func(c *Config) { c.Audio.Smoothing = 1.5 }},
		{"decibels reversed", func(c *Config) { c.Audio.MinDecibels = 0 }},
		{"volume too loud", func(c *Config) { c.Audio.Volume = 11 }},
		{"negative fade", func(c *Config) { c.Entry.Fade = Duration(-time.Second) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Audio.FFTSize != FFTSize {
		t.Fatalf("Audio.FFTSize = %d, want %d", cfg.Audio.FFTSize, FFTSize)
	}
}
