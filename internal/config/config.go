package config

import (
	"encoding"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// FFTSize is the transform window; the analyser exposes FFTSize/2 bins.
	FFTSize         = 256
	RingSize        = 8192
	SmoothingFactor = 0.8
	MinDecibels     = -100
	MaxDecibels     = -30

	EntryFade = 500 * time.Millisecond

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonMargin = 20

	EntryButtonWidth  = 160
	EntryButtonHeight = 56
)

// Config is the configuration for the landing window.
type Config struct {
	Window WindowConfig `toml:"window"`
	Audio  AudioConfig  `toml:"audio"`
	Entry  EntryConfig  `toml:"entry"`
	State  StateConfig  `toml:"state"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
}

// AudioConfig describes the background track and its analysis.
type AudioConfig struct {
	// Track is the path to a wav, mp3 or flac file. Empty means ask.
	Track  string  `toml:"track"`
	Volume float64 `toml:"volume"`
	Loop   bool    `toml:"loop"`

	FFTSize     int     `toml:"fft_size"`
	Smoothing   float64 `toml:"smoothing"`
	MinDecibels float64 `toml:"min_decibels"`
	MaxDecibels float64 `toml:"max_decibels"`
	RingSize    int     `toml:"ring_size"`
}

// EntryConfig describes the entry gate.
type EntryConfig struct {
	// Fade is how long the entry button fades before the content appears.
	Fade Duration `toml:"fade"`
}

// StateConfig describes where the persisted theme flag lives.
type StateConfig struct {
	// Path is the state file. Empty means the user config directory.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     "Webgard",
			Resizable: true,
		},
		Audio: AudioConfig{
			Volume:      0,
			Loop:        true,
			FFTSize:     FFTSize,
			Smoothing:   SmoothingFactor,
			MinDecibels: MinDecibels,
			MaxDecibels: MaxDecibels,
			RingSize:    RingSize,
		},
		Entry: EntryConfig{
			Fade: Duration(EntryFade),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	n := c.Audio.FFTSize
	if n < 128 || n&(n-1) != 0 {
		return errors.Errorf("fft_size %d must be a power of two no smaller than 128", n)
	}
	if c.Audio.RingSize < n {
		return errors.Errorf("ring_size %d is smaller than fft_size %d", c.Audio.RingSize, n)
	}
	if c.Audio.Smoothing < 0 || c.Audio.Smoothing > 1 {
		return errors.Errorf("smoothing %v is outside [0, 1]", c.Audio.Smoothing)
	}
	if c.Audio.MinDecibels >= c.Audio.MaxDecibels {
		return errors.Errorf("min_decibels %v must be below max_decibels %v",
			c.Audio.MinDecibels, c.Audio.MaxDecibels)
	}
	// Volume is in beep/effects units: powers of two, so ±10 is already
	// far outside anything audible or sane.
	if c.Audio.Volume < -10 || c.Audio.Volume > 10 {
		return errors.Errorf("volume %v is outside [-10, 10]", c.Audio.Volume)
	}

	if c.Entry.Fade < 0 {
		return errors.New("entry fade must not be negative")
	}

	return nil
}

// Duration is a duration that can be parsed from TOML.
type Duration time.Duration

var (
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ encoding.TextMarshaler   = (*Duration)(nil)
)

func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// ParseConfig parses a configuration from a reader. Fields missing from the
// input keep their default values.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return cfg, nil
}

// Load reads the configuration file at path. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	return ParseConfig(f)
}
