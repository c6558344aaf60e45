package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/landing/internal/app"
	"github.com/iburimskiy/landing/internal/audio"
	"github.com/iburimskiy/landing/internal/config"
	"github.com/iburimskiy/landing/internal/logging"
	"github.com/iburimskiy/landing/internal/theme"
	"github.com/ncruces/zenity"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	configPath = "landing.toml"
	trackPath  = ""
	statePath  = ""
	verbose    = false
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "configuration file")
	pflag.StringVarP(&trackPath, "track", "t", trackPath, "background track (wav, mp3 or flac)")
	pflag.StringVar(&statePath, "state", statePath, "theme state file")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
}

func main() {
	pflag.Parse()

	logger := logging.New(verbose)
	defer logger.Sync()

	if err := run(logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if trackPath != "" {
		cfg.Audio.Track = trackPath
	}
	if statePath != "" {
		cfg.State.Path = statePath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.State.Path == "" {
		path, err := theme.DefaultPath()
		if err != nil {
			return err
		}
		cfg.State.Path = path
	}
	themes := theme.Open(cfg.State.Path, logger)

	player := audio.NewPlayer(audio.PlayerOptions{
		Volume:   cfg.Audio.Volume,
		Loop:     cfg.Audio.Loop,
		RingSize: cfg.Audio.RingSize,
	}, logger)

	track, err := resolveTrack(cfg.Audio.Track)
	if err != nil {
		return err
	}
	if track != "" {
		if err := player.Load(track); err != nil {
			// The page still works without music.
			logger.Warn("failed to load track", zap.String("path", track), zap.Error(err))
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := app.New(cfg, player, themes, logger)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game failed: %w", err)
	}
	return nil
}

// resolveTrack returns the configured track, or asks for one. Cancelling the
// dialog means running without music.
func resolveTrack(track string) (string, error) {
	if track != "" {
		return track, nil
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("failed to choose a track: %w", err)
	}
	return filename, nil
}
