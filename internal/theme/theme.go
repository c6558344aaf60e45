// Package theme keeps the light/dark page theme and persists the choice
// between runs.
package theme

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Theme is the page theme flag.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// Default is the theme used when nothing has been saved.
const Default = Dark

// Parse returns the theme named s, or Default for anything unknown.
func Parse(s string) Theme {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s)
	default:
		return Default
	}
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// state is the on-disk layout of the state file.
type state struct {
	Theme string `toml:"theme"`
}

// Store holds the current theme and writes every change to a state file.
type Store struct {
	path    string
	logger  *zap.Logger
	current Theme
}

// DefaultPath returns the state file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find user config directory")
	}
	return filepath.Join(dir, "landing", "state.toml"), nil
}

// Open loads the theme saved at path. A missing or unreadable file falls
// back to Default; only the failure to read an existing file is logged.
func Open(path string, logger *zap.Logger) *Store {
	s := &Store{
		path:    path,
		logger:  logger.Named("theme"),
		current: Default,
	}

	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return s
	case err != nil:
		s.logger.Warn("failed to read theme state", zap.String("path", path), zap.Error(err))
		return s
	}

	var st state
	if err := toml.Unmarshal(b, &st); err != nil {
		s.logger.Warn("ignoring corrupt theme state", zap.String("path", path), zap.Error(err))
		return s
	}

	s.current = Parse(st.Theme)
	return s
}

// Current returns the active theme. It is safe to call every frame.
func (s *Store) Current() Theme { return s.current }

// Toggle switches to the other theme and saves it. The switch takes effect
// even if saving fails.
func (s *Store) Toggle() (Theme, error) {
	s.current = s.current.Other()
	return s.current, s.save()
}

// Set switches to t and saves it.
func (s *Store) Set(t Theme) error {
	s.current = Parse(string(t))
	return s.save()
}

func (s *Store) save() error {
	b, err := toml.Marshal(state{Theme: string(s.current)})
	if err != nil {
		return errors.Wrap(err, "failed to encode theme state")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create state directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".state-*.toml")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary state file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write theme state")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to write theme state")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "failed to replace theme state")
	}

	s.logger.Debug("saved theme", zap.String("theme", string(s.current)))
	return nil
}
