package theme

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"dark", Dark},
		{"light", Light},
		{"", Dark},
		{"solarized", Dark},
	}
	for _, test := range tests {
		if got := Parse(test.in); got != test.want {
			t.Errorf("Parse(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestOpenMissingDefaultsToDark(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "state.toml"), zap.NewNop())
	if s.Current() != Dark {
		t.Fatalf("Current() = %q, want %q", s.Current(), Dark)
	}
}

func TestTogglePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.toml")

	s := Open(path, zap.NewNop())
	got, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if got != Light || s.Current() != Light {
		t.Fatalf("Toggle() = %q, Current() = %q, want %q", got, s.Current(), Light)
	}

	reopened := Open(path, zap.NewNop())
	if reopened.Current() != Light {
		t.Fatalf("reopened Current() = %q, want %q", reopened.Current(), Light)
	}

	if _, err := reopened.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if again := Open(path, zap.NewNop()); again.Current() != Dark {
		t.Fatalf("reopened Current() = %q, want %q", again.Current(), Dark)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read state dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("state dir holds %d files, want only the state file", len(entries))
	}
}

func TestOpenCorruptFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("theme = [unterminated"), 0o644); err != nil {
		t.Fatalf("write state: %v", err)
	}

	s := Open(path, zap.NewNop())
	if s.Current() != Default {
		t.Fatalf("Current() = %q, want %q", s.Current(), Default)
	}
}

func TestSetNormalizesUnknown(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "state.toml"), zap.NewNop())
	if err := s.Set(Light); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("neon"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if s.Current() != Dark {
		t.Fatalf("Current() = %q, want %q", s.Current(), Dark)
	}
}
