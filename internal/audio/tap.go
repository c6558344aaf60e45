package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N mono samples into a ring
// buffer so the analyser can look at recently played audio.
type Tap struct {
	Source    beep.Streamer
	buffer    []float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

var _ beep.Streamer = (*Tap)(nil)

// NewTap creates a tap holding ringSize samples.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([]float64, ringSize),
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = (samples[i][0] + samples[i][1]) * 0.5
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled = min(t.filled+n, len(t.buffer))
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Len returns the ring capacity.
func (t *Tap) Len() int { return len(t.buffer) }

// Latest fills dst with the most recent samples in chronological order, the
// newest sample last. If fewer samples have been recorded than dst holds, the
// front of dst is zeroed. It returns the number of recorded samples copied.
func (t *Tap) Latest(dst []float64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := min(len(dst), t.filled)
	pad := len(dst) - n
	clear(dst[:pad])

	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	for i := len(dst) - 1; i >= pad; i-- {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		dst[i] = t.buffer[idx]
		idx--
	}
	return n
}
