package audio

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"github.com/pkg/errors"
)

// AnalyserOptions configures an Analyser.
type AnalyserOptions struct {
	// FFTSize is the transform window. It must be a power of two of at least
	// 128; the analyser exposes FFTSize/2 bins.
	FFTSize int
	// Smoothing blends each frame with the previous one, 0 disables it.
	Smoothing   float64
	MinDecibels float64
	MaxDecibels float64
}

// Analyser turns the recent samples of a Tap into byte frequency magnitudes,
// mapping [MinDecibels, MaxDecibels] onto [0, 255].
type Analyser struct {
	tap  *Tap
	opts AnalyserOptions

	window   []float64
	samples  []float64
	smoothed []float64
}

var _ BinSource = (*Analyser)(nil)

// NewAnalyser creates an analyser over tap.
func NewAnalyser(tap *Tap, opts AnalyserOptions) (*Analyser, error) {
	if tap == nil {
		return nil, errors.New("no audio tap to analyse")
	}

	n := opts.FFTSize
	if n < 128 || n&(n-1) != 0 {
		return nil, errors.Errorf("unsupported fft size %d", n)
	}
	if tap.Len() < n {
		return nil, errors.Errorf("tap holds %d samples, need %d", tap.Len(), n)
	}
	if opts.MinDecibels >= opts.MaxDecibels {
		return nil, errors.Errorf("invalid decibel range [%v, %v]", opts.MinDecibels, opts.MaxDecibels)
	}

	return &Analyser{
		tap:      tap,
		opts:     opts,
		window:   window.Blackman(n),
		samples:  make([]float64, n),
		smoothed: make([]float64, n/2),
	}, nil
}

// BinCount returns the number of frequency bins, half the FFT size.
func (a *Analyser) BinCount() int { return len(a.smoothed) }

// FrequencyBins writes the current byte magnitudes into dst. At most
// BinCount bytes are written.
func (a *Analyser) FrequencyBins(dst []byte) {
	a.tap.Latest(a.samples)
	for i, w := range a.window {
		a.samples[i] *= w
	}

	spectrum := fft.FFTReal(a.samples)
	size := float64(len(a.samples))
	tau := a.opts.Smoothing
	dbRange := a.opts.MaxDecibels - a.opts.MinDecibels

	for k := range min(len(dst), len(a.smoothed)) {
		mag := cmplx.Abs(spectrum[k]) / size
		a.smoothed[k] = tau*a.smoothed[k] + (1-tau)*mag

		if a.smoothed[k] <= 0 {
			dst[k] = 0
			continue
		}

		db := 20 * math.Log10(a.smoothed[k])
		scaled := 255 * (db - a.opts.MinDecibels) / dbRange
		dst[k] = uint8(math.Max(0, math.Min(255, scaled)))
	}
}
