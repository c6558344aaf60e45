package audio

import (
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Band bounds, as half-open bin index ranges.
const (
	bassEnd   = 5
	midEnd    = 20
	trebleEnd = 50
)

// FrequencyReading is one frame's banded energy, every field in [0, 255].
type FrequencyReading struct {
	Average float64
	Bass    float64
	Mid     float64
	Treble  float64
}

// BinSource fills a buffer with byte frequency magnitudes.
type BinSource interface {
	FrequencyBins(dst []byte)
}

// SamplerState is the state of a Sampler's signal tap.
type SamplerState uint8

const (
	// Uninitialized means no signal is attached and readings are zero.
	Uninitialized SamplerState = iota
	// Active means a signal is attached.
	Active
)

func (s SamplerState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Sampler produces a FrequencyReading per frame. It starts Uninitialized and
// becomes Active at most once, through Activate.
type Sampler struct {
	logger *zap.Logger

	once   sync.Once
	state  SamplerState
	source BinSource

	bins   []byte
	values []float64
}

// NewSampler creates a sampler over a buffer of binCount bins.
func NewSampler(binCount int, logger *zap.Logger) *Sampler {
	return &Sampler{
		logger: logger.Named("sampler"),
		bins:   make([]byte, binCount),
		values: make([]float64, binCount),
	}
}

// Activate attaches a signal source obtained from acquire. Only the first call
// does anything; if acquire fails the sampler stays Uninitialized for good.
func (s *Sampler) Activate(acquire func() (BinSource, error)) {
	s.once.Do(func() {
		src, err := acquire()
		if err != nil {
			s.logger.Warn("audio analysis not supported, visuals stay ambient", zap.Error(err))
			return
		}
		s.source = src
		s.state = Active
		s.logger.Debug("signal attached", zap.Int("bins", len(s.bins)))
	})
}

// State returns the current state.
func (s *Sampler) State() SamplerState { return s.state }

// Sample reads the attached signal. It returns the zero reading while
// Uninitialized.
func (s *Sampler) Sample() FrequencyReading {
	if s.state != Active {
		return FrequencyReading{}
	}

	s.source.FrequencyBins(s.bins)
	return ReadingFromBins(s.bins, s.values)
}

// ReadingFromBins computes the banded reading of bins. scratch, if large
// enough, is used to avoid an allocation.
func ReadingFromBins(bins []byte, scratch []float64) FrequencyReading {
	if len(bins) == 0 {
		return FrequencyReading{}
	}
	if len(scratch) < len(bins) {
		scratch = make([]float64, len(bins))
	}
	values := scratch[:len(bins)]
	for i, b := range bins {
		values[i] = float64(b)
	}

	return FrequencyReading{
		Average: stat.Mean(values, nil),
		Bass:    bandMean(values, 0, bassEnd),
		Mid:     bandMean(values, bassEnd, midEnd),
		Treble:  bandMean(values, midEnd, trebleEnd),
	}
}

// bandMean averages values[lo:hi]. Bins past the end of a short buffer count
// as silent so the divisor stays the band width.
func bandMean(values []float64, lo, hi int) float64 {
	if lo >= len(values) {
		return 0
	}
	return floats.Sum(values[lo:min(hi, len(values))]) / float64(hi-lo)
}
