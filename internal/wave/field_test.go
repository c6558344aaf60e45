package wave

import (
	"math"
	"testing"

	"github.com/iburimskiy/landing/internal/audio"
)

func TestNewFieldBaseline(t *testing.T) {
	f := NewField(600)
	if f.Len() != Count {
		t.Fatalf("Len() = %d, want %d", f.Len(), Count)
	}

	want := []Wave{
		{Y: 180, Amplitude: 30, Frequency: 0.005, Speed: 0.015, ColorSlot: 0},
		{Y: 300, Amplitude: 45, Frequency: 0.008, Speed: 0.023, ColorSlot: 1},
		{Y: 420, Amplitude: 60, Frequency: 0.011, Speed: 0.031, ColorSlot: 2},
	}
	for i, w := range want {
		got := f.Wave(i)
		if math.Abs(got.Y-w.Y) > 1e-9 ||
			math.Abs(got.Amplitude-w.Amplitude) > 1e-9 ||
			math.Abs(got.Frequency-w.Frequency) > 1e-12 ||
			math.Abs(got.Speed-w.Speed) > 1e-12 ||
			got.Phase != 0 ||
			got.ColorSlot != w.ColorSlot {
			t.Errorf("Wave(%d) = %+v, want %+v", i, got, w)
		}
	}
}

func TestAmplitudeForSilenceIsBase(t *testing.T) {
	f := NewField(600)
	silent := audio.FrequencyReading{Average: 90}
	for i := range f.Len() {
		if got, want := f.AmplitudeFor(i, silent), f.Wave(i).Amplitude; got != want {
			t.Errorf("AmplitudeFor(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestAmplitudeFor(t *testing.T) {
	f := NewField(600)
	tests := []struct {
		wave    int
		reading audio.FrequencyReading
		want    float64
	}{
		{0, audio.FrequencyReading{Bass: 100}, 120},
		{0, audio.FrequencyReading{Mid: 255, Treble: 255}, 30},
		{1, audio.FrequencyReading{Mid: 80}, 45 * 2.5},
		{2, audio.FrequencyReading{Treble: 100}, 60 * 2.5},
		{2, audio.FrequencyReading{Treble: 255}, 60 * (1 + 2.55*1.5)},
	}

	for _, test := range tests {
		got := f.AmplitudeFor(test.wave, test.reading)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("AmplitudeFor(%d, %+v) = %v, want %v", test.wave, test.reading, got, test.want)
		}
	}
}

func TestAdvanceAccumulates(t *testing.T) {
	f := NewField(600)
	const frames = 10000
	for range frames {
		for i := range f.Len() {
			f.Advance(i)
		}
	}

	for i := range f.Len() {
		w := f.Wave(i)
		want := frames * w.Speed
		if math.Abs(w.Phase-want) > 1e-9 {
			t.Errorf("wave %d phase = %v, want %v", i, w.Phase, want)
		}
	}
}

func TestCurve(t *testing.T) {
	f := NewField(600)
	f.Advance(1)
	w := f.Wave(1)

	var points []Point
	for p := range f.Curve(1, 11, 20) {
		points = append(points, p)
	}

	if len(points) != 6 {
		t.Fatalf("Curve() yielded %d points, want 6", len(points))
	}
	for i, p := range points {
		x := float64(i * Step)
		want := w.Y + math.Sin(x*w.Frequency+w.Phase)*20
		if p.X != x || math.Abs(p.Y-want) > 1e-9 {
			t.Errorf("point %d = %+v, want {%v %v}", i, p, x, want)
		}
	}
}

func TestCurveIsRestartable(t *testing.T) {
	f := NewField(600)
	curve := f.Curve(0, 100, 30)

	count := func() int {
		n := 0
		for range curve {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 50 || b != 50 {
		t.Fatalf("Curve() yielded %d then %d points, want 50 both times", a, b)
	}

	first := 0
	for range curve {
		first++
		break
	}
	if first != 1 {
		t.Fatalf("early break yielded %d points, want 1", first)
	}
}
