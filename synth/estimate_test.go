package synth

import (
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-haptic/internal/testutil"
)

func TestEstimateSine(t *testing.T) {
	tests := []struct {
		freq float64
		amp  float64
	}{
		{125, 0.5},
		{250, 1},
		{171.875, 0.25},
	}
	for _, tc := range tests {
		x := testutil.DeterministicSine(tc.freq, SampleRate, tc.amp, 4000)
		tone, err := Estimate(x, SampleRate)
		if err != nil {
			t.Fatalf("Estimate() error = %v", err)
		}
		if math.Abs(tone.Frequency-tc.freq) > 1 {
			t.Fatalf("freq=%v, want %v", tone.Frequency, tc.freq)
		}
		if math.Abs(tone.Amplitude-tc.amp) > 0.05 {
			t.Fatalf("amp=%v, want %v", tone.Amplitude, tc.amp)
		}
		if tone.Duration != 500*time.Millisecond {
			t.Fatalf("duration=%v, want 500ms", tone.Duration)
		}
	}
}

func TestEstimateToRecord(t *testing.T) {
	x := testutil.DeterministicSine(125, SampleRate, 1, 800)
	tone, err := Estimate(x, SampleRate)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	r, err := tone.Record()
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if r.Frequency != 16 {
		t.Fatalf("frequency byte=%d, want 16", r.Frequency)
	}
	// 100 ms at 125 Hz
	if r.Cycles < 12 || r.Cycles > 13 {
		t.Fatalf("cycles=%d, want 12 or 13", r.Cycles)
	}
}

func TestEstimateValidation(t *testing.T) {
	if _, err := Estimate([]float64{1, 2}, SampleRate); err == nil {
		t.Fatal("expected error for short signal")
	}
	if _, err := Estimate(make([]float64, 16), 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}
