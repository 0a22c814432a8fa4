package synth

import (
	"errors"
	"testing"
	"time"

	"github.com/cwbudde/algo-haptic/ram"
)

func TestToneRecord(t *testing.T) {
	tone := Tone{
		Frequency: 250,
		Amplitude: 1,
		Duration:  200 * time.Millisecond,
		RampUp:    2,
		RampDown:  1,
	}
	r, err := tone.Record()
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	want := ram.Record{Amplitude: 0xFF, Frequency: 32, Cycles: 50, Envelope: 0x21}
	if r != want {
		t.Fatalf("Record()=%+v, want %+v", r, want)
	}

	back := ToneOf(r)
	if back.Frequency != 250 || back.Amplitude != 1 || back.Duration != 200*time.Millisecond {
		t.Fatalf("ToneOf()=%+v", back)
	}
	if back.RampUp != 2 || back.RampDown != 1 {
		t.Fatalf("ToneOf() ramps = %d/%d, want 2/1", back.RampUp, back.RampDown)
	}
}

func TestToneRecordRampTooLong(t *testing.T) {
	tone := Tone{Frequency: 250, Amplitude: 1, Duration: 50 * time.Millisecond, RampUp: 2}
	if _, err := tone.Record(); !errors.Is(err, ErrRamp) {
		t.Fatalf("Record() err=%v, want ErrRamp", err)
	}
}

func TestSequence(t *testing.T) {
	c, err := Sequence(
		Tone{Frequency: 125, Amplitude: 1, Duration: 80 * time.Millisecond},
		Tone{Frequency: 125, Amplitude: 0, Duration: 40 * time.Millisecond},
		Tone{Frequency: 250, Amplitude: 0.5, Duration: 80 * time.Millisecond},
	)
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if c.Mode() != ram.Synthesis || c.Len() != 3 || c.Bytes() != 12 {
		t.Fatalf("chunk mode=%v len=%d bytes=%d", c.Mode(), c.Len(), c.Bytes())
	}
	if c.Amplitude(1) != 0 {
		t.Fatalf("silent tone amplitude=%d, want 0", c.Amplitude(1))
	}

	if _, err := Sequence(); err == nil {
		t.Fatal("expected error for empty sequence")
	}
	if _, err := Sequence(Tone{Frequency: 1, Duration: time.Second}); !errors.Is(err, ErrFrequencyRange) {
		t.Fatalf("Sequence(bad tone) err=%v, want ErrFrequencyRange", err)
	}
}
