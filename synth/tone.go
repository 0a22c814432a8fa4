package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-haptic/ram"
)

var errEmptySequence = errors.New("synth: sequence must contain at least one tone")

// Tone describes one synthesized sinusoid in physical units.
type Tone struct {
	// Frequency in Hz.
	Frequency float64
	// Amplitude relative to full scale, in [0, 1].
	Amplitude float64
	// Duration of the sinusoid, including ramp-up time.
	Duration time.Duration
	RampUp   Ramp
	RampDown Ramp
}

// Record encodes t as a synthesizer record.
func (t Tone) Record() (ram.Record, error) {
	freq, err := FrequencyCode(t.Frequency)
	if err != nil {
		return ram.Record{}, err
	}
	cycles, err := Cycles(t.Duration, freq)
	if err != nil {
		return ram.Record{}, err
	}
	env, err := Envelope(t.RampUp, t.RampDown)
	if err != nil {
		return ram.Record{}, err
	}
	if t.RampUp != RampNone && t.RampUp.Time() >= Duration(cycles, freq) {
		return ram.Record{}, fmt.Errorf("%w: ramp-up %v not shorter than duration %v",
			ErrRamp, t.RampUp.Time(), Duration(cycles, freq))
	}
	return ram.Record{
		Amplitude: AmplitudeCode(t.Amplitude),
		Frequency: freq,
		Cycles:    cycles,
		Envelope:  env,
	}, nil
}

// ToneOf decodes a synthesizer record.
func ToneOf(r ram.Record) Tone {
	up, down := SplitEnvelope(r.Envelope)
	return Tone{
		Frequency: Frequency(r.Frequency),
		Amplitude: Amplitude(r.Amplitude),
		Duration:  Duration(r.Cycles, r.Frequency),
		RampUp:    up,
		RampDown:  down,
	}
}

// Sequence encodes tones as one Synthesis chunk, played in order.
func Sequence(tones ...Tone) (ram.Chunk, error) {
	if len(tones) == 0 {
		return ram.Chunk{}, errEmptySequence
	}
	recs := make([]ram.Record, len(tones))
	for i, t := range tones {
		r, err := t.Record()
		if err != nil {
			return ram.Chunk{}, fmt.Errorf("tone %d: %w", i, err)
		}
		recs[i] = r
	}
	return ram.NewSynthesis(recs...), nil
}
