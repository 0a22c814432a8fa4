package synth

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// StepHz is the synthesizer frequency resolution.
	StepHz = 7.8125
	// SampleRate is the device playback rate in Hz.
	SampleRate = 8000
	// MaxFrequency is the highest synthesizable frequency in Hz.
	MaxFrequency = StepHz * 255
)

var (
	// ErrFrequencyRange indicates a frequency outside [StepHz, MaxFrequency].
	ErrFrequencyRange = errors.New("synth: frequency out of range")
	// ErrZeroFrequency indicates a frequency byte of zero, which the device rejects.
	ErrZeroFrequency = errors.New("synth: frequency byte must not be zero")
	// ErrCyclesRange indicates a duration that does not fit in one cycle byte.
	ErrCyclesRange = errors.New("synth: cycle count out of range")
	// ErrRamp indicates an invalid envelope ramp.
	ErrRamp = errors.New("synth: invalid ramp")
)

// FrequencyCode returns the frequency byte closest to hz.
func FrequencyCode(hz float64) (uint8, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) {
		return 0, fmt.Errorf("%w: %f", ErrFrequencyRange, hz)
	}
	code := math.Round(hz / StepHz)
	if code < 1 || code > 255 {
		return 0, fmt.Errorf("%w: %f", ErrFrequencyRange, hz)
	}
	return uint8(code), nil
}

// Frequency returns the sinusoid frequency in Hz for a frequency byte.
func Frequency(code uint8) float64 {
	return StepHz * float64(code)
}

// AmplitudeCode maps a linear amplitude in [0, 1] to an amplitude byte.
// Values outside the range are clamped.
func AmplitudeCode(linear float64) uint8 {
	if math.IsNaN(linear) || linear <= 0 {
		return 0
	}
	if linear >= 1 {
		return 0xFF
	}
	return uint8(math.Round(linear * 255))
}

// AmplitudeCodeDB maps a level in dB relative to full scale to an
// amplitude byte.
func AmplitudeCodeDB(db float64) uint8 {
	return AmplitudeCode(math.Pow(10, db/20))
}

// Amplitude returns the linear amplitude of an amplitude byte.
func Amplitude(code uint8) float64 {
	return float64(code) / 255
}

// PeakVoltage returns the absolute peak voltage for an amplitude byte at
// the given full-scale peak voltage.
func PeakVoltage(code uint8, fullScale float64) float64 {
	return Amplitude(code) * fullScale
}

// Cycles returns the cycle count that plays freqCode for approximately d.
func Cycles(d time.Duration, freqCode uint8) (uint8, error) {
	if freqCode == 0 {
		return 0, ErrZeroFrequency
	}
	n := math.Round(d.Seconds() * Frequency(freqCode))
	if n < 1 || n > 255 {
		return 0, fmt.Errorf("%w: %v at %.4f Hz needs %.0f cycles", ErrCyclesRange, d, Frequency(freqCode), n)
	}
	return uint8(n), nil
}

// Duration returns the playing time of cycles periods at freqCode.
// A zero frequency byte yields zero.
func Duration(cycles, freqCode uint8) time.Duration {
	if freqCode == 0 {
		return 0
	}
	seconds := float64(cycles) / Frequency(freqCode)
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
