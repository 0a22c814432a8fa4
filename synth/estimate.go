package synth

import (
	"errors"
	"fmt"
	"math"
	"time"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

var errShortSignal = errors.New("synth: estimate needs at least 4 samples")

// Estimate measures the dominant sinusoid in samples.
//
// The signal is Hann-windowed and zero-padded to a power of two. The
// frequency is refined by parabolic interpolation around the peak bin and
// the amplitude is corrected for the window's coherent gain. The returned
// Duration is the signal length; ramps are left at RampNone.
func Estimate(samples []float64, sampleRate float64) (Tone, error) {
	if len(samples) < 4 {
		return Tone{}, errShortSignal
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Tone{}, fmt.Errorf("synth: sample rate must be > 0 and finite: %f", sampleRate)
	}

	n := len(samples)
	coeffs := hann(n)
	windowed := append([]float64(nil), samples...)
	vecmath.MulBlockInPlace(windowed, coeffs)

	fftSize := nextPowerOf2(n)
	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Tone{}, fmt.Errorf("synth: fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Tone{}, fmt.Errorf("synth: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peak := 1
	for k := 2; k < bins-1; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}

	delta := 0.0
	if peak+1 < bins {
		a, b, c := mag[peak-1], mag[peak], mag[peak+1]
		if den := a - 2*b + c; den != 0 {
			delta = 0.5 * (a - c) / den
		}
	}

	gain := 0.0
	for _, w := range coeffs {
		gain += w
	}
	amp := 0.0
	if gain > 0 {
		amp = 2 * mag[peak] / gain
	}

	return Tone{
		Frequency: (float64(peak) + delta) * sampleRate / float64(fftSize),
		Amplitude: math.Min(amp, 1),
		Duration:  time.Duration(float64(n) / sampleRate * float64(time.Second)),
	}, nil
}

func hann(n int) []float64 {
	out := make([]float64, n)
	den := float64(n - 1)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}
	return out
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
