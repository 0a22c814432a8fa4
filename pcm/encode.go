package pcm

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-haptic/ram"
	"github.com/cwbudde/algo-vecmath"
)

// SampleRate is the Direct playback rate in Hz.
const SampleRate = 8000

const (
	bitMul  = 127.5 // 2^(8-1) - 0.5
	limitLo = -128
	limitHi = 127
)

var errEmptyInput = errors.New("pcm: input must not be empty")

// Encoder converts float samples to device bytes.
type Encoder struct {
	sourceRate float64
	gain       float64
	dither     bool
	rng        *rand.Rand
}

// NewEncoder creates an Encoder. By default the input is already at 8 kHz,
// gain is 1 and triangular dither is enabled with a random seed.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		err := opt(&cfg)
		if err != nil {
			return nil, err
		}
	}

	enc := &Encoder{
		sourceRate: cfg.sourceRate,
		gain:       cfg.gain,
		dither:     cfg.dither,
		rng:        cfg.rng,
	}
	if enc.rng == nil {
		enc.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return enc, nil
}

// SourceRate returns the configured input sample rate.
func (e *Encoder) SourceRate() float64 { return e.sourceRate }

// OutputLen returns the number of bytes Encode produces for n input samples.
func (e *Encoder) OutputLen(n int) int {
	if n <= 0 {
		return 0
	}
	if e.sourceRate == SampleRate {
		return n
	}
	return max(1, int(math.Round(float64(n)*SampleRate/e.sourceRate)))
}

// Encode converts samples to Direct playback bytes.
func (e *Encoder) Encode(samples []float64) ([]byte, error) {
	if len(samples) == 0 {
		return nil, errEmptyInput
	}

	scaled := make([]float64, len(samples))
	vecmath.ScaleBlock(scaled, samples, e.gain)

	if e.sourceRate != SampleRate {
		scaled = e.resample(scaled)
	}

	out := make([]byte, len(scaled))
	for i, v := range scaled {
		out[i] = byte(int8(e.quantize(v)))
	}

	return out, nil
}

// Chunk encodes samples into a Direct chunk.
func (e *Encoder) Chunk(samples []float64) (ram.Chunk, error) {
	b, err := e.Encode(samples)
	if err != nil {
		return ram.Chunk{}, err
	}
	return ram.NewDirect(b), nil
}

func (e *Encoder) quantize(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	x := bitMul * v
	if e.dither {
		x += e.rng.Float64() - e.rng.Float64()
	}
	return clampInt(int(math.Floor(x)))
}

func (e *Encoder) resample(in []float64) []float64 {
	n := e.OutputLen(len(in))
	out := make([]float64, n)
	step := e.sourceRate / SampleRate
	last := len(in) - 1

	at := func(i int) float64 {
		return in[max(0, min(last, i))]
	}

	for m := range out {
		pos := float64(m) * step
		i := int(pos)
		frac := pos - float64(i)
		out[m] = hermite4(frac, at(i-1), at(i), at(i+1), at(i+2))
	}

	return out
}

// Sample quantizes one value in [-1, +1] without dither.
func Sample(v float64) byte {
	if math.IsNaN(v) {
		return 0
	}
	return byte(int8(clampInt(int(math.Floor(bitMul * v)))))
}

// Decode converts device bytes back to floats in approximately [-1, +1].
func Decode(b []byte) []float64 {
	out := make([]float64, len(b))
	for i, v := range b {
		out[i] = (float64(int8(v)) + 0.5) / bitMul
	}
	return out
}

func clampInt(v int) int {
	return max(limitLo, min(limitHi, v))
}

// hermite4 interpolates between x0 and x1 using neighbours xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
