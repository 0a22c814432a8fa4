package pcm

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultSourceRate = SampleRate
	defaultGain       = 1.0
	defaultDither     = true
)

type config struct {
	sourceRate float64
	gain       float64
	dither     bool
	rng        *rand.Rand
}

func defaultConfig() config {
	return config{
		sourceRate: defaultSourceRate,
		gain:       defaultGain,
		dither:     defaultDither,
	}
}

// Option configures an [Encoder].
type Option func(*config) error

// WithSourceRate sets the sample rate of the input in Hz (default 8000).
func WithSourceRate(hz float64) Option {
	return func(cfg *config) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("pcm: source rate must be > 0 and finite: %f", hz)
		}

		cfg.sourceRate = hz

		return nil
	}
}

// WithGain sets a linear gain applied before quantization (default 1).
func WithGain(g float64) Option {
	return func(cfg *config) error {
		if g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("pcm: gain must be >= 0 and finite: %f", g)
		}

		cfg.gain = g

		return nil
	}
}

// WithDither enables or disables triangular dither (default true).
func WithDither(enabled bool) Option {
	return func(cfg *config) error {
		cfg.dither = enabled
		return nil
	}
}

// WithSeed makes dither noise reproducible.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}
