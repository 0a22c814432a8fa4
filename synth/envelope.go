package synth

import (
	"fmt"
	"time"
)

// Ramp is a 4-bit envelope ramp rate.
type Ramp uint8

// RampNone disables the envelope ramp.
const RampNone Ramp = 0

// MaxRamp is the slowest ramp.
const MaxRamp Ramp = 0x0F

// Total ramp time to full scale, in milliseconds, per ramp value.
var rampMillis = [16]int{
	0, 32, 64, 96, 128, 160, 192, 224,
	256, 512, 768, 1024, 1280, 1536, 1792, 2048,
}

// Valid reports whether r fits in a nibble.
func (r Ramp) Valid() bool { return r <= MaxRamp }

// Time returns the total ramp time to full-scale amplitude. Ramps to a
// fraction of full scale take the same fraction of this time.
func (r Ramp) Time() time.Duration {
	if !r.Valid() {
		return 0
	}
	return time.Duration(rampMillis[r]) * time.Millisecond
}

// RampFor returns the shortest ramp whose time is at least d.
func RampFor(d time.Duration) Ramp {
	for r := RampNone; r < MaxRamp; r++ {
		if r.Time() >= d {
			return r
		}
	}
	return MaxRamp
}

// Envelope packs a ramp-up and ramp-down rate into an envelope byte.
func Envelope(up, down Ramp) (uint8, error) {
	if !up.Valid() || !down.Valid() {
		return 0, fmt.Errorf("%w: up=%d down=%d", ErrRamp, up, down)
	}
	return uint8(up)<<4 | uint8(down), nil
}

// SplitEnvelope unpacks an envelope byte.
func SplitEnvelope(env uint8) (up, down Ramp) {
	return Ramp(env >> 4), Ramp(env & 0x0F)
}
