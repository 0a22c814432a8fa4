package synth_test

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-haptic/synth"
)

func ExampleTone_Record() {
	r, err := synth.Tone{
		Frequency: 250,
		Amplitude: 0.5,
		Duration:  100 * time.Millisecond,
		RampDown:  1,
	}.Record()
	if err != nil {
		panic(err)
	}
	fmt.Printf("amp=0x%02X freq=0x%02X cycles=%d env=0x%02X\n", r.Amplitude, r.Frequency, r.Cycles, r.Envelope)

	// Output:
	// amp=0x80 freq=0x20 cycles=25 env=0x01
}

func ExampleDuration() {
	fmt.Println(synth.Duration(25, 32))

	// Output:
	// 100ms
}
