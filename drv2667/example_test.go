package drv2667_test

import (
	"fmt"

	"github.com/cwbudde/algo-haptic/drv2667"
	"github.com/cwbudde/algo-haptic/internal/testutil"
	"github.com/cwbudde/algo-haptic/ram"
)

func ExampleDevice_AddSynthesis() {
	bus := testutil.NewBus()
	d := drv2667.New(bus)

	err := d.AddSynthesis(1, ram.Record{Amplitude: 0xFF, Frequency: 0x20, Cycles: 0x10, Envelope: 0x09})
	if err != nil {
		panic(err)
	}
	if err := d.SetSequence(0, 1); err != nil {
		panic(err)
	}
	if err := d.Play(); err != nil {
		panic(err)
	}

	fmt.Printf("header % x\n", bus.RAMBytes(0, 6))
	fmt.Printf("payload % x\n", bus.RAMBytes(6, 4))

	// Output:
	// header 05 80 06 00 09 01
	// payload ff 20 10 09
}
