package drv2667

import "fmt"

// Register addresses.
const (
	RegStatus   = 0x00
	RegControl1 = 0x01
	RegControl2 = 0x02
	RegSequence = 0x03 // first of SequenceLen waveform-sequencer registers
	RegPage     = 0xFF
)

// SequenceLen is the number of waveform-sequencer slots.
const SequenceLen = 8

// Reset values of the control registers.
const (
	DefaultControl1 = 0x38
	DefaultControl2 = 0x40
)

// Control1 bits.
const (
	gainMask = 0x03
	inputBit = 1 << 2
)

// Control2 bits.
const (
	goBit       = 1 << 0
	overrideBit = 1 << 1
	timeoutMask = 0x03 << 2
	standbyBit  = 1 << 6
	resetBit    = 1 << 7
)

// Gain selects the output full-scale voltage and amplifier gain.
type Gain uint8

const (
	Gain25V  Gain = iota // 25 Vpp, 28.8 dB
	Gain50V              // 50 Vpp, 34.8 dB
	Gain75V              // 75 Vpp, 38.4 dB
	Gain100V             // 100 Vpp, 40.7 dB
)

// String returns the peak-to-peak output range.
func (g Gain) String() string {
	switch g {
	case Gain25V:
		return "25Vpp"
	case Gain50V:
		return "50Vpp"
	case Gain75V:
		return "75Vpp"
	case Gain100V:
		return "100Vpp"
	default:
		return fmt.Sprintf("Gain(%d)", uint8(g))
	}
}

// Input selects the signal source.
type Input uint8

const (
	InputDigital Input = iota // waveforms from RAM
	InputAnalog               // differential analog input
)

// Timeout is the idle time before the boost converter and amplifier
// shut down after a digital waveform ends.
type Timeout uint8

const (
	Timeout5ms Timeout = iota
	Timeout10ms
	Timeout15ms
	Timeout20ms
)
