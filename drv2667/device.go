package drv2667

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-haptic/ram"
)

var (
	// ErrCapacity indicates the effect table is full.
	ErrCapacity = errors.New("drv2667: effect table at capacity")
	// ErrSequenceOrder indicates a sequencer slot outside 0..7.
	ErrSequenceOrder = errors.New("drv2667: sequence slot out of range")
	// ErrNotSynthesis indicates a record-field update on a Direct effect.
	ErrNotSynthesis = errors.New("drv2667: effect is not a synthesis effect")
	// ErrInvalidSetting indicates an out-of-range gain or timeout value.
	ErrInvalidSetting = errors.New("drv2667: invalid setting")
)

// Bus writes and reads single device registers on the selected page.
type Bus interface {
	WriteReg(reg, val byte) error
	ReadReg(reg byte) (byte, error)
}

type config struct {
	layoutOpts []ram.Option
}

// Option configures a Device.
type Option func(*config)

// WithMaxEffects sets the effect-table capacity (default ram.DefaultMaxEffects).
func WithMaxEffects(n int) Option {
	return func(cfg *config) {
		cfg.layoutOpts = append(cfg.layoutOpts, ram.WithMaxEffects(n))
	}
}

// Device is a DRV2667 on a Bus. It is not safe for concurrent use.
type Device struct {
	bus    Bus
	ctrl1  byte
	ctrl2  byte
	seq    [SequenceLen]byte
	page   byte
	layout *ram.Layout
}

// New returns a Device assuming register reset values. Nothing is written
// until the first call.
func New(bus Bus, opts ...Option) *Device {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Device{
		bus:    bus,
		ctrl1:  DefaultControl1,
		ctrl2:  DefaultControl2,
		layout: ram.New(cfg.layoutOpts...),
	}
}

func (d *Device) write(reg, val byte) error {
	if err := d.bus.WriteReg(reg, val); err != nil {
		return fmt.Errorf("drv2667: write reg 0x%02x: %w", reg, err)
	}
	return nil
}

// writeControl writes a control-space register, leaving any RAM page first.
func (d *Device) writeControl(reg, val byte) error {
	if d.page != ram.ControlPage {
		if err := d.SetPage(ram.ControlPage); err != nil {
			return err
		}
	}
	return d.write(reg, val)
}

// Control returns the mirrored control registers.
func (d *Device) Control() (ctrl1, ctrl2 byte) { return d.ctrl1, d.ctrl2 }

// SetGain selects the output range.
func (d *Device) SetGain(g Gain) error {
	if g > Gain100V {
		return fmt.Errorf("%w: gain %d", ErrInvalidSetting, g)
	}
	d.ctrl1 = d.ctrl1&^gainMask | byte(g)
	return d.writeControl(RegControl1, d.ctrl1)
}

// SelectInput selects the digital (RAM) or analog input.
func (d *Device) SelectInput(in Input) error {
	if in == InputAnalog {
		d.ctrl1 |= inputBit
	} else {
		d.ctrl1 &^= inputBit
	}
	return d.writeControl(RegControl1, d.ctrl1)
}

// Boost forces the boost converter and amplifier on (EN_OVERRIDE).
func (d *Device) Boost(on bool) error {
	if on {
		d.ctrl2 |= overrideBit
	} else {
		d.ctrl2 &^= overrideBit
	}
	return d.writeControl(RegControl2, d.ctrl2)
}

// SetTimeout sets the idle timeout.
func (d *Device) SetTimeout(t Timeout) error {
	if t > Timeout20ms {
		return fmt.Errorf("%w: timeout %d", ErrInvalidSetting, t)
	}
	d.ctrl2 = d.ctrl2&^timeoutMask | byte(t)<<2
	return d.writeControl(RegControl2, d.ctrl2)
}

// Standby enters or leaves low-power standby.
func (d *Device) Standby(on bool) error {
	if on {
		d.ctrl2 |= standbyBit
	} else {
		d.ctrl2 &^= standbyBit
	}
	return d.writeControl(RegControl2, d.ctrl2)
}

// Go starts the waveform sequencer. The GO bit clears itself when the
// sequence ends, so it is not kept in the mirror.
func (d *Device) Go() error {
	return d.writeControl(RegControl2, d.ctrl2|goBit)
}

// Stop aborts the running sequence.
func (d *Device) Stop() error {
	return d.writeControl(RegControl2, d.ctrl2)
}

// Play leaves standby and starts the sequencer.
func (d *Device) Play() error {
	if err := d.Standby(false); err != nil {
		return err
	}
	return d.Go()
}

// UseAnalogInput switches to analog pass-through with the boost forced on.
func (d *Device) UseAnalogInput() error {
	if err := d.Standby(false); err != nil {
		return err
	}
	if err := d.SelectInput(InputAnalog); err != nil {
		return err
	}
	return d.Boost(true)
}

// Reset issues a device reset. Register mirrors return to reset values;
// staged effects are kept and can be re-uploaded with Load.
func (d *Device) Reset() error {
	if err := d.writeControl(RegControl2, d.ctrl2|resetBit); err != nil {
		return err
	}
	d.ctrl1 = DefaultControl1
	d.ctrl2 = DefaultControl2
	d.seq = [SequenceLen]byte{}
	d.page = ram.ControlPage
	return nil
}

// SetSequence stores waveform id in sequencer slot order and rewrites all
// slots. Id n plays header n (1-based); id 0 ends the sequence.
func (d *Device) SetSequence(order int, id uint8) error {
	if order < 0 || order >= SequenceLen {
		return fmt.Errorf("%w: %d", ErrSequenceOrder, order)
	}
	d.seq[order] = id
	for i, v := range d.seq {
		if err := d.writeControl(RegSequence+byte(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Sequence returns the mirrored sequencer slots.
func (d *Device) Sequence() [SequenceLen]byte { return d.seq }

// SetPage selects a register page: 0 for control, 1.. for RAM.
func (d *Device) SetPage(page byte) error {
	if err := d.write(RegPage, page); err != nil {
		return err
	}
	d.page = page
	return nil
}

// Status reads the status register on the control page.
func (d *Device) Status() (byte, error) {
	if d.page != ram.ControlPage {
		if err := d.SetPage(ram.ControlPage); err != nil {
			return 0, err
		}
	}
	v, err := d.bus.ReadReg(RegStatus)
	if err != nil {
		return 0, fmt.Errorf("drv2667: read status: %w", err)
	}
	return v, nil
}
