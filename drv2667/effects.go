package drv2667

import (
	"fmt"

	"github.com/cwbudde/algo-haptic/ram"
)

// Layout returns the staged effects. Changes made through it take effect
// on the next Load.
func (d *Device) Layout() *ram.Layout { return d.layout }

// AddChunk appends an effect and uploads the whole table.
func (d *Device) AddChunk(c ram.Chunk) error {
	if d.layout.IsAtCapacity() {
		return fmt.Errorf("%w: %d effects", ErrCapacity, d.layout.Len())
	}
	d.layout.Append(c)
	return d.Load()
}

// AddWaveform appends a Direct effect of raw twos-complement samples.
func (d *Device) AddWaveform(data []byte, repeat uint8) error {
	c := ram.NewDirect(data)
	c.SetRepeat(repeat)
	return d.AddChunk(c)
}

// AddSynthesis appends a Synthesis effect.
func (d *Device) AddSynthesis(repeat uint8, records ...ram.Record) error {
	c := ram.NewSynthesis(records...)
	c.SetRepeat(repeat)
	return d.AddChunk(c)
}

// ClearEffects drops all staged effects. RAM is left as is.
func (d *Device) ClearEffects() { d.layout.Reset() }

// Load writes the header table and every payload to RAM, then returns to
// the control page.
func (d *Device) Load() (err error) {
	defer func() {
		if err != nil && d.page != ram.ControlPage {
			_ = d.SetPage(ram.ControlPage)
		}
	}()

	l := d.layout
	if err := d.SetPage(ram.FirstRAMPage); err != nil {
		return err
	}
	if err := d.writeRAM(0, byte(l.HeaderByteCount())); err != nil {
		return err
	}

	for i := 0; i < l.Len(); i++ {
		hdr := l.HeaderRecord(i)
		base := l.HeaderAddr(i)
		for k, v := range hdr {
			if err := d.writeRAM(base+k, v); err != nil {
				return err
			}
		}
	}

	for i := 0; i < l.Len(); i++ {
		if err := d.SetPage(l.PageOf(i)); err != nil {
			return err
		}
		c := l.Chunk(i)
		for j := 0; j < c.Len(); j++ {
			addr := l.ElementAddr(i, j)
			for k, v := range c.Element(j) {
				if err := d.writeRAM(addr+k, v); err != nil {
					return err
				}
			}
		}
	}

	return d.SetPage(ram.ControlPage)
}

// SetRepeat changes the repeat count of effect i and rewrites its header
// repeat byte.
func (d *Device) SetRepeat(i int, r uint8) error {
	d.layout.SetRepeat(i, r)
	return d.patch(d.layout.HeaderAddr(i)+ram.HeaderBytes-1, r)
}

// SetAmplitude changes the amplitude of record j in effect i, in RAM.
func (d *Device) SetAmplitude(i, j int, v uint8) error {
	return d.setField(i, j, 0, v, (*ram.Chunk).SetAmplitude)
}

// SetFrequency changes the frequency of record j in effect i, in RAM.
func (d *Device) SetFrequency(i, j int, v uint8) error {
	return d.setField(i, j, 1, v, (*ram.Chunk).SetFrequency)
}

// SetCycles changes the cycle count of record j in effect i, in RAM.
func (d *Device) SetCycles(i, j int, v uint8) error {
	return d.setField(i, j, 2, v, (*ram.Chunk).SetCycles)
}

// SetEnvelope changes the envelope of record j in effect i, in RAM.
func (d *Device) SetEnvelope(i, j int, v uint8) error {
	return d.setField(i, j, 3, v, (*ram.Chunk).SetEnvelope)
}

func (d *Device) setField(i, j, offset int, v uint8, set func(*ram.Chunk, int, uint8)) error {
	c := d.layout.Chunk(i)
	if c.Mode() != ram.Synthesis {
		return fmt.Errorf("%w: effect %d", ErrNotSynthesis, i)
	}
	set(c, j, v)
	return d.patch(d.layout.ElementAddr(i, j)+offset, v)
}

// patch writes one RAM byte and returns to the control page, also when
// the write fails.
func (d *Device) patch(addr int, v byte) (err error) {
	defer func() {
		if err != nil && d.page != ram.ControlPage {
			_ = d.SetPage(ram.ControlPage)
		}
	}()

	if err := d.writeRAM(addr, v); err != nil {
		return err
	}
	return d.SetPage(ram.ControlPage)
}

func (d *Device) writeRAM(addr int, v byte) error {
	page, reg := ram.Page(addr)
	if page != d.page {
		if err := d.SetPage(page); err != nil {
			return err
		}
	}
	return d.write(reg, v)
}
