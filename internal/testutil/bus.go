package testutil

import (
	"errors"
	"fmt"
)

// ErrBus is returned by Bus when a failure is injected.
var ErrBus = errors.New("testutil: injected bus failure")

const pageReg = 0xFF

// Write is one recorded register write.
type Write struct {
	Reg byte
	Val byte
}

func (w Write) String() string { return fmt.Sprintf("%02x<-%02x", w.Reg, w.Val) }

// Bus is an in-memory DRV2667 register file. Writes to register 0xFF
// select a page; on page 0 writes land in the control registers, on page
// p >= 1 they land in RAM at (p-1)*256 + reg.
type Bus struct {
	Writes []Write
	Regs   [256]byte
	RAM    map[int]byte

	// FailAt makes the n-th write (1-based) fail once. Zero disables it.
	FailAt int

	page byte
}

// NewBus returns an empty bus on the control page.
func NewBus() *Bus {
	return &Bus{RAM: make(map[int]byte)}
}

// WriteReg records and applies a register write.
func (b *Bus) WriteReg(reg, val byte) error {
	if b.FailAt > 0 && len(b.Writes)+1 == b.FailAt {
		b.FailAt = 0
		return ErrBus
	}
	b.Writes = append(b.Writes, Write{Reg: reg, Val: val})

	switch {
	case reg == pageReg:
		b.page = val
	case b.page == 0:
		b.Regs[reg] = val
	default:
		b.RAM[int(b.page-1)*256+int(reg)] = val
	}
	return nil
}

// ReadReg returns the current value of a control register or RAM byte.
func (b *Bus) ReadReg(reg byte) (byte, error) {
	switch {
	case reg == pageReg:
		return b.page, nil
	case b.page == 0:
		return b.Regs[reg], nil
	default:
		return b.RAM[int(b.page-1)*256+int(reg)], nil
	}
}

// Page returns the selected page.
func (b *Bus) Page() byte { return b.page }

// RAMBytes returns n RAM bytes starting at addr.
func (b *Bus) RAMBytes(addr, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b.RAM[addr+i]
	}
	return out
}

// Reset forgets recorded writes but keeps register and RAM contents.
func (b *Bus) Reset() {
	b.Writes = b.Writes[:0]
	b.FailAt = 0
}
