package testutil

import (
	"errors"
	"testing"
)

func TestBusPaging(t *testing.T) {
	b := NewBus()
	_ = b.WriteReg(0x02, 0x40)
	_ = b.WriteReg(0xFF, 0x01)
	_ = b.WriteReg(0x05, 0xAA)
	_ = b.WriteReg(0xFF, 0x02)
	_ = b.WriteReg(0x05, 0xBB)
	_ = b.WriteReg(0xFF, 0x00)

	if b.Regs[0x02] != 0x40 {
		t.Fatalf("control reg = 0x%02x, want 0x40", b.Regs[0x02])
	}
	if b.RAM[0x005] != 0xAA || b.RAM[0x105] != 0xBB {
		t.Fatalf("RAM = %v", b.RAM)
	}
	if b.Page() != 0 {
		t.Fatalf("Page()=%d, want 0", b.Page())
	}
	if len(b.Writes) != 6 {
		t.Fatalf("recorded %d writes, want 6", len(b.Writes))
	}
	if v, _ := b.ReadReg(0x02); v != 0x40 {
		t.Fatalf("ReadReg(0x02)=0x%02x", v)
	}
}

func TestBusFailAt(t *testing.T) {
	b := NewBus()
	b.FailAt = 2
	if err := b.WriteReg(0x01, 1); err != nil {
		t.Fatalf("first write error = %v", err)
	}
	if err := b.WriteReg(0x01, 2); !errors.Is(err, ErrBus) {
		t.Fatalf("second write err=%v, want ErrBus", err)
	}
	if b.Regs[0x01] != 1 {
		t.Fatalf("failed write applied: 0x%02x", b.Regs[0x01])
	}
}
