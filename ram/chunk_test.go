package ram

import "testing"

func TestChunkElementCounts(t *testing.T) {
	tests := []struct {
		name      string
		chunk     Chunk
		wantMode  Mode
		wantLen   int
		wantBytes int
	}{
		{"direct", NewDirect([]byte{1, 2, 3}), Direct, 3, 3},
		{"direct-empty", NewDirect(nil), Direct, 0, 0},
		{"synthesis", NewSynthesis(Record{}, Record{}), Synthesis, 2, 8},
		{"synthesis-one", NewSynthesis(Record{Amplitude: 0xFF}), Synthesis, 1, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.chunk
			if c.Mode() != tc.wantMode {
				t.Fatalf("Mode()=%v, want %v", c.Mode(), tc.wantMode)
			}
			if c.Len() != tc.wantLen {
				t.Fatalf("Len()=%d, want %d", c.Len(), tc.wantLen)
			}
			if c.Bytes() != tc.wantBytes {
				t.Fatalf("Bytes()=%d, want %d", c.Bytes(), tc.wantBytes)
			}
			if c.Repeat() != 1 {
				t.Fatalf("Repeat()=%d, want 1", c.Repeat())
			}
		})
	}
}

func TestNewDirectCopiesInput(t *testing.T) {
	src := []byte{0x10, 0x20}
	c := NewDirect(src)
	src[0] = 0xAA
	if got := c.Data(0); got != 0x10 {
		t.Fatalf("Data(0)=0x%02x, want 0x10", got)
	}
}

func TestSynthesisFieldAccess(t *testing.T) {
	c := NewSynthesis(Record{Amplitude: 1, Frequency: 2, Cycles: 3, Envelope: 4})
	c.SetAmplitude(0, 0x7F)
	c.SetFrequency(0, 0x20)
	c.SetCycles(0, 0x30)
	c.SetEnvelope(0, 0x45)

	want := Record{Amplitude: 0x7F, Frequency: 0x20, Cycles: 0x30, Envelope: 0x45}
	if got := c.Record(0); got != want {
		t.Fatalf("Record(0)=%+v, want %+v", got, want)
	}
	if c.Amplitude(0) != 0x7F || c.Frequency(0) != 0x20 || c.Cycles(0) != 0x30 || c.Envelope(0) != 0x45 {
		t.Fatal("field accessors disagree with Record")
	}
	if c.Data(0) != 0 {
		t.Fatalf("Data(0) on synthesis chunk = %d, want 0", c.Data(0))
	}
	if got := c.Element(0); len(got) != 4 || got[0] != 0x7F || got[3] != 0x45 {
		t.Fatalf("Element(0)=%v", got)
	}
}

func TestDirectIgnoresSynthesisAccessors(t *testing.T) {
	c := NewDirect([]byte{9, 8})
	c.SetAmplitude(0, 0xFF)
	c.SetEnvelope(1, 0xFF)
	if c.Amplitude(0) != 0 || c.Frequency(0) != 0 || c.Cycles(0) != 0 || c.Envelope(1) != 0 {
		t.Fatal("synthesis accessors must read 0 on direct chunks")
	}
	if c.Data(0) != 9 || c.Data(1) != 8 {
		t.Fatalf("direct payload modified: %d %d", c.Data(0), c.Data(1))
	}
	if got := c.Element(1); len(got) != 1 || got[0] != 8 {
		t.Fatalf("Element(1)=%v, want [8]", got)
	}
}

func TestModeString(t *testing.T) {
	if Direct.String() != "Direct" || Synthesis.String() != "Synthesis" {
		t.Fatalf("unexpected names %q %q", Direct, Synthesis)
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Fatalf("Mode(7).String()=%q", got)
	}
}

func TestAppendOwnsPayload(t *testing.T) {
	l := New()

	c := NewSynthesis(Record{Amplitude: 1})
	l.Append(c)
	c.SetAmplitude(0, 0x99)
	c.SetRepeat(7)

	d := NewDirect([]byte{0x10})
	l.Append(d)
	d.data[0] = 0xAA

	if got := l.Chunk(0).Amplitude(0); got != 1 {
		t.Fatalf("layout amplitude = 0x%02x, want 0x01", got)
	}
	if got := l.Chunk(0).Repeat(); got != 1 {
		t.Fatalf("layout repeat = %d, want 1", got)
	}
	if got := l.Chunk(1).Data(0); got != 0x10 {
		t.Fatalf("layout data = 0x%02x, want 0x10", got)
	}

	l.Chunk(0).SetAmplitude(0, 0x42)
	if got := c.Amplitude(0); got != 0x99 {
		t.Fatalf("caller amplitude = 0x%02x, want 0x99", got)
	}
}
