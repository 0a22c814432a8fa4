package ram

import "fmt"

// Mode selects how the device plays back a chunk.
type Mode uint8

const (
	// Direct plays raw bytes from RAM at 8 kHz.
	Direct Mode = iota
	// Synthesis plays a sequence of sinusoid records.
	Synthesis
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Synthesis:
		return "Synthesis"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Record is one synthesizer element.
type Record struct {
	Amplitude uint8
	Frequency uint8
	Cycles    uint8
	Envelope  uint8
}

// Bytes returns the record in device byte order.
func (r Record) Bytes() [RecordBytes]byte {
	return [RecordBytes]byte{r.Amplitude, r.Frequency, r.Cycles, r.Envelope}
}

// Chunk is the data of one effect together with its repeat count.
//
// Mode and element count are fixed at construction. Only the repeat count
// and individual Synthesis record fields may change afterwards.
type Chunk struct {
	mode    Mode
	repeat  uint8
	data    []byte
	records []Record
}

// NewDirect returns a Direct chunk holding a copy of data.
func NewDirect(data []byte) Chunk {
	return Chunk{
		mode:   Direct,
		repeat: 1,
		data:   append([]byte(nil), data...),
	}
}

// NewSynthesis returns a Synthesis chunk holding a copy of records.
func NewSynthesis(records ...Record) Chunk {
	return Chunk{
		mode:    Synthesis,
		repeat:  1,
		records: append([]Record(nil), records...),
	}
}

// Mode returns the playback mode.
func (c *Chunk) Mode() Mode { return c.mode }

// Len returns the element count: bytes for Direct, records for Synthesis.
func (c *Chunk) Len() int {
	if c.mode == Synthesis {
		return len(c.records)
	}
	return len(c.data)
}

// Bytes returns the number of RAM bytes the chunk occupies.
func (c *Chunk) Bytes() int {
	if c.mode == Synthesis {
		return RecordBytes * len(c.records)
	}
	return len(c.data)
}

// Repeat returns the repeat count. Zero repeats forever.
func (c *Chunk) Repeat() uint8 { return c.repeat }

// SetRepeat sets the repeat count. Zero repeats forever.
func (c *Chunk) SetRepeat(r uint8) { c.repeat = r }

// Data returns raw byte i of a Direct chunk and 0 for Synthesis chunks.
func (c *Chunk) Data(i int) byte {
	if c.mode != Direct {
		return 0
	}
	return c.data[i]
}

// Record returns record i of a Synthesis chunk and the zero Record otherwise.
func (c *Chunk) Record(i int) Record {
	if c.mode != Synthesis {
		return Record{}
	}
	return c.records[i]
}

// Amplitude returns the amplitude byte of record i.
func (c *Chunk) Amplitude(i int) uint8 { return c.Record(i).Amplitude }

// Frequency returns the frequency byte of record i.
func (c *Chunk) Frequency(i int) uint8 { return c.Record(i).Frequency }

// Cycles returns the cycle-count byte of record i.
func (c *Chunk) Cycles(i int) uint8 { return c.Record(i).Cycles }

// Envelope returns the envelope byte of record i.
func (c *Chunk) Envelope(i int) uint8 { return c.Record(i).Envelope }

// SetAmplitude sets the amplitude byte of record i. No-op on Direct chunks.
func (c *Chunk) SetAmplitude(i int, v uint8) {
	if c.mode == Synthesis {
		c.records[i].Amplitude = v
	}
}

// SetFrequency sets the frequency byte of record i. No-op on Direct chunks.
func (c *Chunk) SetFrequency(i int, v uint8) {
	if c.mode == Synthesis {
		c.records[i].Frequency = v
	}
}

// SetCycles sets the cycle-count byte of record i. No-op on Direct chunks.
func (c *Chunk) SetCycles(i int, v uint8) {
	if c.mode == Synthesis {
		c.records[i].Cycles = v
	}
}

// SetEnvelope sets the envelope byte of record i. No-op on Direct chunks.
func (c *Chunk) SetEnvelope(i int, v uint8) {
	if c.mode == Synthesis {
		c.records[i].Envelope = v
	}
}

// Element returns the bytes stored for element i: one byte for Direct,
// four for Synthesis.
func (c *Chunk) Element(i int) []byte {
	if c.mode == Synthesis {
		b := c.records[i].Bytes()
		return b[:]
	}
	return []byte{c.data[i]}
}
