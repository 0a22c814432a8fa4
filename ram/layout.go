package ram

const (
	// HeaderBytes is the size of one header record.
	HeaderBytes = 5
	// RecordBytes is the size of one Synthesis element.
	RecordBytes = 4
	// ModeFlag marks a Synthesis effect in the start-address high byte.
	// Direct headers leave it clear: bit 7 selects the playback mode.
	ModeFlag = 0x80
	// DefaultMaxEffects is the default effect-table capacity.
	DefaultMaxEffects = 50
	// PageBytes is the size of one RAM page.
	PageBytes = 256
	// ControlPage selects the register space.
	ControlPage = 0x00
	// FirstRAMPage is the page holding address 0 of the waveform RAM.
	FirstRAMPage = 0x01
)

type config struct {
	maxEffects int
}

// Option configures a Layout.
type Option func(*config)

// WithMaxEffects sets the capacity reported by IsAtCapacity.
// Non-positive values are ignored.
func WithMaxEffects(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxEffects = n
		}
	}
}

func defaultConfig() config {
	return config{maxEffects: DefaultMaxEffects}
}

// Layout is an append-only, ordered list of effects and the RAM map derived
// from it. The zero value is not usable; create one with New.
type Layout struct {
	chunks     []Chunk
	maxEffects int
}

// New creates an empty layout.
func New(opts ...Option) *Layout {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Layout{maxEffects: cfg.maxEffects}
}

// Append adds a copy of c after the last effect. Later edits to c do not
// reach the layout. Capacity is not enforced here: callers check
// IsAtCapacity first.
func (l *Layout) Append(c Chunk) {
	c.data = append([]byte(nil), c.data...)
	c.records = append([]Record(nil), c.records...)
	l.chunks = append(l.chunks, c)
}

// Len returns the number of effects.
func (l *Layout) Len() int { return len(l.chunks) }

// Chunk returns effect i. The pointer stays valid until the next Append
// or Reset.
func (l *Layout) Chunk(i int) *Chunk { return &l.chunks[i] }

// Reset drops all effects and keeps the configured capacity.
func (l *Layout) Reset() { l.chunks = l.chunks[:0] }

// MaxEffects returns the configured capacity.
func (l *Layout) MaxEffects() int { return l.maxEffects }

// IsAtCapacity reports whether no further effect may be appended.
func (l *Layout) IsAtCapacity() bool { return len(l.chunks) >= l.maxEffects }

// SetRepeat sets the repeat count of effect i. Addresses are unaffected.
func (l *Layout) SetRepeat(i int, r uint8) { l.chunks[i].SetRepeat(r) }

// HeaderByteCount returns the size of the header table, the value stored
// at address 0.
func (l *Layout) HeaderByteCount() int { return len(l.chunks) * HeaderBytes }

// HeaderAddr returns the address of header record i.
func (l *Layout) HeaderAddr(i int) int { return 1 + HeaderBytes*i }

// EffectStartAddr returns the address of the first payload byte of effect i.
func (l *Layout) EffectStartAddr(i int) int {
	offset := 0
	for k := 0; k < i; k++ {
		offset += l.chunks[k].Bytes()
	}
	return 1 + l.HeaderByteCount() + offset
}

// EffectStopAddr returns the address of the last payload byte of effect i.
func (l *Layout) EffectStopAddr(i int) int {
	return l.EffectStartAddr(i) + l.chunks[i].Bytes() - 1
}

// HeaderRecord returns the 5-byte header of effect i:
// start high byte (with ModeFlag for Synthesis), start low byte,
// stop high byte (never flagged), stop low byte, repeat count.
func (l *Layout) HeaderRecord(i int) [HeaderBytes]byte {
	start := l.EffectStartAddr(i)
	stop := start + l.chunks[i].Bytes() - 1

	startHi := byte(start >> 8)
	if l.chunks[i].mode == Synthesis {
		startHi |= ModeFlag
	}

	return [HeaderBytes]byte{
		startHi,
		byte(start),
		byte(stop >> 8),
		byte(stop),
		l.chunks[i].repeat,
	}
}

// ElementAddr returns the absolute address of element j of effect i.
func (l *Layout) ElementAddr(i, j int) int {
	return l.EffectStartAddr(i) + l.stride(i)*j
}

// ElementAddress returns the low address byte of element j of effect i,
// advanced from the start low byte. Page crossings are the caller's concern;
// see PageOf and ElementAddr.
func (l *Layout) ElementAddress(i, j int) uint8 {
	return byte(l.EffectStartAddr(i)) + byte(l.stride(i)*j)
}

// PageOf returns the page-select value for the first payload byte of
// effect i.
func (l *Layout) PageOf(i int) uint8 {
	return byte(l.EffectStartAddr(i)>>8) + FirstRAMPage
}

// Page returns the page-select value and in-page register for an absolute
// RAM address.
func Page(addr int) (page, reg uint8) {
	return byte(addr/PageBytes) + FirstRAMPage, byte(addr)
}

func (l *Layout) stride(i int) int {
	if l.chunks[i].mode == Synthesis {
		return RecordBytes
	}
	return 1
}
