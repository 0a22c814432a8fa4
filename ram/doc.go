// Package ram plans the contents of a DRV2667 waveform RAM.
//
// A [Layout] holds an ordered list of [Chunk] values, one per effect. From
// that list it derives the header-size byte, the 5-byte header record of
// every effect and the address of every payload element. Nothing is cached:
// each accessor recomputes from the current chunk list.
//
// Memory map (addresses are relative to RAM page 1):
//
//	0x000            header size in bytes (5 * effects)
//	0x001 + 5*i      header record i: start hi|mode, start lo, stop hi, stop lo, repeat
//	1 + header size  payload of effect 0, then effect 1, ...
//
// Direct chunks store one raw twos-complement byte per element. Synthesis
// chunks store one 4-byte record per element (amplitude, frequency, cycles,
// envelope).
//
// Indices passed to accessors must be in range; out-of-range indices panic
// through the usual slice bounds checks.
package ram
