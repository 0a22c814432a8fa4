// Package pcm prepares sampled waveforms for Direct playback from DRV2667
// RAM.
//
// The device plays one byte per sample at [SampleRate]. Bytes are twos
// complement: 0x7F is positive full scale, 0x00 is silence and 0x80 is
// negative full scale.
//
// An [Encoder] applies gain, converts the source rate to 8 kHz with cubic
// Hermite interpolation and quantizes to 8 bits with optional triangular
// dither. Input is expected in [-1, +1] and band-limited below 4 kHz;
// values beyond full scale are clipped.
package pcm
