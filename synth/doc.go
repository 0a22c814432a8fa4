// Package synth converts physical tone parameters to and from the byte
// encoding of DRV2667 waveform-synthesis records.
//
// The device synthesizes sinusoids in steps of [StepHz]:
//
//	frequency (Hz)  = 7.8125 * frequency byte
//	peak voltage    = amplitude byte / 255 * full-scale peak voltage
//	duration (ms)   = 1000 * cycles / (7.8125 * frequency byte)
//
// The envelope byte holds the ramp-up rate in bits 7:4 and the ramp-down
// rate in bits 3:0. Ramp-up time is part of the programmed duration;
// ramp-down time is appended after it.
//
// [Estimate] goes the other way: it measures the dominant tone of a
// sampled waveform so that a recorded effect can be approximated by a
// Synthesis record.
package synth
