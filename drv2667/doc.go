// Package drv2667 drives a TI DRV2667 piezo haptic driver.
//
// The register shim mirrors the two writable control registers in memory
// and rewrites the whole register on every bit change. Effects are staged
// in a [ram.Layout] and uploaded to waveform RAM with [Device.Load]:
//
//	page 1, address 0      header size
//	page 1, address 1..    5-byte header per effect
//	payload                page switched whenever an address crosses 256 bytes
//	page 0                 back to register space
//
// The transport is abstracted behind [Bus]; [NewI2C] adapts a periph.io
// I2C bus at the device address 0x59.
package drv2667
