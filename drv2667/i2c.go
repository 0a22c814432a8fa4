package drv2667

import "periph.io/x/conn/v3/i2c"

// Address is the fixed 7-bit I2C address.
const Address = 0x59

// I2C is a Bus over a periph.io I2C bus.
type I2C struct {
	dev *i2c.Dev
}

// NewI2C returns a Bus talking to the device at Address on b.
func NewI2C(b i2c.Bus) *I2C {
	return &I2C{dev: &i2c.Dev{Bus: b, Addr: Address}}
}

// WriteReg writes one register.
func (c *I2C) WriteReg(reg, val byte) error {
	return c.dev.Tx([]byte{reg, val}, nil)
}

// ReadReg reads one register with a repeated-start transaction.
func (c *I2C) ReadReg(reg byte) (byte, error) {
	var r [1]byte
	if err := c.dev.Tx([]byte{reg}, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}
