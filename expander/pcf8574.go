// Package expander drives the coil and enable lines through a PCF8574 I2C
// port expander, for boards where the six outputs are not on native GPIO.
package expander

import (
	"sync"

	"tinygo.org/x/drivers"

	"coildrive/core"
)

// DefaultAddress is the PCF8574 base address with A0..A2 strapped low. The
// PCF8574A variant starts at 0x38.
const DefaultAddress = 0x20

// errBadPin reports a pin number outside the expander's 8 lines.
const errBadPin = core.Code("expander: pin out of range")

// PCF8574 implements core.GPIODriver over an 8-bit quasi-bidirectional I2C
// port expander. The device has a single data register, so the driver keeps
// a shadow of the last written byte and rewrites the whole port on every pin
// change. The I2C bus must already be configured.
type PCF8574 struct {
	mu     sync.Mutex
	bus    drivers.I2C
	addr   uint16
	shadow uint8
	buf    [1]byte
}

// New creates a PCF8574 driver at the given address.
func New(bus drivers.I2C, addr uint16) *PCF8574 {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &PCF8574{bus: bus, addr: addr}
}

// ConfigureOutput drives the pin low. The PCF8574 has no direction
// register; writing 0 sinks the line, which is its output mode.
func (d *PCF8574) ConfigureOutput(pin core.GPIOPin) error {
	return d.SetPin(pin, false)
}

// SetPin updates one line, rewriting the port register.
func (d *PCF8574) SetPin(pin core.GPIOPin, value bool) error {
	if pin > 7 {
		return errBadPin
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	s := d.shadow
	if value {
		s |= 1 << pin
	} else {
		s &^= 1 << pin
	}
	d.buf[0] = s
	if err := d.bus.Tx(d.addr, d.buf[:], nil); err != nil {
		return err
	}
	d.shadow = s
	return nil
}

// Port returns the last written register value.
func (d *PCF8574) Port() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shadow
}
