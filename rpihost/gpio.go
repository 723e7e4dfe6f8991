//go:build linux

// Package rpihost implements the core GPIO interface over periph.io host
// drivers, so the controller can drive a motor from a Raspberry Pi or
// similar Linux SBC.
package rpihost

import (
	"errors"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"coildrive/core"
)

// Driver implements core.GPIODriver over periph.io GPIO pins, looked up by
// BCM number ("GPIO12").
type Driver struct {
	pins map[core.GPIOPin]gpio.PinIO
}

// New initializes the periph.io host and returns an empty driver. Pins are
// claimed by ConfigureOutput.
func New() (*Driver, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return &Driver{pins: make(map[core.GPIOPin]gpio.PinIO)}, nil
}

// ConfigureOutput claims the pin and drives it low.
func (d *Driver) ConfigureOutput(pin core.GPIOPin) error {
	name := "GPIO" + strconv.Itoa(int(pin))
	p := gpioreg.ByName(name)
	if p == nil {
		return errors.New("rpihost: no such pin " + name)
	}
	if err := p.Out(gpio.Low); err != nil {
		return err
	}
	d.pins[pin] = p
	return nil
}

// SetPin sets a previously configured pin.
func (d *Driver) SetPin(pin core.GPIOPin, value bool) error {
	p, ok := d.pins[pin]
	if !ok {
		return errors.New("rpihost: pin not configured")
	}
	return p.Out(gpio.Level(value))
}
