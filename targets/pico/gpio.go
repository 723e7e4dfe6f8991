//go:build rp2040

package main

import (
	"machine"

	"coildrive/core"
)

// machineGPIO implements core.GPIODriver over TinyGo machine pins.
type machineGPIO struct{}

func (machineGPIO) ConfigureOutput(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return nil
}

func (machineGPIO) SetPin(pin core.GPIOPin, value bool) error {
	p := machine.Pin(pin)
	if value {
		p.High()
	} else {
		p.Low()
	}
	return nil
}
