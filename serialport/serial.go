// Package serialport abstracts the serial line used to reach a device's
// text console from a host.
package serialport

import (
	"io"
)

// Port represents a serial port. The abstraction allows different
// implementations: native serial (github.com/tarm/serial) or a mock for
// testing.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored by USB CDC devices)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the firmware's console
// UART settings.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
	}
}
