package core

// GPIOPin identifies a hardware GPIO pin number.
type GPIOPin uint32

// PinNone marks a line as not configured in a PinConfig.
const PinNone GPIOPin = 0xFFFFFFFF

// GPIODriver is the abstract GPIO interface the core writes coil lines
// through. Platform-specific packages provide implementations.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output, driven low.
	// Returns error if the pin is invalid or cannot be claimed.
	ConfigureOutput(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false).
	SetPin(pin GPIOPin, value bool) error
}

// PinConfig carries the logical output lines for the two H-bridges. The
// enable lines are optional; the four direction lines are required for the
// module to operate at all.
type PinConfig struct {
	APos GPIOPin
	ANeg GPIOPin
	BPos GPIOPin
	BNeg GPIOPin
	AEn  GPIOPin
	BEn  GPIOPin
}

// coilsWired reports whether all four direction lines are configured.
func (c PinConfig) coilsWired() bool {
	return c.APos != PinNone && c.ANeg != PinNone && c.BPos != PinNone && c.BNeg != PinNone
}

// enablesWired reports whether both bridge enable lines are configured.
func (c PinConfig) enablesWired() bool {
	return c.AEn != PinNone && c.BEn != PinNone
}
