package core

// MotionSettings is the durable subset of motion state. Position persists
// across power cycles; scheme and tick period are restored at startup and
// defaulted when absent or invalid.
type MotionSettings struct {
	Position     int32
	SchemeIndex  uint8
	TickPeriodUS uint32
}

// SettingsStore persists MotionSettings across power cycles.
type SettingsStore interface {
	// Load returns the stored settings and whether a valid record existed.
	Load() (MotionSettings, bool)

	// Store persists the settings.
	Store(MotionSettings) error
}

const (
	// DefaultSchemeIndex is used when no valid settings record exists.
	DefaultSchemeIndex = SchemeHalfStep

	// DefaultTickPeriodUS is the fixed default tick period (1kHz stepping).
	DefaultTickPeriodUS = 1000

	// MinTickPeriodUS bounds the tick period below: the goroutine-backed
	// ticker cannot hold sub-100µs periods reliably.
	MinTickPeriodUS = 100
)

// DefaultSettings returns the startup defaults: origin position, half-step
// scheme, 1ms tick period.
func DefaultSettings() MotionSettings {
	return MotionSettings{
		Position:     0,
		SchemeIndex:  DefaultSchemeIndex,
		TickPeriodUS: DefaultTickPeriodUS,
	}
}

// validSettings reports whether a loaded record is usable as-is.
func validSettings(s MotionSettings) bool {
	if int(s.SchemeIndex) >= SchemeCount() {
		return false
	}
	if s.TickPeriodUS < MinTickPeriodUS || s.TickPeriodUS > MaxTickPeriodUS {
		return false
	}
	return true
}
