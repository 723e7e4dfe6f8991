package core

// Code is a stable error identifier suitable for command acknowledgements.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

const (
	// ErrInvalidArgument reports a command token that failed to parse as a
	// number or flag, or a numeric value outside its configurable range.
	ErrInvalidArgument Code = "invalid_argument"

	// ErrInvalidScheme reports a scheme index outside the built-in set.
	ErrInvalidScheme Code = "invalid_scheme"

	// ErrDisabled reports a command issued while the module is inert
	// because the coil pins are not configured.
	ErrDisabled Code = "module_disabled"

	// ErrUnknownCommand reports a command name with no registered handler.
	ErrUnknownCommand Code = "unknown_command"
)
