package core

import "time"

// TimerFreq is the commutation timebase frequency in Hz. The tick period is
// configured in microseconds and converted to timer ticks at this rate; the
// converted value must fit the 32-bit counter of the time source.
const TimerFreq = 12000000 // 12MHz

const ticksPerUS = TimerFreq / 1000000

// MaxTickPeriodUS is the largest configurable tick period: any longer period
// would overflow the 32-bit tick counter when converted.
const MaxTickPeriodUS = 0xFFFFFFFF / ticksPerUS

// TicksFromUS converts a microsecond period to timer ticks, rejecting values
// whose conversion does not fit the counter width rather than silently
// truncating them.
func TicksFromUS(us uint32) (uint32, error) {
	if us > MaxTickPeriodUS {
		return 0, ErrInvalidArgument
	}
	return us * ticksPerUS, nil
}

// DurationFromUS converts a microsecond period to a time.Duration for the
// goroutine-backed ticker realization.
func DurationFromUS(us uint32) time.Duration {
	return time.Duration(us) * time.Microsecond
}
