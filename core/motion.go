package core

// motionState is the mutable position/target/phase/lock data the phase
// sequencer operates on. It is owned by a Controller and guarded by the
// controller mutex; the command operations and the tick path acquire that
// mutex symmetrically, so neither side ever observes a torn update.
//
// Invariants: phaseIndex is always a valid index into scheme; when idle is
// true the ticker is not armed and no output change is pending.
type motionState struct {
	current     int32   // phase-steps from calibration origin
	wanted      int32   // commanded target position
	phaseIndex  int     // index into scheme, in [0, scheme.Len())
	scheme      *Scheme // effective scheme (after enable-pin degradation)
	schemeIndex int     // requested scheme index, as persisted
	idle        bool
	lock        bool   // keep coils energized after arrival
	periodUS    uint32 // tick period in microseconds
}

// settings returns the durable subset of the state.
func (st *motionState) settings() MotionSettings {
	return MotionSettings{
		Position:     st.current,
		SchemeIndex:  uint8(st.schemeIndex),
		TickPeriodUS: st.periodUS,
	}
}
