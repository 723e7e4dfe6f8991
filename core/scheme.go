package core

// Scheme is a named, ordered, cyclic sequence of phases defining how the two
// coils are commutated. Phase index arithmetic is always modulo Len().
type Scheme struct {
	Name   string
	phases []PhaseState
}

// Len returns the number of phases in the cycle.
func (s *Scheme) Len() int { return len(s.phases) }

// Phase returns the phase at index i. Callers maintain the invariant that i
// is in [0, Len()).
func (s *Scheme) Phase(i int) PhaseState { return s.phases[i] }

// Built-in scheme indices. These values are persisted in settings records
// and must not be reordered.
const (
	SchemeRotatingWave    = 0 // single phase on, lowest current
	SchemeFullStep        = 1 // two phases on, higher torque
	SchemeHalfStep        = 2 // alternating one/two phases on, enables always asserted
	SchemeHalfStepInhibit = 3 // half step with the unused bridge inhibited on single-phase sub-steps
)

var schemes = [...]Scheme{
	{
		Name: "rotating-wave",
		phases: []PhaseState{
			{APos: true, AEn: true, BEn: true},
			{BPos: true, AEn: true, BEn: true},
			{ANeg: true, AEn: true, BEn: true},
			{BNeg: true, AEn: true, BEn: true},
		},
	},
	{
		Name: "full-step",
		phases: []PhaseState{
			{APos: true, BPos: true, AEn: true, BEn: true},
			{ANeg: true, BPos: true, AEn: true, BEn: true},
			{ANeg: true, BNeg: true, AEn: true, BEn: true},
			{APos: true, BNeg: true, AEn: true, BEn: true},
		},
	},
	{
		Name: "half-step",
		phases: []PhaseState{
			{APos: true, AEn: true, BEn: true},
			{APos: true, BPos: true, AEn: true, BEn: true},
			{BPos: true, AEn: true, BEn: true},
			{ANeg: true, BPos: true, AEn: true, BEn: true},
			{ANeg: true, AEn: true, BEn: true},
			{ANeg: true, BNeg: true, AEn: true, BEn: true},
			{BNeg: true, AEn: true, BEn: true},
			{APos: true, BNeg: true, AEn: true, BEn: true},
		},
	},
	{
		Name: "half-step-inhibit",
		phases: []PhaseState{
			{APos: true, AEn: true},
			{APos: true, BPos: true, AEn: true, BEn: true},
			{BPos: true, BEn: true},
			{ANeg: true, BPos: true, AEn: true, BEn: true},
			{ANeg: true, AEn: true},
			{ANeg: true, BNeg: true, AEn: true, BEn: true},
			{BNeg: true, BEn: true},
			{APos: true, BNeg: true, AEn: true, BEn: true},
		},
	},
}

// SchemeCount returns the number of built-in excitation schemes.
func SchemeCount() int { return len(schemes) }

// SchemeByIndex returns the scheme at index i, or ErrInvalidScheme when i is
// out of range.
func SchemeByIndex(i int) (*Scheme, error) {
	if i < 0 || i >= len(schemes) {
		return nil, ErrInvalidScheme
	}
	return &schemes[i], nil
}
