package core

// PhaseState is one coil-energization pattern for a bipolar stepper driven
// through two H-bridges: a direction pair per coil plus one enable line per
// bridge. Phases are defined once in a scheme table and never mutated.
type PhaseState struct {
	APos bool // coil A positive direction input
	ANeg bool // coil A negative direction input
	BPos bool // coil B positive direction input
	BNeg bool // coil B negative direction input
	AEn  bool // coil A bridge enable
	BEn  bool // coil B bridge enable
}

// PhaseOff is the fully de-energized state: both bridges disabled and all
// direction lines released.
var PhaseOff = PhaseState{}

// Bits packs the six signals into the low bits of a byte, in the pin order
// APos, ANeg, BPos, BNeg, AEn, BEn. Backends that write all lines in a
// single transaction (PIO state machines, I2C port expanders) consume this
// form.
func (p PhaseState) Bits() uint8 {
	var b uint8
	if p.APos {
		b |= 1 << 0
	}
	if p.ANeg {
		b |= 1 << 1
	}
	if p.BPos {
		b |= 1 << 2
	}
	if p.BNeg {
		b |= 1 << 3
	}
	if p.AEn {
		b |= 1 << 4
	}
	if p.BEn {
		b |= 1 << 5
	}
	return b
}
