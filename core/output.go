package core

// PhaseApplier renders one phase to physical outputs. The applier
// exclusively owns the output lines it drives; nothing else may write them.
type PhaseApplier interface {
	Apply(phase PhaseState)
}

// PinOutput drives the coil and enable lines of both H-bridges through a
// GPIODriver, one pin write at a time, in a transition-hazard-avoiding
// order: an enable line dropping to 0 is written before the direction lines
// change, and an enable line rising to 1 is written after. Otherwise a coil
// could briefly be driven in a stale direction while still enabled, or sit
// un-driven while already intended enabled.
type PinOutput struct {
	gpio       GPIODriver
	pins       PinConfig
	haveEnable bool
	prev       PhaseState
}

// NewPinOutput configures the wired pins as outputs (driven low, matching
// PhaseOff) and returns the driver. The four direction lines must be wired;
// the enable pair is optional.
func NewPinOutput(gpio GPIODriver, pins PinConfig) (*PinOutput, error) {
	o := &PinOutput{
		gpio:       gpio,
		pins:       pins,
		haveEnable: pins.enablesWired(),
	}
	lines := []GPIOPin{pins.APos, pins.ANeg, pins.BPos, pins.BNeg}
	if o.haveEnable {
		lines = append(lines, pins.AEn, pins.BEn)
	}
	for _, pin := range lines {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Apply writes the phase to the output lines. Pin write failures have no
// recovery path mid-commutation and are dropped.
func (o *PinOutput) Apply(p PhaseState) {
	if o.haveEnable {
		if o.prev.AEn && !p.AEn {
			o.set(o.pins.AEn, false)
		}
		if o.prev.BEn && !p.BEn {
			o.set(o.pins.BEn, false)
		}
	}
	o.set(o.pins.APos, p.APos)
	o.set(o.pins.ANeg, p.ANeg)
	o.set(o.pins.BPos, p.BPos)
	o.set(o.pins.BNeg, p.BNeg)
	if o.haveEnable {
		if !o.prev.AEn && p.AEn {
			o.set(o.pins.AEn, true)
		}
		if !o.prev.BEn && p.BEn {
			o.set(o.pins.BEn, true)
		}
	}
	o.prev = p
}

func (o *PinOutput) set(pin GPIOPin, value bool) {
	_ = o.gpio.SetPin(pin, value)
}
