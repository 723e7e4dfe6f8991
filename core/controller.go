package core

import "sync"

// Controller is the motion control core for one two-coil stepper. It owns
// the motion state, the phase output and the tick scheduler, and exposes the
// calibrate/configure/move operations. All state lives in this aggregate;
// there are no package-level mutable globals.
//
// Concurrency: commands are the single producer of target/scheme/rate, the
// tick path is the single consumer and also mutates position/phase/idle.
// Both sides take the controller mutex, which stands in for the original
// disable-interrupt critical section around the tick source.
type Controller struct {
	mu         sync.Mutex
	out        PhaseApplier
	store      SettingsStore
	ticker     *Ticker
	st         motionState
	enabled    bool
	haveEnable bool
}

// NewController builds a controller over an already-constructed phase
// applier. haveEnable reports whether the applier can drive the bridge
// enable lines independently; without them, the half-step-with-inhibition
// scheme degrades to plain half-step. A nil applier leaves the module
// disabled; a nil store disables persistence.
func NewController(out PhaseApplier, haveEnable bool, store SettingsStore) *Controller {
	c := &Controller{
		out:        out,
		store:      store,
		enabled:    out != nil,
		haveEnable: haveEnable,
	}
	set := DefaultSettings()
	if store != nil {
		if s, ok := store.Load(); ok && validSettings(s) {
			set = s
		}
	}
	c.st = motionState{
		current:     set.Position,
		wanted:      set.Position,
		schemeIndex: int(set.SchemeIndex),
		idle:        true,
		periodUS:    set.TickPeriodUS,
	}
	c.st.scheme = c.resolveScheme(c.st.schemeIndex)
	c.ticker = NewTicker(DurationFromUS(set.TickPeriodUS), c.tick)
	return c
}

// NewPinController builds a controller driving the coil lines directly
// through a GPIODriver. When the four direction lines are not all
// configured, the module comes up permanently disabled (every command
// returns ErrDisabled) rather than failing construction.
func NewPinController(gpio GPIODriver, pins PinConfig, store SettingsStore) (*Controller, error) {
	if !pins.coilsWired() {
		return NewController(nil, false, store), nil
	}
	out, err := NewPinOutput(gpio, pins)
	if err != nil {
		return nil, err
	}
	return NewController(out, pins.enablesWired(), store), nil
}

// resolveScheme maps a requested scheme index to the effective table.
// Inhibition needs independently drivable enable lines; without them the
// half-step-with-inhibition selection silently degrades to half-step.
func (c *Controller) resolveScheme(index int) *Scheme {
	if index == SchemeHalfStepInhibit && !c.haveEnable {
		index = SchemeHalfStep
	}
	return &schemes[index]
}

// Calibrate declares the current physical position to be the origin: both
// position and target become zero, the coils are de-energized, and the
// origin is persisted.
func (c *Controller) Calibrate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}
	c.ticker.Disarm()
	c.st.current = 0
	c.st.wanted = 0
	c.st.idle = true
	c.out.Apply(PhaseOff)
	return c.persistLocked()
}

// Configure updates the tick period and/or the excitation scheme. Either
// argument may be nil to leave the field unchanged. Both values are
// validated before either is applied, so a rejected call leaves the motion
// state untouched. A scheme change resets the phase index to zero without
// realigning position; the resulting one-phase electrical discontinuity is
// an accepted trade-off.
func (c *Controller) Configure(periodUS *uint32, schemeIndex *int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}
	if schemeIndex != nil {
		if _, err := SchemeByIndex(*schemeIndex); err != nil {
			return err
		}
	}
	if periodUS != nil {
		if _, err := TicksFromUS(*periodUS); err != nil {
			return err
		}
		if *periodUS < MinTickPeriodUS {
			return ErrInvalidArgument
		}
	}
	if periodUS != nil {
		c.st.periodUS = *periodUS
		c.ticker.SetPeriod(DurationFromUS(*periodUS))
	}
	if schemeIndex != nil && *schemeIndex != c.st.schemeIndex {
		c.st.schemeIndex = *schemeIndex
		c.st.scheme = c.resolveScheme(*schemeIndex)
		c.st.phaseIndex = 0
	}
	return c.persistLocked()
}

// Move sets a new target position, absolute or relative to the current
// position, and whether to keep the coils energized on arrival. If the
// motor is idle this arms the tick scheduler; if it is already stepping the
// sequencer picks the new target up on its next tick.
func (c *Controller) Move(target int32, relative, lockWhenDone bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return ErrDisabled
	}
	if relative {
		target = c.st.current + target
	}
	c.st.wanted = target
	c.st.lock = lockWhenDone
	if c.st.idle {
		c.st.idle = false
		c.ticker.Arm()
	}
	return nil
}

// tick is the phase sequencer transition, invoked once per period by the
// Ticker while motion is pending. Exactly one phase transition happens per
// mechanical step; direction is derived from the sign of the position error.
func (c *Controller) tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.st.idle {
		// A tick that fired just before a disarm. Nothing to do.
		return Done
	}
	n := c.st.scheme.Len()
	switch {
	case c.st.wanted < c.st.current:
		c.st.phaseIndex--
		if c.st.phaseIndex < 0 {
			c.st.phaseIndex = n - 1
		}
		c.st.current--
		c.out.Apply(c.st.scheme.Phase(c.st.phaseIndex))
	case c.st.wanted > c.st.current:
		c.st.phaseIndex++
		if c.st.phaseIndex == n {
			c.st.phaseIndex = 0
		}
		c.st.current++
		c.out.Apply(c.st.scheme.Phase(c.st.phaseIndex))
	default:
		// Arrived. Still render a phase even though position did not
		// change: the commanded lock flag may have changed since the
		// last step.
		if c.st.lock {
			c.out.Apply(c.st.scheme.Phase(c.st.phaseIndex))
		} else {
			c.out.Apply(PhaseOff)
		}
		c.st.idle = true
		_ = c.persistLocked()
		// Disarm here rather than leaving it to the ticker loop, so the
		// scheduler is already released when the tick returns. The loop's
		// own release then finds nothing to do.
		c.ticker.Disarm()
		return Done
	}
	return Reschedule
}

// persistLocked writes the durable fields to the settings store. Must be
// called with the controller mutex held.
func (c *Controller) persistLocked() error {
	if c.store == nil {
		return nil
	}
	return c.store.Store(c.st.settings())
}

// Close disarms the tick scheduler. The controller is not usable afterwards
// for motion until a new Move arms it again; Close exists for host tools
// that want a clean shutdown.
func (c *Controller) Close() {
	c.ticker.Disarm()
}

// Position returns the current position in phase-steps from the origin.
func (c *Controller) Position() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.current
}

// Target returns the commanded target position.
func (c *Controller) Target() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.wanted
}

// PhaseIndex returns the current index into the active scheme.
func (c *Controller) PhaseIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.phaseIndex
}

// Idle reports whether the sequencer has pending motion.
func (c *Controller) Idle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.idle
}

// SchemeIndex returns the requested scheme index (before any enable-pin
// degradation).
func (c *Controller) SchemeIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.schemeIndex
}

// EffectiveScheme returns the scheme table actually in use.
func (c *Controller) EffectiveScheme() *Scheme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.scheme
}

// TickPeriodUS returns the configured tick period in microseconds.
func (c *Controller) TickPeriodUS() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.periodUS
}

// Enabled reports whether the module is operational. It is false when the
// coil pins were not configured at startup.
func (c *Controller) Enabled() bool { return c.enabled }
