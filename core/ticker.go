package core

import (
	"sync"
	"time"
)

// Tick outcome codes returned by a TickFunc.
const (
	Done       = 0 // motion finished, do not rearm
	Reschedule = 1 // rearm for another period
)

// TickFunc advances the phase sequencer one step. It returns Reschedule
// while motion is pending and Done once the target is reached.
type TickFunc func() int

// Ticker invokes a TickFunc at a fixed period on a dedicated goroutine, so
// stepping continues while the rest of the process performs unrelated
// blocking work. It is armed only while motion is pending: Arm starts a
// firing session, Disarm cancels it, and a TickFunc returning Done disarms
// synchronously from inside the session.
//
// The Ticker exclusively owns its time source; no other subsystem shares it.
type Ticker struct {
	mu     sync.Mutex
	period time.Duration
	tick   TickFunc
	stop   chan struct{}
}

// NewTicker returns a disarmed ticker. The tick function is fixed for the
// ticker's lifetime; the period may be changed with SetPeriod.
func NewTicker(period time.Duration, tick TickFunc) *Ticker {
	return &Ticker{period: period, tick: tick}
}

// Period returns the current rearm period.
func (t *Ticker) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// SetPeriod changes the rearm period. A running session picks the new period
// up when it next rearms.
func (t *Ticker) SetPeriod(d time.Duration) {
	t.mu.Lock()
	t.period = d
	t.mu.Unlock()
}

// Armed reports whether a firing session is active.
func (t *Ticker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// Arm starts a firing session. Arming an armed ticker is a no-op, so a new
// move issued mid-motion does not disturb the running session.
func (t *Ticker) Arm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	stop := make(chan struct{})
	t.stop = stop
	go t.loop(stop)
}

// Disarm cancels the active session, if any. A tick that already fired may
// still run once; the tick function observes the idle state and returns
// Done.
func (t *Ticker) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Ticker) loop(stop chan struct{}) {
	timer := time.NewTimer(t.Period())
	defer timer.Stop()
	for {
		select {
		case <-stop:
			return
		case <-timer.C:
			if t.tick() == Done {
				t.release(stop)
				return
			}
			timer.Reset(t.Period())
		}
	}
}

// release clears the session handle, unless Disarm/Arm already replaced it.
func (t *Ticker) release(stop chan struct{}) {
	t.mu.Lock()
	if t.stop == stop {
		t.stop = nil
	}
	t.mu.Unlock()
}
