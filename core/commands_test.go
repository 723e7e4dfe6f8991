package core

import (
	"strings"
	"testing"
)

func newTestCommandSet(t *testing.T) (*CommandRegistry, *Controller, *fakeApplier) {
	t.Helper()
	c, out, _ := newTestController(t, true)
	reg := NewCommandRegistry()
	RegisterMotionCommands(reg, c)
	return reg, c, out
}

func TestDispatchUnknownCommand(t *testing.T) {
	reg, _, _ := newTestCommandSet(t)
	if _, err := reg.Dispatch("bogus", nil); err != ErrUnknownCommand {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestRegistryUsage(t *testing.T) {
	reg, _, _ := newTestCommandSet(t)
	usage := reg.Usage()
	for _, name := range []string{"calibrate", "configure", "move", "status"} {
		if !strings.Contains(usage, name) {
			t.Errorf("usage missing %q:\n%s", name, usage)
		}
	}
}

func TestCalibrateCommandRejectsArgs(t *testing.T) {
	reg, _, _ := newTestCommandSet(t)
	if _, err := reg.Dispatch("calibrate", []string{"1"}); err != ErrInvalidArgument {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
	if _, err := reg.Dispatch("calibrate", nil); err != nil {
		t.Errorf("calibrate failed: %v", err)
	}
}

func TestConfigureCommand(t *testing.T) {
	reg, c, _ := newTestCommandSet(t)

	if _, err := reg.Dispatch("configure", []string{"2000", "1"}); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if got := c.TickPeriodUS(); got != 2000 {
		t.Errorf("period = %d, want 2000", got)
	}
	if got := c.SchemeIndex(); got != SchemeFullStep {
		t.Errorf("scheme = %d, want %d", got, SchemeFullStep)
	}

	// An empty token leaves that field alone.
	if _, err := reg.Dispatch("configure", []string{"", "0"}); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if got := c.TickPeriodUS(); got != 2000 {
		t.Errorf("period = %d, want 2000 (unchanged)", got)
	}
	if got := c.SchemeIndex(); got != SchemeRotatingWave {
		t.Errorf("scheme = %d, want %d", got, SchemeRotatingWave)
	}

	// Trailing arguments may be omitted entirely.
	if _, err := reg.Dispatch("configure", []string{"3000"}); err != nil {
		t.Fatalf("configure failed: %v", err)
	}
	if got := c.TickPeriodUS(); got != 3000 {
		t.Errorf("period = %d, want 3000", got)
	}
	if got := c.SchemeIndex(); got != SchemeRotatingWave {
		t.Errorf("scheme = %d, want %d (unchanged)", got, SchemeRotatingWave)
	}
}

func TestConfigureCommandRejectsBadTokens(t *testing.T) {
	reg, c, _ := newTestCommandSet(t)

	cases := [][]string{
		{"abc"},
		{"-5"},
		{"1000", "x"},
		{"1000", "2", "3"},
	}
	for _, args := range cases {
		if _, err := reg.Dispatch("configure", args); err != ErrInvalidArgument {
			t.Errorf("configure %v: err = %v, want ErrInvalidArgument", args, err)
		}
	}
	// Nothing was applied.
	if got := c.TickPeriodUS(); got != slowPeriodUS {
		t.Errorf("period = %d, want %d (unchanged)", got, uint32(slowPeriodUS))
	}
	if got := c.SchemeIndex(); got != int(DefaultSchemeIndex) {
		t.Errorf("scheme = %d, want %d (unchanged)", got, DefaultSchemeIndex)
	}
}

func TestMoveCommand(t *testing.T) {
	reg, c, _ := newTestCommandSet(t)

	if _, err := reg.Dispatch("move", []string{"5"}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := c.Target(); got != 5 {
		t.Errorf("target = %d, want 5", got)
	}
	runToIdle(t, c)

	// Relative move from the new position.
	if _, err := reg.Dispatch("move", []string{"3", "1"}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := c.Target(); got != 8 {
		t.Errorf("target = %d, want 8", got)
	}
	runToIdle(t, c)

	// No arguments means absolute zero, unlocked.
	if _, err := reg.Dispatch("move", nil); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := c.Target(); got != 0 {
		t.Errorf("target = %d, want 0", got)
	}
	runToIdle(t, c)
	if got := c.Position(); got != 0 {
		t.Errorf("position = %d, want 0", got)
	}
}

func TestMoveCommandLockFlag(t *testing.T) {
	reg, c, out := newTestCommandSet(t)

	// Empty leading tokens skip position and relative, lock stays parsed.
	if _, err := reg.Dispatch("move", []string{"", "", "1"}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	runToIdle(t, c)
	want := c.EffectiveScheme().Phase(c.PhaseIndex())
	if got := out.last(); got != want {
		t.Errorf("locked phase = %+v, want %+v", got, want)
	}
}

func TestMoveCommandRejectsBadTokens(t *testing.T) {
	reg, c, _ := newTestCommandSet(t)

	cases := [][]string{
		{"abc"},
		{"5000000000"}, // does not fit int32
		{"1", "2"},
		{"1", "0", "x"},
		{"1", "0", "0", "0"},
	}
	for _, args := range cases {
		if _, err := reg.Dispatch("move", args); err != ErrInvalidArgument {
			t.Errorf("move %v: err = %v, want ErrInvalidArgument", args, err)
		}
	}
	if got := c.Target(); got != 0 {
		t.Errorf("target = %d, want 0 (unchanged)", got)
	}
	if !c.Idle() {
		t.Error("controller stepping after rejected moves")
	}
}

func TestStatusCommand(t *testing.T) {
	reg, c, _ := newTestCommandSet(t)

	info, err := reg.Dispatch("status", nil)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"pos=0", "target=0", "phase=0", "scheme=2", "idle"} {
		if !strings.Contains(info, want) {
			t.Errorf("status %q missing %q", info, want)
		}
	}

	if _, err := reg.Dispatch("move", []string{"-3"}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	info, err = reg.Dispatch("status", nil)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"target=-3", "stepping"} {
		if !strings.Contains(info, want) {
			t.Errorf("status %q missing %q", info, want)
		}
	}
	runToIdle(t, c)
}

func TestStatusCommandDisabled(t *testing.T) {
	c := NewController(nil, false, nil)
	defer c.Close()
	reg := NewCommandRegistry()
	RegisterMotionCommands(reg, c)

	if _, err := reg.Dispatch("status", nil); err != ErrDisabled {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
}
