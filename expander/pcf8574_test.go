package expander

import (
	"testing"

	"coildrive/core"
)

type fakeBus struct {
	addr   uint16
	writes []byte
	err    error
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	f.addr = addr
	f.writes = append(f.writes, w...)
	return nil
}

func TestDefaultAddress(t *testing.T) {
	bus := &fakeBus{}
	d := New(bus, 0)
	if err := d.SetPin(0, true); err != nil {
		t.Fatalf("SetPin failed: %v", err)
	}
	if bus.addr != DefaultAddress {
		t.Errorf("addr = %#x, want %#x", bus.addr, DefaultAddress)
	}
}

func TestSetPinRewritesPort(t *testing.T) {
	bus := &fakeBus{}
	d := New(bus, 0x21)

	steps := []struct {
		pin   core.GPIOPin
		value bool
		want  uint8
	}{
		{0, true, 0x01},
		{4, true, 0x11},
		{0, false, 0x10},
		{7, true, 0x90},
	}
	for _, s := range steps {
		if err := d.SetPin(s.pin, s.value); err != nil {
			t.Fatalf("SetPin(%d, %v) failed: %v", s.pin, s.value, err)
		}
		if got := d.Port(); got != s.want {
			t.Errorf("port after SetPin(%d, %v) = %#x, want %#x", s.pin, s.value, got, s.want)
		}
	}
	if len(bus.writes) != len(steps) {
		t.Fatalf("wrote %d bytes, want %d", len(bus.writes), len(steps))
	}
	for i, s := range steps {
		if bus.writes[i] != s.want {
			t.Errorf("write %d = %#x, want %#x", i, bus.writes[i], s.want)
		}
	}
}

func TestSetPinOutOfRange(t *testing.T) {
	d := New(&fakeBus{}, 0)
	if err := d.SetPin(8, true); err != errBadPin {
		t.Errorf("err = %v, want %v", err, errBadPin)
	}
}

func TestConfigureOutputDrivesLow(t *testing.T) {
	d := New(&fakeBus{}, 0)
	if err := d.SetPin(3, true); err != nil {
		t.Fatalf("SetPin failed: %v", err)
	}
	if err := d.ConfigureOutput(3); err != nil {
		t.Fatalf("ConfigureOutput failed: %v", err)
	}
	if got := d.Port(); got&(1<<3) != 0 {
		t.Errorf("port = %#x, pin 3 still high", got)
	}
}

func TestBusErrorLeavesShadowUntouched(t *testing.T) {
	bus := &fakeBus{}
	d := New(bus, 0)
	if err := d.SetPin(1, true); err != nil {
		t.Fatalf("SetPin failed: %v", err)
	}
	bus.err = errBadPin // any error will do
	if err := d.SetPin(2, true); err == nil {
		t.Fatal("SetPin did not surface the bus error")
	}
	if got := d.Port(); got != 0x02 {
		t.Errorf("port = %#x, want 0x02 (unchanged)", got)
	}
}
