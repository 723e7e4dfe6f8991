//go:build rp2040

package main

import (
	"machine"
	"time"

	"coildrive/console"
	"coildrive/core"
	"coildrive/expander"
	"coildrive/settings"
)

// Reference wiring for the Pico target: the two H-bridge direction pairs on
// GP2..GP5, bridge enables on GP6/GP7. Boards without the enable lines set
// those entries to core.PinNone; the half-step-with-inhibition scheme then
// degrades to plain half-step.
var boardPins = core.PinConfig{
	APos: 2,
	ANeg: 3,
	BPos: 4,
	BNeg: 5,
	AEn:  6,
	BEn:  7,
}

// Output backend selection, at most one true. usePIO streams phase words to
// six consecutive pins starting at boardPins.APos; useExpander drives the
// lines through a PCF8574 on I2C0 instead of native GPIO.
const (
	usePIO      = false
	useExpander = false
)

// expanderPins are PCF8574 line numbers, not RP2040 pins.
var expanderPins = core.PinConfig{
	APos: 0,
	ANeg: 1,
	BPos: 2,
	BNeg: 3,
	AEn:  4,
	BEn:  5,
}

func main() {
	// Give USB CDC time to enumerate before the console starts.
	time.Sleep(2 * time.Second)

	// TODO: back this with a littlefs store on machine.Flash so position
	// survives power cycles on this target too.
	store := settings.NewMemStore()

	var ctl *core.Controller
	var err error
	switch {
	case usePIO:
		var out *PIOPhaseOutput
		out, err = NewPIOPhaseOutput(0, 0, machine.Pin(boardPins.APos))
		if err == nil {
			ctl = core.NewController(out, true, store)
		}
	case useExpander:
		err = machine.I2C0.Configure(machine.I2CConfig{})
		if err == nil {
			ctl, err = core.NewPinController(expander.New(machine.I2C0, 0), expanderPins, store)
		}
	default:
		ctl, err = core.NewPinController(machineGPIO{}, boardPins, store)
	}
	if err != nil {
		for {
			println("coildrive: output init failed:", err.Error())
			time.Sleep(5 * time.Second)
		}
	}

	reg := core.NewCommandRegistry()
	core.RegisterMotionCommands(reg, ctl)

	// The console blocks on serial input; stepping is unaffected because
	// the tick scheduler runs on its own goroutine.
	con := console.New(machine.Serial, machine.Serial, reg)
	for {
		con.Run()
		time.Sleep(100 * time.Millisecond)
	}
}
