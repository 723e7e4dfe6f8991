// coildrive-sim runs the motion controller against a tracing fake GPIO
// driver, with the text console on stdin/stdout. Useful for exercising the
// full command path without hardware.
package main

import (
	"flag"
	"fmt"
	"os"

	"coildrive/console"
	"coildrive/core"
	"coildrive/settings"
)

var (
	statePath = flag.String("state", "coildrive-sim.state", "Settings record path")
	trace     = flag.Bool("trace", false, "Print every pin write")
)

// tracePins implements core.GPIODriver, optionally logging writes.
type tracePins struct{}

func (tracePins) ConfigureOutput(pin core.GPIOPin) error {
	if *trace {
		fmt.Printf("# configure pin %d\n", pin)
	}
	return nil
}

func (tracePins) SetPin(pin core.GPIOPin, value bool) error {
	if *trace {
		v := 0
		if value {
			v = 1
		}
		fmt.Printf("# pin %d <- %d\n", pin, v)
	}
	return nil
}

func main() {
	flag.Parse()

	pins := core.PinConfig{APos: 2, ANeg: 3, BPos: 4, BNeg: 5, AEn: 6, BEn: 7}
	store := settings.NewFileStore(*statePath)

	ctl, err := core.NewPinController(tracePins{}, pins, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer ctl.Close()

	reg := core.NewCommandRegistry()
	core.RegisterMotionCommands(reg, ctl)

	con := console.New(os.Stdin, os.Stdout, reg)
	if err := con.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
