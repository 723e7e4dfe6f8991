//go:build linux

// coildrive-pi runs the motion controller against the GPIO header of a
// Raspberry Pi or similar Linux SBC, with the text console on stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"coildrive/console"
	"coildrive/core"
	"coildrive/rpihost"
	"coildrive/settings"
)

var (
	statePath = flag.String("state", "coildrive.state", "Settings record path")
	aPos      = flag.Int("apos", 17, "BCM pin for coil A positive")
	aNeg      = flag.Int("aneg", 18, "BCM pin for coil A negative")
	bPos      = flag.Int("bpos", 27, "BCM pin for coil B positive")
	bNeg      = flag.Int("bneg", 22, "BCM pin for coil B negative")
	aEn       = flag.Int("aen", -1, "BCM pin for bridge A enable (-1 = not wired)")
	bEn       = flag.Int("ben", -1, "BCM pin for bridge B enable (-1 = not wired)")
)

func pinArg(v int) core.GPIOPin {
	if v < 0 {
		return core.PinNone
	}
	return core.GPIOPin(v)
}

func main() {
	flag.Parse()

	gpio, err := rpihost.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: gpio init: %v\n", err)
		os.Exit(1)
	}

	pins := core.PinConfig{
		APos: pinArg(*aPos),
		ANeg: pinArg(*aNeg),
		BPos: pinArg(*bPos),
		BNeg: pinArg(*bNeg),
		AEn:  pinArg(*aEn),
		BEn:  pinArg(*bEn),
	}

	ctl, err := core.NewPinController(gpio, pins, settings.NewFileStore(*statePath))
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
