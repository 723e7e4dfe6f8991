// coildrive-ctl bridges stdin to a device's motor console over a serial
// line and echoes the device's acknowledgements.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"coildrive/serialport"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serialport.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serialport.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	// Device output straight to the terminal.
	go func() {
		if _, err := io.Copy(os.Stdout, port); err != nil {
			fmt.Fprintf(os.Stderr, "error: read: %v\n", err)
			os.Exit(1)
		}
	}()

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if _, err := port.Write(append(sc.Bytes(), '\n')); err != nil {
			fmt.Fprintf(os.Stderr, "error: write: %v\n", err)
			os.Exit(1)
		}
	}
}
