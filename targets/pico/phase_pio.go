//go:build rp2040

package main

// PIO phase output backend. A two-instruction PIO program pulls packed
// 6-bit phase patterns from the TX FIFO and writes all six coil/enable
// lines in one cycle, so the pins update simultaneously and the write-order
// hazard of per-pin GPIO never arises.

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"coildrive/core"
)

// buildPhaseProgram assembles the phase-streaming PIO program:
//
//	.wrap_target
//	pull block        ; wait for the next phase word
//	out pins, 6       ; drive all six lines from its low bits
//	.wrap
func buildPhaseProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Pull(false, true).Encode(),
		asm.Out(rp2pio.OutDestPins, 6).Encode(),
	}
}

const phasePIOOrigin = 0

// PIOPhaseOutput implements core.PhaseApplier by streaming packed phase
// patterns to six consecutive pins starting at basePin, ordered as
// core.PhaseState.Bits: APos, ANeg, BPos, BNeg, AEn, BEn.
type PIOPhaseOutput struct {
	pio     *rp2pio.PIO
	sm      rp2pio.StateMachine
	basePin machine.Pin
}

// NewPIOPhaseOutput claims a state machine on the given PIO block and loads
// the phase program.
func NewPIOPhaseOutput(pioNum, smNum uint8, basePin machine.Pin) (*PIOPhaseOutput, error) {
	var pioHW *rp2pio.PIO
	if pioNum == 0 {
		pioHW = rp2pio.PIO0
	} else {
		pioHW = rp2pio.PIO1
	}

	b := &PIOPhaseOutput{
		pio:     pioHW,
		sm:      pioHW.StateMachine(smNum),
		basePin: basePin,
	}

	b.sm.TryClaim()

	program := buildPhaseProgram()
	offset, err := b.pio.AddProgram(program, phasePIOOrigin)
	if err != nil {
		return nil, err
	}

	for i := 0; i < 6; i++ {
		(basePin + machine.Pin(i)).Configure(machine.PinConfig{Mode: b.pio.PinMode()})
	}

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetOutPins(basePin, 6)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	cfg.SetClkDivIntFrac(1000, 0)

	b.sm.Init(offset, cfg)
	b.sm.SetPindirsConsecutive(basePin, 6, true)
	b.sm.SetPinsConsecutive(basePin, 6, false)
	b.sm.SetEnabled(true)

	return b, nil
}

// Apply queues the phase pattern. The FIFO is drained at commutation rate,
// far below what the state machine consumes, so the wait never lasts.
func (b *PIOPhaseOutput) Apply(p core.PhaseState) {
	for b.sm.IsTxFIFOFull() {
	}
	b.sm.TxPut(uint32(p.Bits()))
}
