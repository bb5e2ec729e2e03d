// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 program images.
package emulator

import (
	"context"
	"errors"
	"log"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

// Emulator state. CPU + program image + output channel.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Tape io.Tape // Output channel.
	Rom  io.Rom  // Program image.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// Reset the CPU, and load the program image into memory at address 0.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Cpu.Reset()

	for address, value := range emu.Rom.Bytes() {
		err = emu.Cpu.Write(address, value)
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes", len(emu.Rom.Data))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// Halted returns true once the CPU has executed a halt.
func (emu *Emulator) Halted() bool {
	return emu.Cpu.State == cpu.STATE_HALTED
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Halted()
	return
}

// Run ticks the emulator until the program halts, an error occurs, or
// the context is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for done := false; !done; {
		err = ctx.Err()
		if err != nil {
			return
		}

		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted at pc 0x%02x after %d ticks", emu.Pc(), emu.Ticks())
	}

	return
}
