package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrOutOfBounds    = errors.New(f("out of bounds"))
	ErrChannelInvalid = errors.New(f("channel invalid"))

	// Instruction errors
	ErrInstructionUnknown = errors.New(f("unknown instruction"))
	ErrDivideByZero       = errors.New(f("divide by zero"))
)

// ErrAddress is a memory address outside of the machine's memory.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %#x out of bounds", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrOutOfBounds
}

// ErrRegister is a register index outside of the register bank.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %#x out of bounds", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrOutOfBounds
}

// ErrInstruction is an opcode with no entry in the instruction table.
type ErrInstruction struct {
	Pc     int
	Opcode Opcode
}

func (err ErrInstruction) Error() string {
	return f("pc 0x%02x: unknown instruction 0x%02x", err.Pc, uint8(err.Opcode))
}

func (err ErrInstruction) Unwrap() error {
	return ErrInstructionUnknown
}

type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
