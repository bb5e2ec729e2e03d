package cpu

import (
	"fmt"
)

// Opcode is an LS-8 instruction opcode byte.
type Opcode uint8

const (
	OP_NOP  = Opcode(0b0000_0000)
	OP_HLT  = Opcode(0b0000_0001)
	OP_RET  = Opcode(0b0001_0001)
	OP_PUSH = Opcode(0b0100_0101)
	OP_POP  = Opcode(0b0100_0110)
	OP_PRN  = Opcode(0b0100_0111)
	OP_PRA  = Opcode(0b0100_1000)
	OP_CALL = Opcode(0b0101_0000)
	OP_JMP  = Opcode(0b0101_0100)
	OP_JEQ  = Opcode(0b0101_0101)
	OP_JNE  = Opcode(0b0101_0110)
	OP_JGT  = Opcode(0b0101_0111)
	OP_JLT  = Opcode(0b0101_1000)
	OP_JLE  = Opcode(0b0101_1001)
	OP_JGE  = Opcode(0b0101_1010)
	OP_INC  = Opcode(0b0110_0101)
	OP_DEC  = Opcode(0b0110_0110)
	OP_NOT  = Opcode(0b0110_1001)
	OP_LDI  = Opcode(0b1000_0010)
	OP_LD   = Opcode(0b1000_0011)
	OP_ST   = Opcode(0b1000_0100)
	OP_ADD  = Opcode(0b1010_0000)
	OP_SUB  = Opcode(0b1010_0001)
	OP_MUL  = Opcode(0b1010_0010)
	OP_DIV  = Opcode(0b1010_0011)
	OP_MOD  = Opcode(0b1010_0100)
	OP_CMP  = Opcode(0b1010_0111)
	OP_AND  = Opcode(0b1010_1000)
	OP_OR   = Opcode(0b1010_1010)
	OP_XOR  = Opcode(0b1010_1011)
	OP_SHL  = Opcode(0b1010_1100)
	OP_SHR  = Opcode(0b1010_1101)
)

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// Width returns the total instruction width, in bytes.
func (op Opcode) Width() int {
	return 1 + op.Operands()
}

// IsAlu returns true if the opcode is handled by the ALU.
func (op Opcode) IsAlu() bool {
	return (op & 0b0010_0000) != 0
}

// SetsPc returns true if the opcode may set the program counter directly.
func (op Opcode) SetsPc() bool {
	return (op & 0b0001_0000) != 0
}

// String returns the instruction mnemonic.
func (op Opcode) String() string {
	inst, ok := instructions[op]
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}

	return inst.Name
}

// Flag is the comparison flag register, laid out as 00000LGE.
type Flag uint8

const (
	FL_EQUAL   = Flag(0b001)
	FL_GREATER = Flag(0b010)
	FL_LESS    = Flag(0b100)
)

// String returns the flags as "LGE", with '-' for each clear flag.
func (fl Flag) String() string {
	str := []byte("---")
	if (fl & FL_LESS) != 0 {
		str[0] = 'L'
	}
	if (fl & FL_GREATER) != 0 {
		str[1] = 'G'
	}
	if (fl & FL_EQUAL) != 0 {
		str[2] = 'E'
	}
	return string(str)
}

// Code is a decoded instruction: the opcode and the two bytes that
// follow it, whether or not the opcode uses them.
type Code struct {
	Opcode Opcode
	A      uint8
	B      uint8
}

// String returns the assembly language representation of this instruction.
func (code Code) String() (out string) {
	switch code.Opcode.Operands() {
	case 0:
		out = code.Opcode.String()
	case 1:
		out = fmt.Sprintf("%v 0x%02x", code.Opcode, code.A)
	default:
		out = fmt.Sprintf("%v 0x%02x,0x%02x", code.Opcode, code.A, code.B)
	}

	return
}
