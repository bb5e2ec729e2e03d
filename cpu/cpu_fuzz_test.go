package cpu

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ls8/io"
)

func FuzzCpu(f *testing.F) {
	for op := range instructions {
		f.Add(uint8(op), uint8(0), uint8(1), uint8(FL_EQUAL))
		f.Add(uint8(op), uint8(7), uint8(9), uint8(FL_LESS))
	}
	f.Add(uint8(0xff), uint8(0), uint8(0), uint8(0))

	f.Fuzz(func(t *testing.T, opcode uint8, a uint8, b uint8, fl uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		output := &bytes.Buffer{}
		cpu.SetChannel(&io.Tape{Output: output})

		cpu.Pc = 0x30
		cpu.Sp = 0xe0
		cpu.Fl = Flag(fl) & (FL_EQUAL | FL_GREATER | FL_LESS)
		for n := range cpu.Register {
			cpu.Register[n] = uint8(0x11*n + 3)
		}
		cpu.Memory[0xe0] = 0x42

		pre := *cpu
		code := Code{Opcode: Opcode(opcode), A: a, B: b}

		err := cpu.Execute(code)

		code_str := fmt.Sprintf("%v\ncpu:\n%v", code, cpu.String())

		_, known := instructions[code.Opcode]
		if !known {
			var inst ErrInstruction
			if assert.True(errors.As(err, &inst), code_str) {
				assert.Equal(pre.Pc, inst.Pc, code_str)
			}
			assert.Equal(pre.Register, cpu.Register, code_str)
			assert.Equal(pre.Memory, cpu.Memory, code_str)
			assert.Equal(pre.Pc, cpu.Pc, code_str)
			return
		}

		// Machine invariants hold on success and on failure.
		assert.True(cpu.Pc >= 0 && cpu.Pc < MEMORY_SIZE, code_str)
		assert.True(cpu.Sp >= 0 && cpu.Sp < MEMORY_SIZE, code_str)

		if err != nil {
			assert.ErrorIs(err, ErrOpcode{}, code_str)
			switch {
			case errors.Is(err, ErrOutOfBounds):
				// Only register operands can be out of bounds here.
				assert.True(a >= REGISTER_COUNT || (code.Opcode.Operands() == 2 && b >= REGISTER_COUNT), code_str)
			case errors.Is(err, ErrDivideByZero):
				assert.Contains([]Opcode{OP_DIV, OP_MOD}, code.Opcode, code_str)
			default:
				assert.NoError(err, code_str)
			}
			assert.Equal(pre.Pc, cpu.Pc, code_str)
			return
		}

		if code.Opcode.Operands() > 0 && code.Opcode != OP_LDI {
			assert.True(a < REGISTER_COUNT, code_str)
		}

		if code.Opcode.SetsPc() {
			switch code.Opcode {
			case OP_RET:
				assert.Equal(int(pre.Memory[pre.Sp]), cpu.Pc, code_str)
			case OP_CALL, OP_JMP:
				assert.Equal(int(pre.Register[a]), cpu.Pc, code_str)
			default:
				assert.Contains([]int{int(pre.Register[a]), pre.Pc + 2}, cpu.Pc, code_str)
			}
		} else if code.Opcode == OP_HLT {
			assert.Equal(pre.Pc, cpu.Pc, code_str)
			assert.Equal(STATE_HALTED, cpu.State, code_str)
		} else {
			assert.Equal(pre.Pc+code.Opcode.Width(), cpu.Pc, code_str)
		}

		if code.Opcode != OP_CMP {
			assert.Equal(pre.Fl, cpu.Fl, code_str)
		} else {
			assert.Contains([]Flag{FL_EQUAL, FL_GREATER, FL_LESS}, cpu.Fl, code_str)
		}
	})
}
