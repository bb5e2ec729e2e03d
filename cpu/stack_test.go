package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	assert.Equal(SP_DEFAULT, cpu.Sp)

	err := cpu.Push(0x12)
	assert.NoError(err)
	assert.Equal(SP_DEFAULT-1, cpu.Sp)
	assert.Equal(uint8(0x12), cpu.Memory[SP_DEFAULT-1])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xab)

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0xab), val)
	assert.Equal(SP_DEFAULT-1, cpu.Sp)

	val, err = cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x12), val)
	assert.Equal(SP_DEFAULT, cpu.Sp)
}

func TestStack_Pop_Unprotected(t *testing.T) {
	assert := assert.New(t)

	// Popping past the reset SP reads whatever memory holds.
	cpu := NewCpu()
	cpu.Memory[SP_DEFAULT] = 0x5a

	val, err := cpu.Pop()
	assert.NoError(err)
	assert.Equal(uint8(0x5a), val)
	assert.Equal(SP_DEFAULT+1, cpu.Sp)
}

func TestStack_Pop_Underflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Sp = MEMORY_SIZE - 1

	val, err := cpu.Pop()
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(ErrAddress(MEMORY_SIZE), err)
	assert.Equal(uint8(0), val)
	assert.Equal(MEMORY_SIZE-1, cpu.Sp)
}

func TestStack_Push_Overflow(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Sp = 0

	err := cpu.Push(0x12)
	assert.ErrorIs(err, ErrOutOfBounds)
	assert.Equal(0, cpu.Sp)
	assert.Equal(uint8(0), cpu.Memory[0])
}

func TestStack_Push_Code(t *testing.T) {
	assert := assert.New(t)

	// The stack may grow down over code.
	cpu := NewCpu()
	cpu.Sp = 3
	cpu.Memory[2] = uint8(OP_HLT)

	assert.NoError(cpu.Push(0x99))
	assert.Equal(uint8(0x99), cpu.Memory[2])
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Push(0x12)
	cpu.Push(0xab)

	val, err := cpu.Peek()
	assert.NoError(err)
	assert.Equal(uint8(0xab), val)
	assert.Equal(SP_DEFAULT-2, cpu.Sp)
}

func TestStack_Lifo(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for n := range 16 {
		assert.NoError(cpu.Push(uint8(n)))
	}

	for n := 15; n >= 0; n-- {
		val, err := cpu.Pop()
		assert.NoError(err)
		assert.Equal(uint8(n), val)
	}

	assert.Equal(SP_DEFAULT, cpu.Sp)
}

func TestStack_Capacity(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	for range SP_DEFAULT {
		assert.NoError(cpu.Push(0xee))
	}

	assert.Equal(0, cpu.Sp)
	assert.ErrorIs(cpu.Push(0xee), ErrOutOfBounds)
}
