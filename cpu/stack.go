package cpu

// Push decrements the stack pointer, then stores value at the new top of
// the stack. The stack shares memory with code and data.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Sp - 1
	err = cpu.Write(sp, value)
	if err != nil {
		return
	}

	cpu.Sp = sp
	return
}

// Pop reads the value at the top of the stack, then increments the stack
// pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Read(cpu.Sp)
	if err != nil {
		return
	}

	sp := cpu.Sp + 1
	if sp >= MEMORY_SIZE {
		value = 0
		err = ErrAddress(sp)
		return
	}

	cpu.Sp = sp
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() (value uint8, err error) {
	return cpu.Read(cpu.Sp)
}
