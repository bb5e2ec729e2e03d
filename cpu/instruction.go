package cpu

// Instruction is an entry in the instruction table.
//
// Exec performs the instruction, and returns the address of the next
// instruction to fetch. next_pc is the address following this instruction.
type Instruction struct {
	Name string
	Exec func(cpu *Cpu, code Code, next_pc int) (pc int, err error)
}

// instructions is the decode table, keyed by opcode.
var instructions = map[Opcode]Instruction{
	OP_NOP:  {"NOP", (*Cpu).opNop},
	OP_HLT:  {"HLT", (*Cpu).opHlt},
	OP_LDI:  {"LDI", (*Cpu).opLdi},
	OP_LD:   {"LD", (*Cpu).opLd},
	OP_ST:   {"ST", (*Cpu).opSt},
	OP_PRN:  {"PRN", (*Cpu).opPrn},
	OP_PRA:  {"PRA", (*Cpu).opPra},
	OP_PUSH: {"PUSH", (*Cpu).opPush},
	OP_POP:  {"POP", (*Cpu).opPop},
	OP_CALL: {"CALL", (*Cpu).opCall},
	OP_RET:  {"RET", (*Cpu).opRet},
	OP_JMP:  {"JMP", (*Cpu).opJmp},
	OP_JEQ:  {"JEQ", (*Cpu).opJeq},
	OP_JNE:  {"JNE", (*Cpu).opJne},
	OP_JGT:  {"JGT", (*Cpu).opJgt},
	OP_JLT:  {"JLT", (*Cpu).opJlt},
	OP_JLE:  {"JLE", (*Cpu).opJle},
	OP_JGE:  {"JGE", (*Cpu).opJge},
	OP_CMP:  {"CMP", (*Cpu).opCmp},
	OP_ADD:  {"ADD", (*Cpu).opAlu},
	OP_SUB:  {"SUB", (*Cpu).opAlu},
	OP_MUL:  {"MUL", (*Cpu).opAlu},
	OP_DIV:  {"DIV", (*Cpu).opAlu},
	OP_MOD:  {"MOD", (*Cpu).opAlu},
	OP_AND:  {"AND", (*Cpu).opAlu},
	OP_OR:   {"OR", (*Cpu).opAlu},
	OP_XOR:  {"XOR", (*Cpu).opAlu},
	OP_SHL:  {"SHL", (*Cpu).opAlu},
	OP_SHR:  {"SHR", (*Cpu).opAlu},
	OP_INC:  {"INC", (*Cpu).opAluUnary},
	OP_DEC:  {"DEC", (*Cpu).opAluUnary},
	OP_NOT:  {"NOT", (*Cpu).opAluUnary},
}

func (cpu *Cpu) opNop(code Code, next_pc int) (pc int, err error) {
	pc = next_pc
	return
}

// opHlt stops the CPU, leaving the PC on the halt instruction.
func (cpu *Cpu) opHlt(code Code, next_pc int) (pc int, err error) {
	cpu.State = STATE_HALTED
	pc = cpu.Pc
	return
}

func (cpu *Cpu) opLdi(code Code, next_pc int) (pc int, err error) {
	err = cpu.SetRegister(code.A, code.B)
	pc = next_pc
	return
}

// opLd loads register A from the memory address in register B.
func (cpu *Cpu) opLd(code Code, next_pc int) (pc int, err error) {
	address, err := cpu.GetRegister(code.B)
	if err != nil {
		return
	}
	if _, err = cpu.GetRegister(code.A); err != nil {
		return
	}
	value, err := cpu.Read(int(address))
	if err != nil {
		return
	}
	err = cpu.SetRegister(code.A, value)
	pc = next_pc
	return
}

// opSt stores register B to the memory address in register A.
func (cpu *Cpu) opSt(code Code, next_pc int) (pc int, err error) {
	address, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	value, err := cpu.GetRegister(code.B)
	if err != nil {
		return
	}
	err = cpu.Write(int(address), value)
	pc = next_pc
	return
}

func (cpu *Cpu) opPrn(code Code, next_pc int) (pc int, err error) {
	value, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}
	err = channel.Send(value)
	pc = next_pc
	return
}

func (cpu *Cpu) opPra(code Code, next_pc int) (pc int, err error) {
	value, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}
	err = channel.SendChar(value)
	pc = next_pc
	return
}

func (cpu *Cpu) opPush(code Code, next_pc int) (pc int, err error) {
	value, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	err = cpu.Push(value)
	pc = next_pc
	return
}

func (cpu *Cpu) opPop(code Code, next_pc int) (pc int, err error) {
	// Validate the target before the stack is touched.
	if _, err = cpu.GetRegister(code.A); err != nil {
		return
	}
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	err = cpu.SetRegister(code.A, value)
	pc = next_pc
	return
}

// opCall pushes the return address, and jumps to the address in register A.
func (cpu *Cpu) opCall(code Code, next_pc int) (pc int, err error) {
	target, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	if next_pc >= MEMORY_SIZE {
		err = ErrAddress(next_pc)
		return
	}
	err = cpu.Push(uint8(next_pc))
	if err != nil {
		return
	}
	pc = int(target)
	return
}

func (cpu *Cpu) opRet(code Code, next_pc int) (pc int, err error) {
	value, err := cpu.Pop()
	if err != nil {
		return
	}
	pc = int(value)
	return
}

// jumpIf jumps to the address in register A if cond is set.
func (cpu *Cpu) jumpIf(cond bool, code Code, next_pc int) (pc int, err error) {
	target, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	if cond {
		pc = int(target)
	} else {
		pc = next_pc
	}
	return
}

func (cpu *Cpu) opJmp(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf(true, code, next_pc)
}

func (cpu *Cpu) opJeq(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&FL_EQUAL) != 0, code, next_pc)
}

func (cpu *Cpu) opJne(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&FL_EQUAL) == 0, code, next_pc)
}

func (cpu *Cpu) opJgt(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&FL_GREATER) != 0, code, next_pc)
}

func (cpu *Cpu) opJlt(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&FL_LESS) != 0, code, next_pc)
}

func (cpu *Cpu) opJle(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&(FL_LESS|FL_EQUAL)) != 0, code, next_pc)
}

func (cpu *Cpu) opJge(code Code, next_pc int) (pc int, err error) {
	return cpu.jumpIf((cpu.Fl&(FL_GREATER|FL_EQUAL)) != 0, code, next_pc)
}

// opCmp sets exactly one of the flags, comparing register A to register B.
func (cpu *Cpu) opCmp(code Code, next_pc int) (pc int, err error) {
	a, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	b, err := cpu.GetRegister(code.B)
	if err != nil {
		return
	}
	switch {
	case a == b:
		cpu.Fl = FL_EQUAL
	case a > b:
		cpu.Fl = FL_GREATER
	default:
		cpu.Fl = FL_LESS
	}
	pc = next_pc
	return
}

// opAlu performs a two register ALU operation, storing into register A.
func (cpu *Cpu) opAlu(code Code, next_pc int) (pc int, err error) {
	a, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	b, err := cpu.GetRegister(code.B)
	if err != nil {
		return
	}
	output, err := cpu.doAlu(code.Opcode, a, b)
	if err != nil {
		return
	}
	err = cpu.SetRegister(code.A, output)
	pc = next_pc
	return
}

// opAluUnary performs a single register ALU operation on register A.
func (cpu *Cpu) opAluUnary(code Code, next_pc int) (pc int, err error) {
	a, err := cpu.GetRegister(code.A)
	if err != nil {
		return
	}
	output, err := cpu.doAlu(code.Opcode, a, 0)
	if err != nil {
		return
	}
	err = cpu.SetRegister(code.A, output)
	pc = next_pc
	return
}

// doAlu performs the requested ALU action, and returns the output value.
// All arithmetic wraps modulo 256.
func (cpu *Cpu) doAlu(op Opcode, input uint8, value uint8) (output uint8, err error) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_MUL:
		output = input * value
	case OP_DIV:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input / value
	case OP_MOD:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input % value
	case OP_AND:
		output = input & value
	case OP_OR:
		output = input | value
	case OP_XOR:
		output = input ^ value
	case OP_SHL:
		output = input << value
	case OP_SHR:
		output = input >> value
	case OP_INC:
		output = input + 1
	case OP_DEC:
		output = input - 1
	case OP_NOT:
		output = ^input
	default:
		err = ErrInstructionUnknown
	}

	return
}
