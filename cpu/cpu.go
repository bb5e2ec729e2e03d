package cpu

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/ls8/io"
)

// Channel is the output channel interface.
type Channel io.Channel

const (
	REGISTER_COUNT = 8    // Number of general-purpose registers.
	MEMORY_SIZE    = 256  // Bytes of memory.
	SP_DEFAULT     = 0xf4 // Stack pointer after reset.
)

// Cpu is the simulation context for the LS-8 CPU.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int                   // Program counter.
	Sp       int                   // Stack pointer.
	Fl       Flag                  // Comparison flags.
	Register [REGISTER_COUNT]uint8 // Register bank.
	Memory   [MEMORY_SIZE]uint8    // Code, data, and stack.
	State    State                 // Execution state.

	Ticks int // CPU ticks counter.

	channel Channel // Output channel.
}

// NewCpu creates a new CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	cpu.Reset()

	return
}

// Reset the CPU state.
// - Clears the registers, memory, and flags.
// - Zeros the ticks counter.
// - Rewinds the output channel.
// - Sets the PC to 0, and the SP to its default.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.Pc = 0
	cpu.Sp = SP_DEFAULT
	cpu.Fl = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// SetChannel sets the output channel.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the output channel.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// Read returns the memory byte at address.
func (cpu *Cpu) Read(address int) (value uint8, err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	value = cpu.Memory[address]
	return
}

// Write sets the memory byte at address.
func (cpu *Cpu) Write(address int, value uint8) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = ErrAddress(address)
		return
	}

	cpu.Memory[address] = value
	return
}

// GetRegister returns the value of a register.
func (cpu *Cpu) GetRegister(index uint8) (value uint8, err error) {
	if int(index) >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	value = cpu.Register[index]
	return
}

// SetRegister sets the value of a register.
func (cpu *Cpu) SetRegister(index uint8, value uint8) (err error) {
	if int(index) >= REGISTER_COUNT {
		err = ErrRegister(index)
		return
	}

	cpu.Register[index] = value
	return
}

// peek returns the memory byte at address, or zero past the end of memory.
func (cpu *Cpu) peek(address int) uint8 {
	if address < 0 || address >= MEMORY_SIZE {
		return 0
	}

	return cpu.Memory[address]
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "sp", "fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
		"state",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "sp":
			strval = fmt.Sprintf("%02X", cpu.Sp)
		case "fl":
			strval = cpu.Fl.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			strval = fmt.Sprintf("%02X", cpu.Register[byte(reg[1]-'0')])
		case "stack":
			val, err := cpu.Peek()
			if err == nil && cpu.Sp < SP_DEFAULT {
				strval = fmt.Sprintf("%02X", val)
			} else {
				strval = "--"
			}
		case "state":
			strval = cpu.State.String()
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line summary of the CPU state, with the
// instruction bytes at the PC.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.peek(cpu.Pc),
		cpu.peek(cpu.Pc+1),
		cpu.peek(cpu.Pc+2))

	for _, reg := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}

	return sb.String()
}

// FetchCode fetches the instruction at the PC, along with the two bytes
// that follow it.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	ir, err := cpu.Read(cpu.Pc)
	if err != nil {
		return
	}

	code = Code{
		Opcode: Opcode(ir),
		A:      cpu.peek(cpu.Pc + 1),
		B:      cpu.peek(cpu.Pc + 2),
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	return
}

// Execute executes a single decoded instruction at the PC.
func (cpu *Cpu) Execute(code Code) (err error) {
	inst, ok := instructions[code.Opcode]
	if !ok {
		err = ErrInstruction{Pc: cpu.Pc, Opcode: code.Opcode}
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, code)
	}

	next_pc := cpu.Pc + code.Opcode.Width()
	if next_pc > MEMORY_SIZE {
		// Operands run past the end of memory.
		err = ErrAddress(MEMORY_SIZE)
		return
	}

	pc, err := inst.Exec(cpu, code, next_pc)
	if err != nil {
		return
	}

	if pc >= MEMORY_SIZE {
		err = ErrAddress(pc)
		return
	}

	cpu.Pc = pc

	return
}
