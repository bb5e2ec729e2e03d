// Package cpu implements the LS-8 microprocessor.
//
// The CPU consists of a program counter (PC), eight 8-bit general-purpose
// registers (r0-r7), a stack pointer (SP), a comparison flag register (FL)
// and 256 bytes of memory shared by code, data and the stack.
//
// Instructions are one to three bytes wide. The opcode byte is laid out as
// AABCDDDD: AA is the operand count, B marks ALU operations, C marks
// instructions that set the PC, and DDDD identifies the instruction.
package cpu
