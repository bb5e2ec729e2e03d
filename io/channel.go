// Package io provides the collaborators of the LS-8 machine: the output
// channel written by the print instructions, and the program image (ROM)
// loaded into memory before execution.
package io

// Channel defines the interface for the LS-8 output channel.
type Channel interface {
	// Rewind resets any buffered channel state.
	Rewind()
	// Send writes a value as a decimal number on its own line.
	Send(value uint8) error
	// SendChar writes a value as a single raw character.
	SendChar(value uint8) error
}
