package io

import (
	"io"
	"strconv"
)

// Tape is the LS-8 output channel over an io.Writer.
// Values sent are written as decimal lines, characters as raw bytes.
type Tape struct {
	Output io.Writer

	// Sent is the count of values and characters written since the last rewind.
	Sent int

	line []byte
}

var _ Channel = (*Tape)(nil)

// Rewind zeros the sent counter.
func (tc *Tape) Rewind() {
	tc.Sent = 0
}

// Send writes the decimal representation of value, then a newline.
func (tc *Tape) Send(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	tc.line = strconv.AppendUint(tc.line[:0], uint64(value), 10)
	tc.line = append(tc.line, '\n')

	_, err = tc.Output.Write(tc.line)
	if err != nil {
		return
	}

	tc.Sent++
	return
}

// SendChar writes value as a single byte.
func (tc *Tape) SendChar(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err != nil {
		return
	}

	tc.Sent++
	return
}
