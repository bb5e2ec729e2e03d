package io

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

const (
	ROM_SIZE = 256 // Maximum image size, in bytes.
)

// Rom is an LS-8 program image.
type Rom struct {
	Data []uint8
}

// Parse reads a program image: one 8-bit binary literal per line.
// Text following a '#' is a comment, and blank lines are skipped.
// Any previous image data is replaced.
func (rc *Rom) Parse(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	rc.Data = rc.Data[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment, _, _ := strings.Cut(text, "#")
		line = strings.TrimSpace(text_comment)
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrParseBinary(line)
			return
		}

		if len(rc.Data) == ROM_SIZE {
			err = ErrRomFull
			return
		}

		rc.Data = append(rc.Data, uint8(value))
	}

	err = scanner.Err()
	return
}

// Bytes returns an iterator over the image, by load address.
func (rc *Rom) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for address, value := range rc.Data {
			if !yield(address, value) {
				return
			}
		}
	}
}
