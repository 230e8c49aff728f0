package linescan

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// State is the logical provenance carried from one physical line to the next.
type State struct {
	// File is the logical source file.
	File string

	// Line is the logical line number of the line being processed.
	Line int
}

// NewState returns the state for the first line of an input named label.
func NewState(label string) State {
	return State{File: label, Line: 1}
}

// ParseMarker recognizes a GNU cpp linemarker of the form
//
//	# <num> "<file>" [<flags>]
//
// and applies it to state. The following physical line becomes <file>:<num>,
// so Line is set to num-1 and the caller's per-line increment supplies the rest.
// A marker without a usable filename keeps the previous file.
//
// Every recognized marker is written verbatim, followed by a newline, to echo
// when echo is non-nil. A line that is not a marker, or whose number is absent,
// zero or out of range, leaves state untouched, is not echoed, and yields false.
func ParseMarker(line []byte, state *State, echo io.Writer) bool {
	if len(line) < 2 || line[0] != '#' || line[1] != ' ' {
		return false
	}

	rest := line[2:]
	digits := 0
	for digits < len(rest) && isDigit(rest[digits]) {
		digits++
	}
	if digits == 0 {
		return false
	}

	num, err := strconv.Atoi(string(rest[:digits]))
	if err != nil || num == 0 {
		return false
	}

	if echo != nil {
		_, _ = fmt.Fprintf(echo, "%s\n", line)
	}

	state.Line = num - 1
	if name := markerFilename(rest[digits:]); name != "" {
		state.File = name
	}

	return true
}

// markerFilename extracts the filename from the text following a marker's number.
func markerFilename(rest []byte) string {
	// One trailing flag.
	if n := len(rest); n > 2 && rest[n-2] == ' ' && isDigit(rest[n-1]) {
		rest = rest[:n-2]
	}

	for len(rest) > 1 && rest[len(rest)-1] == ' ' {
		rest = rest[:len(rest)-1]
	}
	rest = bytes.TrimLeft(rest, " ")

	if len(rest) > 0 && rest[0] == '"' {
		rest = rest[1:]
		if end := bytes.IndexByte(rest, '"'); end >= 0 {
			rest = rest[:end]
		}
	}

	for bytes.HasPrefix(rest, []byte("./")) {
		rest = rest[2:]
	}

	return string(rest)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
