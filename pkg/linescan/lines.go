// Package linescan finds the longest physical line in preprocessed C output
// and attributes it to a logical file and line through linemarker directives.
package linescan

import "bytes"

// Line is the span of one physical line within a buffer.
type Line struct {
	// Offset is the byte offset of the first byte of the line.
	Offset int

	// Len is the number of content bytes. The newline is not included.
	Len int
}

// Content returns the line's bytes without the terminating newline.
// The returned slice aliases buf and has no spare capacity.
func (l Line) Content(buf []byte) []byte {
	end := l.Offset + l.Len
	return buf[l.Offset:end:end]
}

// Lines splits a buffer into physical lines on demand.
// The buffer is never modified.
type Lines struct {
	buf    []byte
	offset int
}

// NewLines returns a splitter positioned at the start of buf.
func NewLines(buf []byte) *Lines {
	return &Lines{buf: buf}
}

// Next consumes the next line up to and including its newline.
// Trailing bytes without a newline form the final line.
// It returns false once the buffer is exhausted.
func (l *Lines) Next() (Line, bool) {
	if l.offset >= len(l.buf) {
		return Line{}, false
	}

	start := l.offset
	idx := bytes.IndexByte(l.buf[start:], '\n')
	if idx < 0 {
		l.offset = len(l.buf)
		return Line{Offset: start, Len: len(l.buf) - start}, true
	}

	l.offset = start + idx + 1
	return Line{Offset: start, Len: idx}, true
}

// Reset rewinds the splitter to the start of the buffer.
func (l *Lines) Reset() {
	l.offset = 0
}
