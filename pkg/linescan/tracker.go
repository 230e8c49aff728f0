package linescan

// Record describes the longest line seen so far.
type Record struct {
	// Length is the line length in bytes, newline excluded.
	Length int

	// Content is the line itself. It aliases the scanned buffer.
	Content []byte

	// File and Line are the logical provenance at the time the line was seen.
	File string
	Line int
}

// Tracker keeps the longest line observed. The first of several equally long
// lines wins.
type Tracker struct {
	longest Record
	seen    bool
}

// Observe offers a line with its current provenance.
// It reports whether the line replaced the record. The first line observed
// always becomes the record, even when it is empty.
func (t *Tracker) Observe(content []byte, state State) bool {
	if t.seen && len(content) <= t.longest.Length {
		return false
	}

	t.seen = true
	t.longest = Record{
		Length:  len(content),
		Content: content,
		File:    state.File,
		Line:    state.Line,
	}

	return true
}

// Longest returns the current record. It is the zero Record until a line
// has been observed.
func (t *Tracker) Longest() Record {
	return t.longest
}
