package linescan

import "io"

// Marker is a recognized linemarker as it appeared in the input.
type Marker struct {
	// Line is the 1-based physical line index of the marker.
	Line int

	// Text is the raw marker line without its newline.
	Text string
}

// Result is the outcome of scanning one input.
type Result struct {
	// Input is the label the scan started with.
	Input string

	// Lines is the number of physical lines scanned.
	Lines int

	// Markers lists recognized linemarkers in encounter order.
	Markers []Marker

	// Longest is the longest non-marker line.
	Longest Record
}

// Scan walks buf line by line, following linemarkers, and returns the longest
// line with its logical provenance. Recognized markers are echoed to echo as
// they are parsed; pass nil to suppress the echo.
//
// Markers only update provenance and never compete for longest. The logical
// line counter advances by one after every physical line, marker or not, so a
// marker numbered n makes the line after it n.
func Scan(buf []byte, label string, echo io.Writer) *Result {
	result := &Result{Input: label}

	var tracker Tracker
	state := NewState(label)
	lines := NewLines(buf)

	for line, ok := lines.Next(); ok; line, ok = lines.Next() {
		result.Lines++
		content := line.Content(buf)

		if ParseMarker(content, &state, echo) {
			result.Markers = append(result.Markers, Marker{
				Line: result.Lines,
				Text: string(content),
			})
		} else {
			tracker.Observe(content, state)
		}

		state.Line++
	}

	result.Longest = tracker.Longest()
	return result
}
