// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldFormat = "format"
	FieldColor  = "color"

	// Scan statistics fields.
	FieldBytes   = "bytes"
	FieldLines   = "lines"
	FieldMarkers = "markers"
	FieldLength  = "length"
	FieldFile    = "file"
	FieldLine    = "line"
	FieldElapsed = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
