// Package runner orchestrates a single longest-line scan: read, then scan.
package runner

import (
	"io"
	"os"
)

// Options controls a scan run.
type Options struct {
	// Path is the input file. Empty means standard input.
	Path string

	// Stdin is the file read when Path is empty.
	// Defaults to os.Stdin.
	Stdin *os.File

	// Echo receives every recognized linemarker as it is parsed.
	// Nil suppresses the echo; markers are still collected in the result.
	Echo io.Writer
}

// effectiveStdin returns the stdin to use, defaulting to os.Stdin.
func (o Options) effectiveStdin() *os.File {
	if o.Stdin == nil {
		return os.Stdin
	}
	return o.Stdin
}
