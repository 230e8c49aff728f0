package runner

import (
	"time"

	"github.com/yaklabco/cpplongest/pkg/linescan"
)

// Stats captures aggregate information about a run.
type Stats struct {
	// Bytes is the size of the input.
	Bytes int64

	// Lines is the number of physical lines scanned.
	Lines int

	// Markers is the number of linemarkers recognized.
	Markers int

	// Elapsed is the wall time of the scan, excluding the read.
	Elapsed time.Duration
}

// Result is the overall runner result.
type Result struct {
	// Scan is the scan outcome.
	Scan *linescan.Result

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// Longest returns the longest line record, or the zero Record for a nil result.
func (r *Result) Longest() linescan.Record {
	if r == nil || r.Scan == nil {
		return linescan.Record{}
	}
	return r.Scan.Longest
}
