package reporter

import (
	"strconv"

	"github.com/yaklabco/cpplongest/pkg/linescan"
)

const (
	// Lines longer than truncateAbove are shown as their first truncateKeep
	// bytes followed by ellipsis.
	truncateAbove = 104
	truncateKeep  = 100
	ellipsis      = "..."

	// Lengths above kilobyteAbove are shown in rounded kilobytes.
	kilobyteAbove = 10 * 1024
	kilobyte      = 1024
)

// DisplayContent returns the line as it is shown to the user and whether it
// was shortened. Only the display is affected; the record keeps its length.
func DisplayContent(rec linescan.Record) (string, bool) {
	if rec.Length > truncateAbove && len(rec.Content) >= truncateKeep {
		return string(rec.Content[:truncateKeep]) + ellipsis, true
	}
	return string(rec.Content), false
}

// FormatLength renders a byte length as "<n> bytes", or as rounded kilobytes
// ("<n>kB") once it exceeds 10 KiB.
func FormatLength(length int) string {
	if length > kilobyteAbove {
		return strconv.Itoa((length+kilobyte/2)/kilobyte) + "kB"
	}
	return strconv.Itoa(length) + " bytes"
}
