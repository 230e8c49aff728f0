package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/cpplongest/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string       `json:"version"`
	Input   string       `json:"input"`
	Lines   int          `json:"lines"`
	Bytes   int64        `json:"bytes"`
	Markers []JSONMarker `json:"markers"`
	Longest JSONLongest  `json:"longest"`
}

// JSONMarker represents one recognized linemarker.
type JSONMarker struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// JSONLongest represents the longest line.
type JSONLongest struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Length    int    `json:"length"`
	Display   string `json:"display"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	longest := result.Longest()
	content, truncated := DisplayContent(longest)

	output := &JSONOutput{
		Version: "1.0.0",
		Markers: make([]JSONMarker, 0),
		Longest: JSONLongest{
			File:      longest.File,
			Line:      longest.Line,
			Length:    longest.Length,
			Display:   FormatLength(longest.Length),
			Content:   content,
			Truncated: truncated,
		},
	}

	if result == nil || result.Scan == nil {
		return output
	}

	output.Input = result.Scan.Input
	output.Lines = result.Scan.Lines
	output.Bytes = result.Stats.Bytes

	if len(result.Scan.Markers) > 0 {
		output.Markers = make([]JSONMarker, 0, len(result.Scan.Markers))
	}
	for _, marker := range result.Scan.Markers {
		output.Markers = append(output.Markers, JSONMarker{
			Line: marker.Line,
			Text: marker.Text,
		})
	}

	return output
}
