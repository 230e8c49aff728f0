package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/cpplongest/internal/ui/pretty"
	"github.com/yaklabco/cpplongest/pkg/runner"
)

// TextReporter writes the two-line longest-line summary:
//
//	Longest line is <file>:<line> (<length>)
//	   '<content>'
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	longest := result.Longest()
	content, _ := DisplayContent(longest)

	fmt.Fprintf(r.bw, "%s %s (%s)\n",
		r.styles.Render(r.styles.Heading, "Longest line is"),
		r.styles.Render(r.styles.Location, fmt.Sprintf("%s:%d", longest.File, longest.Line)),
		r.styles.Render(r.styles.Size, FormatLength(longest.Length)),
	)
	fmt.Fprintf(r.bw, "   '%s'\n", r.styles.Render(r.styles.Content, content))

	return nil
}
