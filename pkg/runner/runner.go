package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/yaklabco/cpplongest/pkg/fsutil"
	"github.com/yaklabco/cpplongest/pkg/linescan"
)

// Run reads the whole input and scans it for its longest line.
// Input errors are returned unscanned; nothing is echoed in that case.
func Run(ctx context.Context, opts Options) (*Result, error) {
	input, err := fsutil.ReadInput(ctx, opts.Path, opts.effectiveStdin())
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	start := time.Now()
	scan := linescan.Scan(input.Content, input.Label, opts.Echo)

	return &Result{
		Scan: scan,
		Stats: Stats{
			Bytes:   input.Size,
			Lines:   scan.Lines,
			Markers: len(scan.Markers),
			Elapsed: time.Since(start),
		},
	}, nil
}
