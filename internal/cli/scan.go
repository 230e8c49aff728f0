package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cpplongest/internal/logging"
	"github.com/yaklabco/cpplongest/internal/ui/pretty"
	"github.com/yaklabco/cpplongest/pkg/fsutil"
	"github.com/yaklabco/cpplongest/pkg/reporter"
	"github.com/yaklabco/cpplongest/pkg/runner"
)

// errStdinNotFile is returned when the command's input is not backed by a file
// and so cannot be checked for being a regular file.
var errStdinNotFile = fmt.Errorf("%w: %s", fsutil.ErrNotRegular, fsutil.StdinLabel)

// outputBufferSize is the size of the stdout buffer shared by the marker echo
// and the report.
const outputBufferSize = 64 * 1024

func runScan(cmd *cobra.Command, args []string, flags *rootFlags) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Validate the format before any input is read or echoed.
	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	color, err := pretty.ParseColorMode(flags.color)
	if err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}

	opts := runner.Options{}
	if len(args) == 1 {
		opts.Path = args[0]
	} else {
		stdin, ok := cmd.InOrStdin().(*os.File)
		if !ok {
			return errStdinNotFile
		}
		opts.Stdin = stdin
	}

	// Color detection needs the real stdout, not the buffer wrapping it.
	reportColor := pretty.ColorNever
	if pretty.IsColorEnabled(color, cmd.OutOrStdout()) {
		reportColor = pretty.ColorAlways
	}

	out := bufio.NewWriterSize(cmd.OutOrStdout(), outputBufferSize)
	defer func() {
		if flushErr := out.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("write output: %w", flushErr)
		}
	}()

	if format.EchoesMarkers() {
		opts.Echo = out
	}

	logger.Debug("starting scan",
		logging.FieldPath, opts.Path,
		logging.FieldFormat, format,
		logging.FieldColor, color,
	)

	result, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}

	longest := result.Longest()
	logger.Debug("scan complete",
		logging.FieldInput, result.Scan.Input,
		logging.FieldBytes, result.Stats.Bytes,
		logging.FieldLines, result.Stats.Lines,
		logging.FieldMarkers, result.Stats.Markers,
		logging.FieldElapsed, result.Stats.Elapsed,
	)
	logger.Debug("longest line",
		logging.FieldFile, longest.File,
		logging.FieldLine, longest.Line,
		logging.FieldLength, longest.Length,
	)

	rep, err := reporter.New(reporter.Options{
		Writer: out,
		Format: format,
		Color:  reportColor,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
