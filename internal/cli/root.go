// Package cli provides the Cobra command structure for cpplongest.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cpplongest/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type rootFlags struct {
	debug  bool
	format string
	color  string
}

// NewRootCommand creates the cpplongest command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "cpplongest [path]",
		Short: "Find the longest line in preprocessed C output",
		Long: `cpplongest scans the output of a C preprocessor pass and reports its longest
line, attributed to the original source file and line through the linemarkers
(# <num> "<file>" <flags>) the preprocessor emits.

Use it to find macros whose expansion bloats a translation unit. Every
linemarker is echoed as it is read, then the longest line is printed. Without a
path, standard input is read; it must be redirected from a regular file.`,
		Example: `  gcc -E drivers/net/foo.c -o foo.i && cpplongest foo.i
  cpplongest < foo.i
  cpplongest --format json foo.i`,
		Version: info.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if flags.debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			logger.Debug("cpplongest",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	rootCmd.Flags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetVersionTemplate(versionTemplate(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// Execute runs cmd and converts any failure into a one-line
// "Fatal: <reason>" diagnostic on stderr. It returns the process exit code.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		logging.FromContext(cmd.Context()).Debug("command failed", logging.FieldError, err)
		fmt.Fprintf(stderr, "Fatal: %v\n", err)
		return ExitFatal
	}

	return ExitSuccess
}
