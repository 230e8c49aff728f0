// Package main is the entry point for the cpplongest CLI.
package main

import (
	"os"

	"github.com/yaklabco/cpplongest/internal/cli"
)

// Build-time variables set by ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	return cli.Execute(cli.NewRootCommand(info), os.Stderr)
}
