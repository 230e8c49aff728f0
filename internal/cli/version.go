package cli

import "fmt"

// versionTemplate renders --version output.
func versionTemplate(info BuildInfo) string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
}
