package cli

// Exit codes for cpplongest.
const (
	// ExitSuccess indicates the scan completed and the report was written.
	ExitSuccess = 0

	// ExitFatal indicates any fatal error: unreadable or non-regular input,
	// a short read, invalid usage, or a failed write.
	ExitFatal = 1
)
