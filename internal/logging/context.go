package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey is the context key under which a command's logger is stored.
type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger. The root command attaches
// a logger configured from its flags so everything below it logs the same way.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or the default logger when
// ctx is nil or carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
