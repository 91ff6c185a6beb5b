// Package logging carries an operation-scoped slog.Logger through
// context.Context so services can log with caller-provided fields attached.
package logging

import (
	"context"
	"log/slog"
)

// contextKey is a private key type to prevent collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the logger stored in the context, falling back to
// slog.Default when none was attached.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
