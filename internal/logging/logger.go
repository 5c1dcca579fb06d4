// Package logging defines the minimal structured-logging interface used by
// the PhotoHub server. The only implementation wraps log/slog, but handlers
// and services depend on the interface so the backend can be swapped.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// interpreted as key–value pairs:
//
//	log.Info(ctx, "starting server", "addr", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
