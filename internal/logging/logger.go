// Package logging defines a minimal structured-logging interface used across
// the client and the reference server. The default implementation wraps slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "login succeeded", "email", email)
type Logger interface {
	// Debug logs diagnostic details that are hidden at the default level.
	Debug(ctx context.Context, msg string, args ...any)
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)
	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)
	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
