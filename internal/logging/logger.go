// Package logging defines the minimal structured-logging interface used
// across the project, so packages do not depend on a concrete backend.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// interpreted as alternating key-value pairs:
//
//	log.Warn(ctx, "store unreadable", "path", path)
type Logger interface {
	// Debug logs fine-grained diagnostic details.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs normal operational events.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but recovered conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
