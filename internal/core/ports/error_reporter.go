package ports

import "context"

// ErrorReporter records operational failures for later inspection. Calls are
// fire-and-forget: implementations must never fail the caller.
type ErrorReporter interface {
	RecordError(ctx context.Context, errorType, message string, details map[string]string)
}
