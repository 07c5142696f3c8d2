package dispatcher

import "fmt"

// Status describes the outcome of handling a key event.
type Status uint8

const (
	// StatusOK means the action was handled.
	StatusOK Status = iota

	// StatusNoOp means the event was unmapped or the action chose to do
	// nothing; state is unchanged.
	StatusNoOp

	// StatusError means the handler failed. Err carries the cause.
	StatusError
)

// Result is what a handler returns. Handler failures surface here; they
// never panic and never abort the event loop.
type Result struct {
	Status  Status
	Err     error
	Message string
	Quit    bool
}

// Success returns an OK result.
func Success() Result {
	return Result{Status: StatusOK}
}

// NoOp returns a no-op result.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// Errorf returns an error result with a formatted cause.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Err: fmt.Errorf(format, args...)}
}

// WithMessage attaches a statusline message to the result.
func (r Result) WithMessage(format string, args ...any) Result {
	r.Message = fmt.Sprintf(format, args...)
	return r
}

// IsError returns true for error results.
func (r Result) IsError() bool {
	return r.Status == StatusError
}
