package backstop

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := check.Arg(expr)
//	if errors.Is(err, backstop.ErrArgument) {
//	    // Handle an invalid-argument check failure
//	}
var (
	// ErrInvalidSpec indicates a malformed backoff specification
	// (negative delays, jitter outside [0,1], and so on).
	ErrInvalidSpec = errors.New("invalid backoff spec")

	// ErrArgument indicates a precondition on a function argument failed.
	// Default kind raised by check.Arg.
	ErrArgument = errors.New("invalid argument")

	// ErrCheckFailed indicates a general precondition failed.
	// Default kind raised by check.That.
	ErrCheckFailed = errors.New("check failed")

	// ErrDimensionMismatch indicates operands of incompatible shape or size.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrUnknownProfile indicates a requested profile name has no entry in
	// the configuration file.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrRetriesExceeded wraps the final attempt's error when the CLI
	// exhausts its delay schedule.
	ErrRetriesExceeded = errors.New("retries exceeded")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidSpec), errors.Is(err, ErrUnknownProfile):
		return ExitConfigError
	case errors.Is(err, ErrArgument), errors.Is(err, ErrCheckFailed),
		errors.Is(err, ErrDimensionMismatch):
		return ExitCheckFailed
	case errors.Is(err, ErrRetriesExceeded):
		return ExitRetriesExceeded
	}

	return ExitGeneralError
}
