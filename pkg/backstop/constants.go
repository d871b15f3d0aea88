package backstop

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid backoff spec, profile, or parameters
	ExitCheckFailed     = 11 // A precondition check failed
	ExitRetriesExceeded = 12 // Wrapped operation failed on every attempt
)

const (
	// DefaultAttempts is the default number of retry delays produced by a
	// backoff spec when the caller does not say otherwise.
	DefaultAttempts = 3

	// DefaultFirstDelay is the default delay before the first retry attempt.
	DefaultFirstDelay = 100 * time.Millisecond

	// DefaultMaxDelay is the default ceiling on any single delay.
	DefaultMaxDelay = 30 * time.Second

	// DefaultFactor is the default multiplier applied to each delay step.
	DefaultFactor = 2.0

	// DefaultJitter is the default fraction of randomness mixed into each
	// delay (0.1 = +/- 10%).
	DefaultJitter = 0.1
)
