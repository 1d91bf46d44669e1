package retry

import "errors"

// Sentinel errors for the two faults this package can itself produce.
// These enable callers to distinguish fault types using errors.Is().
// Ordinary retriable and non-retriable failures are not faults: they travel
// as data inside the returned Outcome.
var (
	// ErrInvalidConfig indicates the retry configuration failed validation.
	ErrInvalidConfig = errors.New("invalid retry configuration")

	// ErrBackoffInterrupted indicates the context was cancelled while the
	// executor was suspended in a backoff wait. The retry loop is
	// abandoned; a cancelled wait never counts as elapsed.
	ErrBackoffInterrupted = errors.New("interrupted during retry backoff")
)
