package retry

import (
	"fmt"
	"time"
)

// BackoffFunc returns the delay to wait after the given failed attempt
// before the next attempt starts. attemptNr is the 1-indexed number of the
// attempt that just failed.
type BackoffFunc func(attemptNr int) time.Duration

// Config is an immutable retry policy: the attempt budget, the backoff
// delay function, the predicate deciding which failures are retriable, and
// the optional observer callbacks.
//
// A Config is validated eagerly by NewConfig and never mutated afterwards,
// so a single value is safe to share across any number of concurrent
// executions.
type Config[E, R any] struct {
	maxAttempts int
	backoff     BackoffFunc
	retryIf     func(E) bool
	handlers    Handlers[E, R]
}

// NewConfig validates and builds a retry policy. It returns an error
// wrapping ErrInvalidConfig when maxAttempts is below 1 or when backoff or
// retryIf is nil; no partially valid configuration is ever produced.
func NewConfig[E, R any](
	maxAttempts int,
	backoff BackoffFunc,
	retryIf func(E) bool,
	handlers Handlers[E, R],
) (*Config[E, R], error) {
	if maxAttempts < 1 {
		return nil, fmt.Errorf("%w: maxAttempts must be >= 1, got %d", ErrInvalidConfig, maxAttempts)
	}
	if backoff == nil {
		return nil, fmt.Errorf("%w: backoff function is required", ErrInvalidConfig)
	}
	if retryIf == nil {
		return nil, fmt.Errorf("%w: retry predicate is required", ErrInvalidConfig)
	}
	return &Config[E, R]{
		maxAttempts: maxAttempts,
		backoff:     backoff,
		retryIf:     retryIf,
		handlers:    handlers,
	}, nil
}

// MaxAttempts returns the maximum number of attempts the policy allows.
func (c *Config[E, R]) MaxAttempts() int {
	return c.maxAttempts
}
