package retry

import (
	"context"
	"fmt"
	"time"
)

// Operation produces the outcome of one attempt. The executor applies no
// per-call timeout; operations are expected to return promptly.
type Operation[E, R any] func() Outcome[E, R]

// Executor runs an operation under a retry policy.
//
// An Executor is immutable and safe for concurrent use: every Execute call
// owns its own attempt counter and only reads the shared configuration.
type Executor[E, R any] struct {
	cfg *Config[E, R]
}

// NewExecutor creates an executor for the given validated configuration.
// Panics if cfg is nil.
func NewExecutor[E, R any](cfg *Config[E, R]) *Executor[E, R] {
	if cfg == nil {
		panic("retry: config cannot be nil")
	}
	return &Executor[E, R]{cfg: cfg}
}

// Execute invokes op until it succeeds, fails non-retriably, or the attempt
// budget is exhausted, sleeping for the configured backoff between
// retriable attempts. Each attempt is classified, and the matching handler
// (if any) is invoked synchronously before the loop proceeds.
//
// The final outcome, success or last failure, is returned as data. The
// error is non-nil only for a cancellation fault: ctx was cancelled during
// a backoff wait, abandoning the loop. In that case the returned outcome
// holds the failure that preceded the wait.
func (e *Executor[E, R]) Execute(ctx context.Context, op Operation[E, R]) (Outcome[E, R], error) {
	cfg := e.cfg
	for nr := 1; ; nr++ {
		attempt := Attempt[E, R]{Nr: nr, Outcome: op()}

		switch Classify(attempt, cfg.maxAttempts, cfg.retryIf) {
		case CategorySuccess:
			dispatch(cfg.handlers.OnSuccess, attempt)
			return attempt.Outcome, nil

		case CategoryNonRetriableFailure:
			dispatch(cfg.handlers.OnNonRetriableError, attempt)
			return attempt.Outcome, nil

		case CategoryAttemptsExhausted:
			dispatch(cfg.handlers.OnMaxAttemptsReached, attempt)
			return attempt.Outcome, nil

		case CategoryRetriableFailure:
			dispatch(cfg.handlers.OnRetriableError, attempt)
			if err := sleep(ctx, cfg.backoff(nr)); err != nil {
				return attempt.Outcome, err
			}
		}
	}
}

func dispatch[E, R any](handler func(Attempt[E, R]), attempt Attempt[E, R]) {
	if handler != nil {
		handler(attempt)
	}
}

// sleep waits for the backoff delay, honoring context cancellation. A
// cancelled wait never counts as elapsed.
func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrBackoffInterrupted, err)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrBackoffInterrupted, ctx.Err())
	case <-timer.C:
		return nil
	}
}
