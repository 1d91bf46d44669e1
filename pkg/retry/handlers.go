package retry

// Handlers holds the optional observer callbacks, one per attempt category.
// A nil callback is simply skipped. The matching callback is invoked
// synchronously, at most once per attempt, and never concurrently with
// another callback of the same execution.
//
// Callbacks are dispatched unguarded: a panic inside a handler propagates
// out of Execute and aborts the retry loop at that point.
type Handlers[E, R any] struct {
	// OnSuccess receives the attempt that produced a success outcome.
	OnSuccess func(Attempt[E, R])

	// OnRetriableError receives a failed attempt that will be retried
	// after the configured backoff.
	OnRetriableError func(Attempt[E, R])

	// OnNonRetriableError receives a failed attempt whose failure the
	// retry predicate rejected. No further attempts follow.
	OnNonRetriableError func(Attempt[E, R])

	// OnMaxAttemptsReached receives the final failed attempt when the
	// attempt budget is spent on a retriable failure.
	OnMaxAttemptsReached func(Attempt[E, R])
}
