// Package retry executes a fallible operation repeatedly until it succeeds,
// fails permanently, or runs out of attempts, with a configurable backoff
// delay between retriable attempts.
//
// The operation reports its result as an Outcome, a two-variant value that
// either carries a success value or a caller-defined domain failure. The
// executor has no opinion on failure types: a retry predicate supplied in
// the Config decides which failures are worth retrying.
//
// # Example Usage
//
//	cfg, err := retry.NewConfig(
//	    5,
//	    retry.CappedExponential(100*time.Millisecond, 2.0, 30*time.Second),
//	    func(err error) bool { return classify.Transient(err) },
//	    retry.Handlers[error, string]{},
//	)
//	if err != nil {
//	    return err
//	}
//
//	outcome, err := retry.NewExecutor(cfg).Execute(ctx, func() retry.Outcome[error, string] {
//	    body, err := fetch()
//	    if err != nil {
//	        return retry.Failure[error, string](err)
//	    }
//	    return retry.Success[error](body)
//	})
//
// # Classification
//
// Every attempt is classified into exactly one of four categories: success,
// non-retriable failure, attempts exhausted, or retriable failure. The four
// optional callbacks in Handlers mirror these categories; the matching one
// is invoked synchronously before the loop proceeds.
//
// # Outcomes Are Data
//
// Terminal domain failures are returned inside the Outcome, not as Go
// errors. Execute returns a non-nil error only when the backoff wait is
// cancelled through the context, which aborts the loop.
//
// # Thread Safety
//
// Config and Executor values are immutable after construction and safe for
// concurrent use. Each Execute call owns its own attempt counter; separate
// calls never interact.
package retry
