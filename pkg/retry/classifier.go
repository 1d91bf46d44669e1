package retry

import "fmt"

// Category is the classification of a single attempt. Exactly one category
// applies per attempt; the terminal categories (everything except
// CategoryRetriableFailure) end the retry loop.
type Category int

const (
	// CategorySuccess: the outcome is a success. Terminal.
	CategorySuccess Category = iota

	// CategoryNonRetriableFailure: the failure was rejected by the retry
	// predicate. Terminal.
	CategoryNonRetriableFailure

	// CategoryAttemptsExhausted: the failure is retriable but the attempt
	// budget is spent. Terminal.
	CategoryAttemptsExhausted

	// CategoryRetriableFailure: the failure is retriable and attempts
	// remain. The loop continues after the backoff delay.
	CategoryRetriableFailure
)

// String returns a short lowercase name for the category.
func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	case CategoryNonRetriableFailure:
		return "non-retriable-failure"
	case CategoryAttemptsExhausted:
		return "attempts-exhausted"
	case CategoryRetriableFailure:
		return "retriable-failure"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Classify maps an attempt to its category. Evaluation order is fixed and
// first match wins: success, then the retry predicate, then the attempt
// budget. A failure the predicate rejects is therefore non-retriable even
// when it happens on the final attempt.
func Classify[E, R any](attempt Attempt[E, R], maxAttempts int, retryIf func(E) bool) Category {
	if attempt.Outcome.IsSuccess() {
		return CategorySuccess
	}
	if !retryIf(attempt.Outcome.Err()) {
		return CategoryNonRetriableFailure
	}
	if attempt.Nr >= maxAttempts {
		return CategoryAttemptsExhausted
	}
	return CategoryRetriableFailure
}
