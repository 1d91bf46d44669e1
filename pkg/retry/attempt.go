package retry

// Attempt is one execution of the retried operation, tagged with its
// 1-indexed ordinal and the outcome it produced. The executor constructs a
// fresh Attempt each iteration, passes it to the matching handler by value,
// and does not retain it afterwards.
type Attempt[E, R any] struct {
	// Nr is the attempt number. The first attempt is 1, and it increases
	// by exactly one per loop iteration.
	Nr int

	// Outcome is the result the operation produced on this attempt.
	Outcome Outcome[E, R]
}
