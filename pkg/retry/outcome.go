package retry

// Outcome is the two-variant result of a single attempt: a success carrying
// a value of type R, or a failure carrying a domain failure of type E.
// Exactly one variant holds. Outcomes are immutable values; copy freely.
type Outcome[E, R any] struct {
	ok    bool
	value R
	err   E
}

// Success returns an Outcome holding the given result value.
func Success[E, R any](value R) Outcome[E, R] {
	return Outcome[E, R]{ok: true, value: value}
}

// Failure returns an Outcome holding the given domain failure.
func Failure[E, R any](err E) Outcome[E, R] {
	return Outcome[E, R]{err: err}
}

// IsSuccess reports whether the outcome holds a success value.
func (o Outcome[E, R]) IsSuccess() bool {
	return o.ok
}

// Value returns the success value, or the zero value of R for a failure.
func (o Outcome[E, R]) Value() R {
	return o.value
}

// Err returns the domain failure, or the zero value of E for a success.
func (o Outcome[E, R]) Err() E {
	return o.err
}
