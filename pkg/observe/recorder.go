package observe

import (
	"sync"

	"github.com/vvka-141/funcretry/pkg/retry"
)

// Event is one recorded handler invocation.
type Event[E, R any] struct {
	Category retry.Category
	Attempt  retry.Attempt[E, R]
}

// Recorder collects the classified attempts of an execution in order. The
// executor itself does not retain attempt history; a Recorder wired into
// the handlers is how callers obtain it.
//
// Safe for concurrent use, so one Recorder may be shared across executions
// when an interleaved history is acceptable.
type Recorder[E, R any] struct {
	mu     sync.Mutex
	events []Event[E, R]
}

// NewRecorder creates an empty Recorder.
func NewRecorder[E, R any]() *Recorder[E, R] {
	return &Recorder[E, R]{}
}

// Handlers returns a handler set that appends every invocation to the
// recorder.
func (r *Recorder[E, R]) Handlers() retry.Handlers[E, R] {
	return retry.Handlers[E, R]{
		OnSuccess:            r.record(retry.CategorySuccess),
		OnRetriableError:     r.record(retry.CategoryRetriableFailure),
		OnNonRetriableError:  r.record(retry.CategoryNonRetriableFailure),
		OnMaxAttemptsReached: r.record(retry.CategoryAttemptsExhausted),
	}
}

func (r *Recorder[E, R]) record(category retry.Category) func(retry.Attempt[E, R]) {
	return func(attempt retry.Attempt[E, R]) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, Event[E, R]{Category: category, Attempt: attempt})
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder[E, R]) Events() []Event[E, R] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event[E, R], len(r.events))
	copy(out, r.events)
	return out
}

// Categories returns just the category sequence, convenient in assertions.
func (r *Recorder[E, R]) Categories() []retry.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]retry.Category, len(r.events))
	for i, e := range r.events {
		out[i] = e.Category
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder[E, R]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
