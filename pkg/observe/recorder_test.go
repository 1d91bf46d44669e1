package observe

import (
	"context"
	"testing"
	"time"

	"github.com/vvka-141/funcretry/pkg/retry"
)

type flakyErr struct {
	retriable bool
}

func (e *flakyErr) Error() string { return "flaky" }

func run(t *testing.T, maxAttempts int, handlers retry.Handlers[*flakyErr, int], responses []retry.Outcome[*flakyErr, int]) retry.Outcome[*flakyErr, int] {
	t.Helper()
	cfg, err := retry.NewConfig(
		maxAttempts,
		retry.Fixed(time.Millisecond),
		func(e *flakyErr) bool { return e.retriable },
		handlers,
	)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	i := 0
	outcome, err := retry.NewExecutor(cfg).Execute(context.Background(), func() retry.Outcome[*flakyErr, int] {
		out := responses[i]
		i++
		return out
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	return outcome
}

func TestRecorder_SuccessAfterRetries(t *testing.T) {
	rec := NewRecorder[*flakyErr, int]()

	transient := retry.Failure[*flakyErr, int](&flakyErr{retriable: true})
	outcome := run(t, 3, rec.Handlers(), []retry.Outcome[*flakyErr, int]{
		transient,
		transient,
		retry.Success[*flakyErr](42),
	})

	if !outcome.IsSuccess() || outcome.Value() != 42 {
		t.Fatalf("Expected success 42, got %+v", outcome)
	}

	want := []retry.Category{
		retry.CategoryRetriableFailure,
		retry.CategoryRetriableFailure,
		retry.CategorySuccess,
	}
	got := rec.Categories()
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: got %v, want %v", i, got[i], want[i])
		}
	}

	events := rec.Events()
	for i, e := range events {
		if e.Attempt.Nr != i+1 {
			t.Errorf("Event %d: attempt number %d, want %d", i, e.Attempt.Nr, i+1)
		}
	}
}

func TestRecorder_AttemptsExhausted(t *testing.T) {
	rec := NewRecorder[*flakyErr, int]()

	transient := retry.Failure[*flakyErr, int](&flakyErr{retriable: true})
	outcome := run(t, 2, rec.Handlers(), []retry.Outcome[*flakyErr, int]{
		transient,
		transient,
	})

	if outcome.IsSuccess() {
		t.Fatal("Expected failure outcome")
	}

	got := rec.Categories()
	want := []retry.Category{retry.CategoryRetriableFailure, retry.CategoryAttemptsExhausted}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestRecorder_Reset(t *testing.T) {
	rec := NewRecorder[*flakyErr, int]()

	run(t, 1, rec.Handlers(), []retry.Outcome[*flakyErr, int]{
		retry.Success[*flakyErr](1),
	})
	if len(rec.Events()) != 1 {
		t.Fatalf("Expected 1 event before reset, got %d", len(rec.Events()))
	}

	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Errorf("Expected no events after reset, got %d", len(rec.Events()))
	}
}
