package observe

import (
	"github.com/google/uuid"

	"github.com/vvka-141/funcretry/pkg/logging"
	"github.com/vvka-141/funcretry/pkg/retry"
)

// CorrelationIDLength is the number of leading UUID characters used as the
// per-handler-set correlation id. The id is a readability aid for
// interleaved log lines, not a collision-proof identifier.
const CorrelationIDLength = 8

// LoggingHandlers returns a handler set that logs every classified attempt
// through log. Lines produced by the same handler set share a short
// correlation id, so interleaved executions can be told apart.
//
// Retriable failures are logged at verbose level; terminal failures at
// error level.
func LoggingHandlers[E, R any](log logging.Logger) retry.Handlers[E, R] {
	id := uuid.NewString()[:CorrelationIDLength]

	return retry.Handlers[E, R]{
		OnSuccess: func(a retry.Attempt[E, R]) {
			log.Info("[%s] attempt %d succeeded", id, a.Nr)
		},
		OnRetriableError: func(a retry.Attempt[E, R]) {
			log.Verbose("[%s] attempt %d failed, will retry: %v", id, a.Nr, a.Outcome.Err())
		},
		OnNonRetriableError: func(a retry.Attempt[E, R]) {
			log.Error("[%s] attempt %d failed permanently: %v", id, a.Nr, a.Outcome.Err())
		},
		OnMaxAttemptsReached: func(a retry.Attempt[E, R]) {
			log.Error("[%s] giving up after %d attempts: %v", id, a.Nr, a.Outcome.Err())
		},
	}
}
