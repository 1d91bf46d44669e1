package retry

import (
	"math"
	"time"
)

// DefaultBase is the exponent base used when no multiplier is configured.
const DefaultBase = 2.0

// CappedExponential returns a backoff function implementing
//
//	delay(n) = min(initial * base^(n-1), max)
//
// where n is the 1-indexed number of the attempt that just failed, so the
// delay before the first retry is exactly initial. The exponential is
// computed in floating point and capped before conversion, so large attempt
// numbers saturate at max instead of overflowing. No jitter is applied.
func CappedExponential(initial time.Duration, base float64, max time.Duration) BackoffFunc {
	return func(attemptNr int) time.Duration {
		d := float64(initial) * math.Pow(base, float64(attemptNr-1))
		if d > float64(max) {
			return max
		}
		if d < 0 {
			return 0
		}
		return time.Duration(d)
	}
}

// CappedExponentialDefault is CappedExponential with the base fixed at
// DefaultBase.
func CappedExponentialDefault(initial, max time.Duration) BackoffFunc {
	return CappedExponential(initial, DefaultBase, max)
}

// Fixed returns a backoff function with a constant delay irrespective of
// the attempt number.
func Fixed(d time.Duration) BackoffFunc {
	return func(int) time.Duration { return d }
}
