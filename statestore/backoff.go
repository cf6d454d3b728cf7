package statestore

import (
	rand "math/rand/v2"
	"time"
)

// retryBackoff produces jittered, exponentially growing delays between
// publish retries (full-jitter variant, capped).
//
// Not safe for concurrent use; each retry loop owns one instance.
type retryBackoff struct {
	base time.Duration
	mult float64
	cap  time.Duration
	rng  *rand.Rand // nil selects the package-level PRNG

	prev time.Duration
}

// newRetryBackoff creates a backoff sequence from the Config tuning fields.
// A non-zero seed makes the jitter deterministic for tests.
func newRetryBackoff(base time.Duration, mult float64, capDur time.Duration, seed int64) *retryBackoff {
	if base <= 0 {
		base = DefaultRetryBaseDelay
	}
	if mult < 1.0 {
		mult = 1.0
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)) //nolint:gosec // non-crypto jitter
	}

	return &retryBackoff{base: base, mult: mult, cap: capDur, rng: rng}
}

// next returns the delay to sleep before the upcoming retry attempt.
func (b *retryBackoff) next() time.Duration {
	if b.cap > 0 && b.cap < b.base {
		b.prev = b.cap

		return b.prev
	}

	if b.prev <= 0 {
		b.prev = b.base

		return b.prev
	}

	span := time.Duration(float64(b.prev)*b.mult) - b.base
	if span <= 0 {
		span = b.base
	}

	var jitter int64
	if b.rng != nil {
		jitter = b.rng.Int64N(int64(span))
	} else {
		jitter = rand.Int64N(int64(span)) //nolint:gosec // non-crypto jitter
	}

	delay := b.base + time.Duration(jitter)
	if b.cap > 0 && delay > b.cap {
		delay = b.cap
	}
	b.prev = delay

	return delay
}
