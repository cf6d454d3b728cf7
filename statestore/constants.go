package statestore

import "time"

// Default tuning values applied by Config.applyDefaults.
const (
	// DefaultSubjectPrefix prefixes all feed subjects.
	DefaultSubjectPrefix = "statestore"

	// DefaultPublishRetries bounds re-publish attempts for callback updates.
	DefaultPublishRetries = 3

	// DefaultRetryBaseDelay is the initial publish retry backoff.
	DefaultRetryBaseDelay = 50 * time.Millisecond

	// DefaultRetryMultiplier grows the backoff between publish retries.
	DefaultRetryMultiplier = 2.0

	// DefaultRetryMaxDelay caps the publish retry backoff.
	DefaultRetryMaxDelay = 2 * time.Second

	// DefaultDeliverTimeout bounds one callback round, including hostname
	// resolution performed by the scheduler.
	DefaultDeliverTimeout = 5 * time.Second
)
