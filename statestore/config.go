package statestore

import (
	"time"

	"github.com/changedi/impala/internal/logger"
	"github.com/changedi/impala/types"
)

// Config configures a Subscriber.
//
// All fields are optional; zero values are replaced by defaults via
// applyDefaults().
type Config struct {
	// SubjectPrefix prefixes the delta and update subjects
	// ("<prefix>.delta.<topic>" / "<prefix>.update.<topic>").
	SubjectPrefix string

	// PublishRetries is the number of additional attempts after a failed
	// update publish.
	PublishRetries int

	// RetryBaseDelay is the initial backoff before the first retry.
	RetryBaseDelay time.Duration

	// RetryMultiplier grows the backoff between retries.
	RetryMultiplier float64

	// RetryMaxDelay caps the backoff.
	RetryMaxDelay time.Duration

	// RetrySeed selects deterministic retry jitter when non-zero.
	// Production deployments leave it at zero.
	RetrySeed int64

	// DeliverTimeout bounds one callback invocation round.
	DeliverTimeout time.Duration

	// Logger receives feed diagnostics.
	Logger types.Logger
}

// applyDefaults fills unset optional fields with project defaults.
func (cfg *Config) applyDefaults() {
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = DefaultSubjectPrefix
	}
	if cfg.PublishRetries == 0 {
		cfg.PublishRetries = DefaultPublishRetries
	}
	if cfg.RetryBaseDelay == 0 {
		cfg.RetryBaseDelay = DefaultRetryBaseDelay
	}
	if cfg.RetryMultiplier == 0 {
		cfg.RetryMultiplier = DefaultRetryMultiplier
	}
	if cfg.RetryMaxDelay == 0 {
		cfg.RetryMaxDelay = DefaultRetryMaxDelay
	}
	if cfg.DeliverTimeout == 0 {
		cfg.DeliverTimeout = DefaultDeliverTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNop()
	}
}
