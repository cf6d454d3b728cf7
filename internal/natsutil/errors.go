// Package natsutil provides NATS error classification helpers.
package natsutil

import (
	"errors"
	"strings"

	"github.com/nats-io/nats.go"
)

// IsConnectivityError checks if an error is caused by connectivity issues.
//
// This includes NATS timeouts, connection refused, disconnections, etc.
// The feed retries publishes only on these; permanent errors (bad subject,
// oversized payload) fail immediately.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if error indicates a connectivity issue
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, nats.ErrTimeout) ||
		errors.Is(err, nats.ErrNoServers) ||
		errors.Is(err, nats.ErrDisconnected) ||
		errors.Is(err, nats.ErrConnectionClosed) ||
		errors.Is(err, nats.ErrReconnectBufExceeded) ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "i/o timeout")
}
