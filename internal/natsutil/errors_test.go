package natsutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
)

func TestIsConnectivityError(t *testing.T) {
	assert.False(t, IsConnectivityError(nil))
	assert.False(t, IsConnectivityError(errors.New("invalid subject")))

	assert.True(t, IsConnectivityError(nats.ErrTimeout))
	assert.True(t, IsConnectivityError(nats.ErrNoServers))
	assert.True(t, IsConnectivityError(nats.ErrConnectionClosed))
	assert.True(t, IsConnectivityError(fmt.Errorf("publish: %w", nats.ErrDisconnected)))
	assert.True(t, IsConnectivityError(errors.New("dial tcp: connection refused")))
}
