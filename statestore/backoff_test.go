package statestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryBackoff(t *testing.T) {
	t.Run("first delay equals base", func(t *testing.T) {
		b := newRetryBackoff(100*time.Millisecond, 2.0, time.Second, 42)
		assert.Equal(t, 100*time.Millisecond, b.next())
	})

	t.Run("delays stay within base and cap", func(t *testing.T) {
		b := newRetryBackoff(50*time.Millisecond, 2.0, 500*time.Millisecond, 42)
		for i := 0; i < 20; i++ {
			delay := b.next()
			assert.GreaterOrEqual(t, delay, 50*time.Millisecond)
			assert.LessOrEqual(t, delay, 500*time.Millisecond)
		}
	})

	t.Run("cap below base returns cap", func(t *testing.T) {
		b := newRetryBackoff(time.Second, 2.0, 100*time.Millisecond, 42)
		assert.Equal(t, 100*time.Millisecond, b.next())
	})

	t.Run("seed makes sequence deterministic", func(t *testing.T) {
		b1 := newRetryBackoff(50*time.Millisecond, 2.0, time.Second, 7)
		b2 := newRetryBackoff(50*time.Millisecond, 2.0, time.Second, 7)
		for i := 0; i < 10; i++ {
			require.Equal(t, b1.next(), b2.next())
		}
	})

	t.Run("multiplier below one does not shrink below base", func(t *testing.T) {
		b := newRetryBackoff(100*time.Millisecond, 0.5, time.Second, 42)
		for i := 0; i < 10; i++ {
			assert.GreaterOrEqual(t, b.next(), 100*time.Millisecond)
		}
	})
}
