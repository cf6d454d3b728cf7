package source

import (
	"context"
	"sync"

	"github.com/changedi/impala/types"
)

// Static implements a cluster source with a fixed list of backends.
type Static struct {
	mu       sync.RWMutex
	backends []types.BackendAddress
}

var _ types.ClusterSource = (*Static)(nil)

// NewStatic creates a new static cluster source.
//
// The source returns a fixed backend list that never changes on its own.
// Useful for testing and for offline cluster descriptions where the
// topology is known at startup.
//
// Parameters:
//   - backends: Fixed list of backends, possibly several per host
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.BackendAddress{
//	    {Hostname: "host-1", Port: 22000},
//	    {Hostname: "host-1", Port: 22001},
//	    {Hostname: "host-2", Port: 22000},
//	})
//	sched, err := impala.NewStatic(ctx, &cfg, src)
func NewStatic(backends []types.BackendAddress) *Static {
	s := &Static{}
	s.Update(backends)

	return s
}

// ListBackends returns the static backend list.
//
// Returns:
//   - []types.BackendAddress: Copy of the configured backends
//   - error: Always nil (never fails)
func (s *Static) ListBackends(_ context.Context) ([]types.BackendAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.BackendAddress, len(s.backends))
	copy(result, s.backends)

	return result, nil
}

// Update replaces the backend list.
//
// This allows the static source to simulate topology changes in tests.
//
// Parameters:
//   - backends: New list of backends
func (s *Static) Update(backends []types.BackendAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.backends = make([]types.BackendAddress, len(backends))
	copy(s.backends, backends)
}
