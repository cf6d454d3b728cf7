package types

import "context"

// ClusterSource provides a description of the cluster's backends when no
// live membership feed exists (static/offline deployments).
type ClusterSource interface {
	// ListBackends returns the configured backends.
	//
	// Returns:
	//   - []BackendAddress: Backends, possibly several per host
	//   - error: Non-nil when the source cannot produce a listing
	ListBackends(ctx context.Context) ([]BackendAddress, error)
}
