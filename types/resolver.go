package types

import "context"

// HostResolver maps a host identifier to one or more IP address strings.
//
// Resolution is an external collaborator: implementations may consult DNS,
// /etc/hosts, or a static table. A resolver must never be assumed to return
// a non-loopback address; the membership path handles loopback-only results
// as a degraded mode rather than an error.
type HostResolver interface {
	// LookupHost resolves hostname to its IP addresses.
	//
	// Returns:
	//   - []string: One or more IP address strings, in resolver order
	//   - error: Non-nil when the hostname cannot be resolved
	LookupHost(ctx context.Context, hostname string) ([]string, error)
}
