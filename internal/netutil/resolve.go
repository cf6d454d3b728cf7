// Package netutil provides hostname resolution helpers for the scheduler.
package netutil

import (
	"context"
	"fmt"
	"net"

	"github.com/changedi/impala/types"
)

// SystemResolver implements types.HostResolver using the process-wide
// net.DefaultResolver.
type SystemResolver struct {
	resolver *net.Resolver
}

// Compile-time assertion that SystemResolver implements HostResolver.
var _ types.HostResolver = (*SystemResolver)(nil)

// NewSystemResolver creates a resolver backed by net.DefaultResolver.
//
// Returns:
//   - *SystemResolver: Resolver using the system's DNS configuration
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{resolver: net.DefaultResolver}
}

// LookupHost resolves hostname via the system resolver.
//
// A hostname that is already an IP literal resolves to itself.
func (r *SystemResolver) LookupHost(ctx context.Context, hostname string) ([]string, error) {
	addrs, err := r.resolver.LookupHost(ctx, hostname)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrHostResolution, hostname, err)
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s: resolver returned no addresses", types.ErrHostResolution, hostname)
	}

	return addrs, nil
}

// IsLoopback reports whether addr is a loopback IP string ("127.0.0.1",
// "::1", ...). Unparseable strings are treated as non-loopback so that the
// caller prefers them over known loopback addresses.
func IsLoopback(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}

	return ip.IsLoopback()
}

// FirstNonLoopback returns the first non-loopback address from addrs.
//
// Parameters:
//   - addrs: Candidate IP address strings, in resolver order
//
// Returns:
//   - string: The first non-loopback address, or "" when none exists
//   - bool: true when a non-loopback address was found
func FirstNonLoopback(addrs []string) (string, bool) {
	for _, addr := range addrs {
		if !IsLoopback(addr) {
			return addr, true
		}
	}

	return "", false
}
