package types

import (
	"fmt"
	"strconv"
	"strings"
)

// BackendAddress identifies one running worker process by network endpoint.
//
// A backend address is immutable once observed within a membership round.
// Multiple backends may legitimately share one host (e.g. several processes
// on a single machine during testing); they are distinguished by port.
type BackendAddress struct {
	// Hostname is the host identifier. Depending on where the address was
	// produced it may be a DNS name or an already-resolved IP string.
	Hostname string `json:"hostname"`

	// Port is the backend's listening port.
	Port int `json:"port"`
}

// String returns the canonical "host:port" form of the address.
func (a BackendAddress) String() string {
	return fmt.Sprintf("%s:%d", a.Hostname, a.Port)
}

// Equal reports whether two addresses refer to the same endpoint.
func (a BackendAddress) Equal(b BackendAddress) bool {
	return a.Hostname == b.Hostname && a.Port == b.Port
}

// ParseBackendAddress parses a "host:port" string into a BackendAddress.
//
// Used for static cluster descriptions where backends are configured as
// plain strings.
//
// Parameters:
//   - s: Address in "host:port" form
//
// Returns:
//   - BackendAddress: Parsed address
//   - error: ErrInvalidAddress if the string is not "host:port" with a valid port
func ParseBackendAddress(s string) (BackendAddress, error) {
	idx := strings.LastIndexByte(s, ':')
	if idx <= 0 || idx == len(s)-1 {
		return BackendAddress{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}

	port, err := strconv.Atoi(s[idx+1:])
	if err != nil || port < 1 || port > 65535 {
		return BackendAddress{}, fmt.Errorf("%w: %q has invalid port", ErrInvalidAddress, s)
	}

	return BackendAddress{Hostname: s[:idx], Port: port}, nil
}
