package impala

import "github.com/changedi/impala/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `impala`
// package, while still providing a convenient `impala.BackendAddress`,
// `impala.Logger`, etc. for users.
type (
	BackendAddress = types.BackendAddress
	TopicItem      = types.TopicItem
	TopicDelta     = types.TopicDelta
	TopicUpdate    = types.TopicUpdate
)

// Re-export interfaces from the internal types package for convenience.
type (
	MembershipFeed   = types.MembershipFeed
	UpdateCallback   = types.UpdateCallback
	ClusterSource    = types.ClusterSource
	AddressCodec     = types.AddressCodec
	HostResolver     = types.HostResolver
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// ParseBackendAddress parses a "host:port" string into a BackendAddress.
func ParseBackendAddress(s string) (BackendAddress, error) {
	return types.ParseBackendAddress(s)
}
