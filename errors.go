package impala

import (
	"errors"

	"github.com/changedi/impala/types"
)

// Sentinel errors returned by the Scheduler. The membership-path errors live
// in the types subpackage and are re-exported here; construction errors are
// local to this package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrNoBackendsAvailable is returned by assignment when no backends are
	// known.
	ErrNoBackendsAvailable = types.ErrNoBackendsAvailable

	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = types.ErrAlreadyInitialized

	// ErrDeltaUnsupported indicates a rejected incremental membership round.
	ErrDeltaUnsupported = types.ErrDeltaUnsupported

	// ErrInvalidAddress is returned by ParseBackendAddress for malformed
	// "host:port" strings.
	ErrInvalidAddress = types.ErrInvalidAddress

	// ErrMembershipFeedRequired is returned when the membership feed is nil.
	ErrMembershipFeedRequired = errors.New("membership feed is required")

	// ErrClusterSourceRequired is returned when the cluster source is nil.
	ErrClusterSourceRequired = errors.New("cluster source is required")
)
