package types

import "errors"

// Sentinel errors for the scheduler library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap external errors with context using
// fmt.Errorf("...: %w", err).

// Scheduler errors - public API errors returned by the Scheduler.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoBackendsAvailable is returned by assignment when the membership
	// view is empty. This is the only membership-path condition surfaced to
	// callers as a hard failure.
	ErrNoBackendsAvailable = errors.New("no backends available")

	// ErrAlreadyInitialized is returned when Init is called twice.
	ErrAlreadyInitialized = errors.New("scheduler already initialized")

	// ErrInvalidAddress is returned when a configured backend address
	// cannot be parsed.
	ErrInvalidAddress = errors.New("invalid backend address")
)

// Membership errors - recovered locally during membership processing and
// never propagated across the module boundary; exported for wrapping and
// for tests.
var (
	// ErrDeltaUnsupported indicates an incremental membership round was
	// received. The whole round is ignored.
	ErrDeltaUnsupported = errors.New("delta membership updates are not supported")

	// ErrAddressDecode indicates a membership entry's value could not be
	// decoded into a BackendAddress. The entry is skipped.
	ErrAddressDecode = errors.New("failed to decode backend address")

	// ErrAddressEncode indicates the local backend address could not be
	// serialized for self-announcement. The announcement is dropped and
	// retried implicitly on the next snapshot.
	ErrAddressEncode = errors.New("failed to encode backend address")

	// ErrHostResolution indicates a backend hostname could not be resolved.
	// The entry is skipped.
	ErrHostResolution = errors.New("failed to resolve hostname")
)
