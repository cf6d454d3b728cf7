package types

// AddressCodec is the externally defined, versionless serialization of a
// BackendAddress used for membership topic values.
//
// Decode failures are tolerated per-entry by the membership path (the entry
// is skipped); encode failures on self-announcement are tolerated by
// dropping that publish.
type AddressCodec interface {
	// Encode serializes addr into the wire form.
	Encode(addr BackendAddress) ([]byte, error)

	// Decode deserializes the wire form into a BackendAddress.
	Decode(value []byte) (BackendAddress, error)
}
