// Package wire implements the shared serialization of backend network
// addresses used as membership topic values.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/changedi/impala/types"
)

// JSONCodec encodes a BackendAddress as a compact JSON object.
//
// The encoding is versionless: every cluster participant must use the same
// codec. JSONCodec is the default; deployments with a different shared
// format supply their own types.AddressCodec.
type JSONCodec struct{}

// Compile-time assertion that JSONCodec implements AddressCodec.
var _ types.AddressCodec = (*JSONCodec)(nil)

// NewJSONCodec creates the default JSON address codec.
//
// Returns:
//   - *JSONCodec: Stateless codec, safe for concurrent use
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Encode serializes addr to JSON.
func (c *JSONCodec) Encode(addr types.BackendAddress) ([]byte, error) {
	value, err := json.Marshal(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrAddressEncode, err)
	}

	return value, nil
}

// Decode deserializes a JSON value into a BackendAddress.
//
// A syntactically valid value with a missing hostname or an out-of-range
// port is rejected, so malformed membership entries cannot introduce
// unroutable backends.
func (c *JSONCodec) Decode(value []byte) (types.BackendAddress, error) {
	var addr types.BackendAddress
	if err := json.Unmarshal(value, &addr); err != nil {
		return types.BackendAddress{}, fmt.Errorf("%w: %w", types.ErrAddressDecode, err)
	}
	if addr.Hostname == "" || addr.Port < 1 || addr.Port > 65535 {
		return types.BackendAddress{}, fmt.Errorf("%w: %q", types.ErrAddressDecode, value)
	}

	return addr, nil
}
