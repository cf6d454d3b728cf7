package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changedi/impala/types"
)

func TestJSONCodec_RoundTrip(t *testing.T) {
	codec := NewJSONCodec()
	addr := types.BackendAddress{Hostname: "host-1", Port: 22000}

	value, err := codec.Encode(addr)
	require.NoError(t, err)

	got, err := codec.Decode(value)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestJSONCodec_Decode(t *testing.T) {
	codec := NewJSONCodec()

	tests := []struct {
		name  string
		value []byte
	}{
		{name: "not json", value: []byte("{broken")},
		{name: "wrong shape", value: []byte(`[1,2,3]`)},
		{name: "missing hostname", value: []byte(`{"port":100}`)},
		{name: "zero port", value: []byte(`{"hostname":"host-1","port":0}`)},
		{name: "port out of range", value: []byte(`{"hostname":"host-1","port":70000}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.value)
			require.ErrorIs(t, err, types.ErrAddressDecode)
		})
	}
}
