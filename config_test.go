package impala

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changedi/impala/types"
)

func TestSetDefaults(t *testing.T) {
	t.Run("fills topic and backend id", func(t *testing.T) {
		cfg := Config{AdvertiseHost: "host-1", AdvertisePort: 22000}
		SetDefaults(&cfg)

		assert.Equal(t, DefaultMembershipTopic, cfg.MembershipTopic)
		assert.Equal(t, "host-1:22000", cfg.BackendID)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{
			BackendID:       "backend-7",
			AdvertiseHost:   "host-1",
			AdvertisePort:   22000,
			MembershipTopic: "custom-membership",
		}
		SetDefaults(&cfg)

		assert.Equal(t, "backend-7", cfg.BackendID)
		assert.Equal(t, "custom-membership", cfg.MembershipTopic)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		BackendID:       "backend-1",
		AdvertiseHost:   "host-1",
		AdvertisePort:   22000,
		MembershipTopic: DefaultMembershipTopic,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: false},
		{name: "missing host", mutate: func(c *Config) { c.AdvertiseHost = "" }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.AdvertisePort = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.AdvertisePort = 70000 }, wantErr: true},
		{name: "missing topic", mutate: func(c *Config) { c.MembershipTopic = "" }, wantErr: true},
		{name: "missing backend id", mutate: func(c *Config) { c.BackendID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfig_StaticBackendAddresses(t *testing.T) {
	t.Run("parses entries in order", func(t *testing.T) {
		cfg := Config{StaticBackends: []string{"host-1:100", "host-2:200"}}

		backends, err := cfg.StaticBackendAddresses()
		require.NoError(t, err)
		assert.Equal(t, []types.BackendAddress{
			{Hostname: "host-1", Port: 100},
			{Hostname: "host-2", Port: 200},
		}, backends)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		cfg := Config{StaticBackends: []string{"host-1:100", "no-port"}}

		_, err := cfg.StaticBackendAddresses()
		require.ErrorIs(t, err, types.ErrInvalidAddress)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("loads, defaults and validates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheduler.yaml")
		data := []byte(`
advertiseHost: host-1
advertisePort: 22000
staticBackends:
  - host-1:22000
  - host-2:22000
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "host-1", cfg.AdvertiseHost)
		assert.Equal(t, DefaultMembershipTopic, cfg.MembershipTopic)
		assert.Equal(t, "host-1:22000", cfg.BackendID)
		assert.Len(t, cfg.StaticBackends, 2)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("fails validation on incomplete config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scheduler.yaml")
		require.NoError(t, os.WriteFile(path, []byte("advertisePort: 22000\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
