package impala

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/changedi/impala/types"
)

// DefaultMembershipTopic is the feed topic carrying cluster membership.
const DefaultMembershipTopic = "impala-membership"

// Config holds the scheduler's runtime configuration.
//
// Zero values are filled in by SetDefaults; Validate rejects configurations
// the scheduler cannot operate with. Both are applied by the constructors,
// so manual calls are only needed when inspecting a Config before use.
type Config struct {
	// BackendID is this process's identity on the membership topic.
	// Defaults to the advertise address in "host:port" form.
	BackendID string `yaml:"backendId"`

	// AdvertiseHost is the host identifier other cluster members use to
	// reach this backend. Required.
	AdvertiseHost string `yaml:"advertiseHost"`

	// AdvertisePort is this backend's service port. Required.
	AdvertisePort int `yaml:"advertisePort"`

	// MembershipTopic names the membership feed topic.
	// Defaults to DefaultMembershipTopic.
	MembershipTopic string `yaml:"membershipTopic"`

	// StaticBackends optionally lists "host:port" backends for deployments
	// without a membership feed. Parsed by StaticBackendAddresses.
	StaticBackends []string `yaml:"staticBackends"`
}

// SetDefaults fills in missing configuration values with defaults.
func SetDefaults(cfg *Config) {
	if cfg.MembershipTopic == "" {
		cfg.MembershipTopic = DefaultMembershipTopic
	}
	if cfg.BackendID == "" && cfg.AdvertiseHost != "" {
		cfg.BackendID = cfg.AdvertiseAddress().String()
	}
}

// Validate checks the configuration for correctness.
//
// Returns:
//   - error: ErrInvalidConfig-wrapped description of the first problem found
func (c *Config) Validate() error {
	if c.AdvertiseHost == "" {
		return fmt.Errorf("%w: advertiseHost must be set", ErrInvalidConfig)
	}
	if c.AdvertisePort < 1 || c.AdvertisePort > 65535 {
		return fmt.Errorf("%w: advertisePort %d out of range", ErrInvalidConfig, c.AdvertisePort)
	}
	if c.MembershipTopic == "" {
		return fmt.Errorf("%w: membershipTopic must be set", ErrInvalidConfig)
	}
	if c.BackendID == "" {
		return fmt.Errorf("%w: backendId must be set", ErrInvalidConfig)
	}

	return nil
}

// AdvertiseAddress returns the local backend's advertised network address.
func (c *Config) AdvertiseAddress() BackendAddress {
	return BackendAddress{Hostname: c.AdvertiseHost, Port: c.AdvertisePort}
}

// StaticBackendAddresses parses the StaticBackends entries.
//
// Returns:
//   - []BackendAddress: Parsed addresses, in configuration order
//   - error: ErrInvalidAddress-wrapped error for the first malformed entry
func (c *Config) StaticBackendAddresses() ([]BackendAddress, error) {
	backends := make([]BackendAddress, 0, len(c.StaticBackends))
	for _, s := range c.StaticBackends {
		addr, err := types.ParseBackendAddress(s)
		if err != nil {
			return nil, err
		}
		backends = append(backends, addr)
	}

	return backends, nil
}

// LoadConfig reads a YAML configuration file, applies defaults and
// validates the result.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Parsed, defaulted and validated configuration
//   - error: Read, parse or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
