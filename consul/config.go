package consul

import (
	"fmt"
	"time"

	"github.com/kbukum/consulkit/httpclient"
	"github.com/kbukum/consulkit/logger"
)

// Config holds Consul client configuration. All connectivity concerns —
// agent address, ACL token, TLS — are fixed at construction time.
type Config struct {
	// Address is the Consul agent address (host:port).
	Address string `yaml:"address" mapstructure:"address"`

	// Scheme is the URI scheme for Consul ("http" or "https").
	Scheme string `yaml:"scheme" mapstructure:"scheme"`

	// Token is the Consul ACL token. Empty means unauthenticated;
	// no X-Consul-Token header is sent.
	Token string `yaml:"token" mapstructure:"token"`

	// Datacenter is the Consul datacenter name. When set it is passed
	// as the dc query parameter on every request.
	Datacenter string `yaml:"datacenter" mapstructure:"datacenter"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures transport TLS settings (https scheme).
	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Logger receives structured operation logs. Nil means silent.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Address == "" {
		c.Address = "localhost:8500"
	}
	if c.Scheme == "" {
		c.Scheme = "http"
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("consul: address is required")
	}
	switch c.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("consul: scheme must be http or https (got: %s)", c.Scheme)
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// baseURL composes the agent base URL from scheme and address.
func (c *Config) baseURL() string {
	return c.Scheme + "://" + c.Address
}
