package config

import (
	"fmt"

	"github.com/kbukum/consulkit/consul"
	"github.com/kbukum/consulkit/logger"
)

// Config is the full consulkit configuration tree.
type Config struct {
	Consul  consul.Config `yaml:"consul" mapstructure:"consul"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Consul.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Consul.Validate(); err != nil {
		return fmt.Errorf("config.consul: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// NewClient builds a consul client from the loaded configuration,
// wiring the logging section into it.
func (c *Config) NewClient() (*consul.Client, error) {
	if c.Consul.Logger == nil {
		c.Consul.Logger = logger.New(&c.Logging, "consul")
	}
	return consul.New(c.Consul)
}
