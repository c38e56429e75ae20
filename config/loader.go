package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem abstracts file operations so the loader can be tested
// without touching disk.
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// configSearchPaths are the default locations probed for a config file.
var configSearchPaths = []string{
	"./config.yml",
	"./config/config.yml",
	"./consulkit.yml",
}

// envSearchPaths are the default locations probed for a .env file.
var envSearchPaths = []string{
	".env",
}

// envBindings maps viper keys to the environment variables that
// override them.
var envBindings = map[string]string{
	"consul.address":    "CONSUL_ADDRESS",
	"consul.scheme":     "CONSUL_SCHEME",
	"consul.token":      "CONSUL_TOKEN",
	"consul.datacenter": "CONSUL_DATACENTER",
	"consul.timeout":    "CONSUL_TIMEOUT",
	"logging.level":     "LOG_LEVEL",
	"logging.format":    "LOG_FORMAT",
	"logging.output":    "LOG_OUTPUT",
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file path (optional)
	EnvFile    string // explicit .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads configuration from YAML and environment sources and returns
// a validated Config with defaults applied. Missing files are not an
// error; the environment alone can configure the client.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	v := viper.New()

	// 1. YAML file first, the base layer.
	configFile := resolveFile(lc.FileSystem, lc.ConfigFile, configSearchPaths)
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	// 2. A .env file feeds the process environment before overrides apply.
	envFile := resolveFile(lc.FileSystem, lc.EnvFile, envSearchPaths)
	if envFile != "" {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	// 3. Environment variables override file values.
	for key, envVar := range envBindings {
		if val, ok := os.LookupEnv(envVar); ok && strings.TrimSpace(val) != "" {
			v.Set(key, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveFile returns the explicit path when given, otherwise the first
// existing path from the search list.
func resolveFile(fs FileSystem, explicit string, searchPaths []string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range searchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
