// Package config loads consulkit configuration from YAML files and the
// environment. It is an optional convenience: programs can always build a
// consul.Config directly.
//
// Load reads config.yml (searched in standard locations, or an explicit
// path), loads a .env file when present, applies CONSUL_* environment
// overrides, and unmarshals into Config.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	client, err := consul.New(cfg.Consul)
package config
