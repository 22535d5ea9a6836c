// Package config loads runtime configuration for the solarplan shell.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional TOML file named by -c or -config.
//  3. Command-line flags -a, -t and -n.
//
// Example file:
//
//	server_url      = "http://127.0.0.1:3000/api"
//	request_timeout = "10s"
//	history_limit   = 50
//	no_color        = false
package config

import "time"

// Config holds runtime settings for the shell.
//
//   - ServerURL: base URL of the REST API, including the /api prefix.
//   - RequestTimeout: deadline for one HTTP round trip.
//   - HistoryLimit: how many local estimates are kept in a session.
//   - NoColor: disables status colors.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	HistoryLimit   int
	NoColor        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3000/api"
	c.RequestTimeout = 10 * time.Second
	c.HistoryLimit = 50
	c.NoColor = false
}

// LoadConfig constructs a Config from defaults, the TOML file and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseToml(cfg)
	parseFlags(cfg)
	return cfg
}
