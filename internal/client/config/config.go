package config

import "time"

// Config holds runtime settings for the Hubbub CLI.
//
// Fields:
//   - APIBaseURL: base address of the Hubbub REST API; every request path
//     is appended to it.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: location of the local SQLite file holding the
//     credential slot.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "hubbub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file when present), a JSON file
// (if given via -c/-config) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
