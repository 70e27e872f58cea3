package config

import "time"

// Config holds runtime settings for the InternHub CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the
//     /api prefix when the backend is served behind a proxy.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the client-local SQLite database holding
//     the stored credential pair.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "internhub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
