package config

import "time"

// Config holds runtime settings for the authdesk CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - SubmitDelay: artificial latency applied to form submissions to
//     simulate a server round trip.
//   - LogLevel: minimum level of the structured logger.
type Config struct {
	DatabaseDSN string
	SubmitDelay time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "authdesk.db"
	c.SubmitDelay = 800 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
