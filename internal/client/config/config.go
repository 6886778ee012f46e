package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// RequestTimeout of zero leaves the HTTP transport defaults in place.
type Config struct {
	APIBaseURL     string
	DBPath         string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

const DefaultAPIBaseURL = "http://localhost:8000"

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DBPath = "smementor.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "console"
}

// LoadConfig builds a Config from defaults, then JSON, then environment,
// then flags. Later sources take precedence. Malformed input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
