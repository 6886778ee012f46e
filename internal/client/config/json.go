package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/smementor/internal/flagx"
	"github.com/dmitrijs2005/smementor/internal/timex"
)

// JsonConfig is the on-disk shape. Empty fields leave the current value.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	DBPath         string          `json:"db_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// Read or decode failures panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
