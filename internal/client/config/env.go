package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// dotEnvFile is loaded before reading the environment. Variables already
// set in the process environment win over the file.
var dotEnvFile = ".env"

const envPrefix = "SME"

// parseEnv overlays cfg with SME_* environment variables. A malformed
// SME_REQUEST_TIMEOUT panics.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(dotEnvFile) // missing file is fine

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if s := v.GetString("API_URL"); s != "" {
		cfg.APIBaseURL = s
	}
	if s := v.GetString("DB_PATH"); s != "" {
		cfg.DBPath = s
	}
	if s := v.GetString("REQUEST_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if s := v.GetString("LOG_LEVEL"); s != "" {
		cfg.LogLevel = s
	}
	if s := v.GetString("LOG_FORMAT"); s != "" {
		cfg.LogFormat = s
	}
}
