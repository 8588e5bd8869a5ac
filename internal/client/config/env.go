package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// first loading a .env file from the working directory when one exists.
//
// Recognized variables:
//
//	HUBBUB_API_BASE_URL    base address of the API
//	HUBBUB_REQUEST_TIMEOUT Go duration string, e.g. "15s"
//	HUBBUB_DATABASE_PATH   path of the local SQLite file
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("HUBBUB_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("HUBBUB_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("HUBBUB_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
