package config

import "os"

// parseEnv overlays Config with values from the process environment.
// main loads an optional .env file into the environment beforehand.
//
// Supported variables:
//
//	NOTEKEEPER_DATA_DIR
//	NOTEKEEPER_DATABASE_FILE
func parseEnv(cfg *Config) {
	if v := os.Getenv("NOTEKEEPER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("NOTEKEEPER_DATABASE_FILE"); v != "" {
		cfg.DatabaseFile = v
	}
}
