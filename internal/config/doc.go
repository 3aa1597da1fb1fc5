// Package config loads runtime configuration for the notekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv); main loads an optional .env
//     file into the environment first.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-o string   data directory
//	-d string   database file name inside the data directory
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/me/.notekeeper",
//	  "database_file": "notes.db"
//	}
//
// Primary API
//
//   - type Config                     — holds DataDir and DatabaseFile
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Environment variables
//
//	NOTEKEEPER_DATA_DIR
//	NOTEKEEPER_DATABASE_FILE
package config
