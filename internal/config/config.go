package config

// Config holds runtime settings for the notekeeper CLI.
//
// Fields:
//   - DataDir: directory holding the application's on-device state.
//   - DatabaseFile: sqlite file name inside DataDir.
type Config struct {
	DataDir      string
	DatabaseFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.DatabaseFile = "notes.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
