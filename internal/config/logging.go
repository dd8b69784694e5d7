package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level     string `yaml:"level"`      // debug, info, warn, error
	Format    string `yaml:"format"`     // json, console
	File      string `yaml:"file"`       // "-" for stderr; relative paths resolve against the workspace
	DebugMode bool   `yaml:"debug_mode"` // Master toggle - false = no logging
}

// Validate checks level and format names.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Level)
	}
	switch c.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
	return nil
}
