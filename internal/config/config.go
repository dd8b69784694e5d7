package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DirName is the per-workspace directory holding config and logs.
const DirName = ".book"

// Config holds all addressbook configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Where and how the contact book is persisted
	Storage StorageConfig `yaml:"storage"`

	// Upcoming-birthday lookahead
	Birthdays BirthdaysConfig `yaml:"birthdays"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal output
	UX UXConfig `yaml:"ux"`
}

// BirthdaysConfig configures the upcoming-birthday scan.
type BirthdaysConfig struct {
	WindowDays int `yaml:"window_days"` // inclusive lookahead, default 7
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "addressbook",
		Version: "1.0.0",

		Storage: StorageConfig{
			Backend:      BackendFile,
			Path:         "addressbook.yaml",
			Format:       FormatAuto,
			SQLiteDriver: DriverModernc,
		},

		Birthdays: BirthdaysConfig{
			WindowDays: 7,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(DirName, "logs", "book.log"),
		},

		UX: UXConfig{
			Color: true,
			Theme: "light",
		},
	}
}

// Path returns the config file location inside workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, DirName, "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWorkspace reads <workspace>/.env into the environment (variables that
// are already set win) and then loads <workspace>/.book/config.yaml.
func LoadWorkspace(workspace string) (*Config, error) {
	envPath := filepath.Join(workspace, ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return Load(Path(workspace))
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects settings the rest of the program cannot act on.
func (c *Config) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if c.Birthdays.WindowDays < 0 {
		return fmt.Errorf("birthdays.window_days must not be negative, got %d", c.Birthdays.WindowDays)
	}
	return c.Logging.Validate()
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("BOOK_DATA"); path != "" {
		c.Storage.Path = path
	}
	if backend := os.Getenv("BOOK_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if format := os.Getenv("BOOK_FORMAT"); format != "" {
		c.Storage.Format = format
	}
	if driver := os.Getenv("BOOK_SQLITE_DRIVER"); driver != "" {
		c.Storage.SQLiteDriver = driver
	}

	if level := os.Getenv("BOOK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
		c.Logging.DebugMode = true
	}

	if days := os.Getenv("BOOK_WINDOW_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Birthdays.WindowDays = n
		}
	}

	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.UX.Color = false
	}
}
