// Package logging builds the zap logger used across addressbook.
// Logging is off unless debug_mode is set in .book/config.yaml, BOOK_LOG_LEVEL
// is exported, or --verbose is passed. When on, entries go to
// .book/logs/book.log (or stderr with file "-"), one named logger per category.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"addressbook/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config and workspace resolution
	CategorySession Category = "session" // Interactive loop lifecycle
	CategoryCommand Category = "command" // Per-command dispatch and outcome
	CategoryStore   Category = "store"   // Load/save of the contact book
)

// New builds a logger from cfg. Relative log files resolve against
// workspace. verbose forces debug mode at debug level.
func New(cfg config.LoggingConfig, workspace string, verbose bool) (*zap.Logger, error) {
	if verbose {
		cfg.DebugMode = true
		cfg.Level = "debug"
	}
	if !cfg.DebugMode {
		return zap.NewNop(), nil
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	out, err := outputPath(cfg.File, workspace)
	if err != nil {
		return nil, err
	}
	zcfg.OutputPaths = []string{out}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps debug/info/warn/error (or "") to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// outputPath turns the configured file into a zap sink, creating the
// parent directory for real files.
func outputPath(file, workspace string) (string, error) {
	switch file {
	case "-", "stderr":
		return "stderr", nil
	case "stdout":
		return "stdout", nil
	case "":
		file = filepath.Join(config.DirName, "logs", "book.log")
	}
	if !filepath.IsAbs(file) && workspace != "" {
		file = filepath.Join(workspace, file)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}
	return file, nil
}

// For returns the child logger for a category.
func For(logger *zap.Logger, category Category) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.Named(string(category))
}
