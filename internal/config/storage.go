package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Snapshot file formats.
const (
	FormatAuto = "auto" // pick from the file extension
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// database/sql driver names for the sqlite backend.
const (
	DriverModernc = "sqlite"  // modernc.org/sqlite, pure Go
	DriverMattn   = "sqlite3" // github.com/mattn/go-sqlite3, cgo
)

// StorageConfig configures persistence of the contact book.
type StorageConfig struct {
	Backend      string `yaml:"backend"`       // file, sqlite
	Path         string `yaml:"path"`          // relative paths resolve against the workspace
	Format       string `yaml:"format"`        // auto, yaml, json (file backend only)
	SQLiteDriver string `yaml:"sqlite_driver"` // sqlite, sqlite3
}

// Validate checks backend, format and driver names.
func (s StorageConfig) Validate() error {
	switch s.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", s.Backend)
	}
	switch s.Format {
	case "", FormatAuto, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("unknown storage format %q", s.Format)
	}
	switch s.SQLiteDriver {
	case "", DriverModernc, DriverMattn:
	default:
		return fmt.Errorf("unknown sqlite driver %q", s.SQLiteDriver)
	}
	if s.Path == "" {
		return fmt.Errorf("storage.path is empty")
	}
	return nil
}

// ResolvePath makes a relative storage path absolute under workspace.
func (s StorageConfig) ResolvePath(workspace string) string {
	if filepath.IsAbs(s.Path) || workspace == "" {
		return s.Path
	}
	return filepath.Join(workspace, s.Path)
}

// ForPath derives storage settings for an explicit file, choosing the
// backend from its extension: .db/.sqlite/.sqlite3 select sqlite, anything
// else the file backend. The sqlite driver is carried over from s.
func (s StorageConfig) ForPath(path string) StorageConfig {
	out := StorageConfig{Path: path, Format: FormatAuto, SQLiteDriver: s.SQLiteDriver, Backend: BackendFile}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		out.Backend = BackendSQLite
	}
	return out
}
