package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearBookEnv blanks every variable applyEnvOverrides reads so the
// developer's shell does not leak into the tests.
func clearBookEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOOK_DATA", "BOOK_BACKEND", "BOOK_FORMAT", "BOOK_SQLITE_DRIVER",
		"BOOK_LOG_LEVEL", "BOOK_WINDOW_DAYS",
	} {
		t.Setenv(key, "")
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		t.Setenv("NO_COLOR", "")
		os.Unsetenv("NO_COLOR")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "addressbook" {
		t.Errorf("expected Name=addressbook, got %s", cfg.Name)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("expected Backend=file, got %s", cfg.Storage.Backend)
	}
	if cfg.Birthdays.WindowDays != 7 {
		t.Errorf("expected WindowDays=7, got %d", cfg.Birthdays.WindowDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	clearBookEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DirName, "config.yaml")

	cfg := DefaultConfig()
	cfg.Storage.Backend = BackendSQLite
	cfg.Storage.Path = "contacts.db"
	cfg.Birthdays.WindowDays = 14

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Storage.Backend != BackendSQLite {
		t.Errorf("expected Backend=sqlite, got %s", loaded.Storage.Backend)
	}
	if loaded.Storage.Path != "contacts.db" {
		t.Errorf("expected Path=contacts.db, got %s", loaded.Storage.Path)
	}
	if loaded.Birthdays.WindowDays != 14 {
		t.Errorf("expected WindowDays=14, got %d", loaded.Birthdays.WindowDays)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	clearBookEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Storage.Path != "addressbook.yaml" {
		t.Errorf("expected default path, got %s", cfg.Storage.Path)
	}
}

func TestLoad_RejectsBadYAML(t *testing.T) {
	clearBookEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	clearBookEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  backend: postgres\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown backend")
	}
}

func TestStorageConfig_ResolvePath(t *testing.T) {
	s := StorageConfig{Path: "addressbook.yaml"}
	if got := s.ResolvePath("/ws"); got != filepath.Join("/ws", "addressbook.yaml") {
		t.Errorf("unexpected resolved path %s", got)
	}
	s.Path = "/abs/book.yaml"
	if got := s.ResolvePath("/ws"); got != "/abs/book.yaml" {
		t.Errorf("absolute path should be kept, got %s", got)
	}
}

func TestStorageConfig_ForPath(t *testing.T) {
	base := StorageConfig{SQLiteDriver: DriverMattn}
	cases := map[string]string{
		"book.yaml":    BackendFile,
		"book.json":    BackendFile,
		"book.db":      BackendSQLite,
		"book.SQLite":  BackendSQLite,
		"book.sqlite3": BackendSQLite,
	}
	for path, want := range cases {
		got := base.ForPath(path)
		if got.Backend != want {
			t.Errorf("%s: expected backend %s, got %s", path, want, got.Backend)
		}
		if got.SQLiteDriver != DriverMattn {
			t.Errorf("%s: driver not carried over", path)
		}
	}
}
