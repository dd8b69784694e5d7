package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"addressbook/internal/config"
	"addressbook/internal/contacts"
)

// FileStore keeps the book as a single YAML or JSON snapshot file.
type FileStore struct {
	path   string
	format string
	logger *zap.Logger
	now    func() time.Time
}

// NewFileStore creates a file-backed store. format may be auto, in which
// case .json selects JSON and every other extension YAML.
func NewFileStore(path, format string, logger *zap.Logger) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: empty path")
	}
	resolved, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, format: resolved, logger: logger, now: time.Now}, nil
}

func resolveFormat(path, format string) (string, error) {
	switch format {
	case config.FormatYAML, config.FormatJSON:
		return format, nil
	case "", config.FormatAuto:
		if strings.EqualFold(filepath.Ext(path), ".json") {
			return config.FormatJSON, nil
		}
		return config.FormatYAML, nil
	}
	return "", fmt.Errorf("unknown snapshot format %q", format)
}

// Load reads the snapshot. A missing file is an empty book.
func (s *FileStore) Load(_ context.Context) (*contacts.Book, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Debug("no snapshot yet, starting empty", zap.String("path", s.path))
		return contacts.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := s.unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	book, err := snap.Book()
	if err != nil {
		return nil, fmt.Errorf("failed to restore %s: %w", s.path, err)
	}

	s.logger.Debug("loaded snapshot",
		zap.String("path", s.path),
		zap.String("format", s.format),
		zap.Int("contacts", book.Len()),
	)
	return book, nil
}

// Save writes the whole book, replacing any previous snapshot.
func (s *FileStore) Save(_ context.Context, book *contacts.Book) error {
	data, err := s.marshal(NewSnapshot(book, s.now()))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.logger.Debug("saved snapshot",
		zap.String("path", s.path),
		zap.String("format", s.format),
		zap.Int("contacts", book.Len()),
	)
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) marshal(snap Snapshot) ([]byte, error) {
	if s.format == config.FormatJSON {
		return json.MarshalIndent(snap, "", "  ")
	}
	return yaml.Marshal(snap)
}

func (s *FileStore) unmarshal(data []byte, snap *Snapshot) error {
	if s.format == config.FormatJSON {
		if len(strings.TrimSpace(string(data))) == 0 {
			return nil
		}
		return json.Unmarshal(data, snap)
	}
	return yaml.Unmarshal(data, snap)
}
