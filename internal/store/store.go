// Package store persists the contact book between sessions. The file
// backend writes a versioned YAML or JSON snapshot; the sqlite backend keeps
// the same schema in tables. Both treat a missing data file as an empty book.
package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"addressbook/internal/config"
	"addressbook/internal/contacts"
)

// Store loads and saves a whole contact book.
type Store interface {
	Load(ctx context.Context) (*contacts.Book, error)
	Save(ctx context.Context, book *contacts.Book) error
	Close() error
}

// Open returns the backend selected by cfg. cfg.Path must already be
// resolved against the workspace.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.Path, cfg.Format, logger)
	case config.BackendSQLite:
		return OpenSQLite(ctx, cfg.Path, cfg.SQLiteDriver, logger)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// Copy loads the book from src and saves it into dst, returning the number
// of contacts copied.
func Copy(ctx context.Context, dst, src Store) (int, error) {
	book, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}
	if err := dst.Save(ctx, book); err != nil {
		return 0, fmt.Errorf("save destination: %w", err)
	}
	return book.Len(), nil
}
