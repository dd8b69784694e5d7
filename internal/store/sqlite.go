package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"addressbook/internal/config"
	"addressbook/internal/contacts"
)

// SQLiteStore keeps the book in three tables: contacts, phones and meta.
// Saves rewrite every row inside one transaction.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
	now    func() time.Time
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL UNIQUE,
	birthday TEXT
);
CREATE INDEX IF NOT EXISTS idx_contacts_position ON contacts(position);

CREATE TABLE IF NOT EXISTS phones (
	contact_id TEXT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	number TEXT NOT NULL,
	PRIMARY KEY (contact_id, position)
);
`

// OpenSQLite opens (creating if needed) the database at path. driver is a
// database/sql driver name: "sqlite" for modernc.org/sqlite (default) or
// "sqlite3" for github.com/mattn/go-sqlite3.
func OpenSQLite(ctx context.Context, path, driver string, logger *zap.Logger) (*SQLiteStore, error) {
	if driver == "" {
		driver = config.DriverModernc
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := newSQLiteStore(db, path, logger)
	if err := s.initialize(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("opened sqlite store", zap.String("path", path), zap.String("driver", driver))
	return s, nil
}

func newSQLiteStore(db *sql.DB, path string, logger *zap.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, dbPath: path, logger: logger, now: time.Now}
}

func (s *SQLiteStore) initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Load reads every contact in saved order. An empty database is an empty book.
func (s *SQLiteStore) Load(ctx context.Context) (*contacts.Book, error) {
	if err := s.checkVersion(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	type row struct {
		id       string
		name     string
		birthday sql.NullString
	}
	var ordered []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.name, &r.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		ordered = append(ordered, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	phones, err := s.loadPhones(ctx)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{Version: SchemaVersion}
	for _, r := range ordered {
		snap.Contacts = append(snap.Contacts, ContactEntry{
			Name:     r.name,
			Phones:   phones[r.id],
			Birthday: r.birthday.String,
		})
	}
	book, err := snap.Book()
	if err != nil {
		return nil, fmt.Errorf("failed to restore %s: %w", s.dbPath, err)
	}

	s.logger.Debug("loaded sqlite store", zap.String("path", s.dbPath), zap.Int("contacts", book.Len()))
	return book, nil
}

func (s *SQLiteStore) loadPhones(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT contact_id, number FROM phones ORDER BY contact_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query phones: %w", err)
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var id, number string
		if err := rows.Scan(&id, &number); err != nil {
			return nil, fmt.Errorf("failed to scan phone: %w", err)
		}
		phones[id] = append(phones[id], number)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phones: %w", err)
	}
	return phones, nil
}

func (s *SQLiteStore) checkVersion(ctx context.Context) error {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if v, err := strconv.Atoi(value); err != nil || v != SchemaVersion {
		return fmt.Errorf("unsupported snapshot version %q (want %d)", value, SchemaVersion)
	}
	return nil
}

// Save replaces the stored book with book. On any error the previous
// contents are kept.
func (s *SQLiteStore) Save(ctx context.Context, book *contacts.Book) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for i, rec := range book.Records() {
		id := uuid.NewString()
		var birthday sql.NullString
		if bd, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO contacts (id, position, name, birthday) VALUES (?, ?, ?, ?)`,
			id, i, rec.Name(), birthday,
		); err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", rec.Name(), err)
		}
		for j, p := range rec.Phones() {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO phones (contact_id, position, number) VALUES (?, ?, ?)`,
				id, j, p.String(),
			); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", rec.Name(), err)
			}
		}
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?), ('saved_at', ?)`,
		strconv.Itoa(SchemaVersion), s.now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to write meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	s.logger.Debug("saved sqlite store", zap.String("path", s.dbPath), zap.Int("contacts", book.Len()))
	return nil
}
