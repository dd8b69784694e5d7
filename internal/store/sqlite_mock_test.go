package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"addressbook/internal/contacts"
)

func newMockStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return newSQLiteStore(db, "mock.db", zap.NewNop()), mock
}

func oneContact(t *testing.T) *contacts.Book {
	t.Helper()
	book := contacts.NewBook()
	rec := contacts.NewRecord("Ann")
	require.NoError(t, rec.AddPhone("1234567890"))
	book.AddRecord(rec)
	return book
}

func TestSQLiteStore_SaveRollsBackOnInsertError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM phones").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO contacts").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Save(context.Background(), oneContact(t))
	require.ErrorContains(t, err, "disk I/O error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SaveCommits(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM phones").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM contacts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO contacts").
		WithArgs(sqlmock.AnyArg(), 0, "Ann", nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO phones").
		WithArgs(sqlmock.AnyArg(), 0, "1234567890").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT OR REPLACE INTO meta").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, s.Save(context.Background(), oneContact(t)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_LoadRejectsNewerSchema(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM meta WHERE key = 'schema_version'`)).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("2"))

	_, err := s.Load(context.Background())
	require.ErrorContains(t, err, "unsupported snapshot version")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_LoadQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT value FROM meta").WillReturnError(errors.New("no such table: meta"))

	_, err := s.Load(context.Background())
	require.ErrorContains(t, err, "schema version")
	require.NoError(t, mock.ExpectationsWereMet())
}
