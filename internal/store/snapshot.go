package store

import (
	"fmt"
	"time"

	"addressbook/internal/contacts"
)

// SchemaVersion is the snapshot layout written by this build.
const SchemaVersion = 1

// Snapshot is the on-disk form of a contact book. It is decoupled from the
// in-memory types so the file layout only changes with SchemaVersion.
type Snapshot struct {
	Version  int            `yaml:"version" json:"version"`
	SavedAt  time.Time      `yaml:"saved_at" json:"saved_at"`
	Contacts []ContactEntry `yaml:"contacts" json:"contacts"`
}

// ContactEntry is one record in a Snapshot. Birthday uses DD.MM.YYYY.
type ContactEntry struct {
	Name     string   `yaml:"name" json:"name"`
	Phones   []string `yaml:"phones,omitempty" json:"phones,omitempty"`
	Birthday string   `yaml:"birthday,omitempty" json:"birthday,omitempty"`
}

// NewSnapshot captures book in insertion order.
func NewSnapshot(book *contacts.Book, savedAt time.Time) Snapshot {
	snap := Snapshot{
		Version:  SchemaVersion,
		SavedAt:  savedAt.UTC(),
		Contacts: make([]ContactEntry, 0, book.Len()),
	}
	for _, rec := range book.Records() {
		entry := ContactEntry{Name: rec.Name()}
		for _, p := range rec.Phones() {
			entry.Phones = append(entry.Phones, p.String())
		}
		if bd, ok := rec.Birthday(); ok {
			entry.Birthday = bd.String()
		}
		snap.Contacts = append(snap.Contacts, entry)
	}
	return snap
}

// Book rebuilds a contact book, re-validating every phone and birthday.
// A zero-version snapshot with no contacts (an empty file) is an empty book.
func (s Snapshot) Book() (*contacts.Book, error) {
	book := contacts.NewBook()
	if s.Version == 0 && len(s.Contacts) == 0 {
		return book, nil
	}
	if s.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d (want %d)", s.Version, SchemaVersion)
	}
	for i, entry := range s.Contacts {
		if entry.Name == "" {
			return nil, fmt.Errorf("contact #%d has no name", i+1)
		}
		rec := contacts.NewRecord(entry.Name)
		for _, raw := range entry.Phones {
			if err := rec.AddPhone(raw); err != nil {
				return nil, fmt.Errorf("contact %q: phone %q: %w", entry.Name, raw, err)
			}
		}
		if entry.Birthday != "" {
			if err := rec.AddBirthday(entry.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q: birthday %q: %w", entry.Name, entry.Birthday, err)
			}
		}
		book.AddRecord(rec)
	}
	return book, nil
}
