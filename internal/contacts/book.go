// Package contacts holds the address book data model: validated phone and
// birthday values, contact records, the name-keyed Book and the
// upcoming-birthday scan.
//
// A Book is not safe for concurrent use; the session that owns it is the
// only writer.
package contacts

import "slices"

// Book maps contact names to records and remembers insertion order.
type Book struct {
	records map[string]*Record
	order   []string
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts rec under its name. An existing record with the same
// name is replaced wholesale and keeps its position.
func (b *Book) AddRecord(rec *Record) {
	if _, ok := b.records[rec.name]; !ok {
		b.order = append(b.order, rec.name)
	}
	b.records[rec.name] = rec
}

// Find looks a record up by exact name.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record for name and reports whether it existed.
func (b *Book) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
	return true
}

func (b *Book) Len() int { return len(b.order) }

// Names returns the contact names in insertion order.
func (b *Book) Names() []string {
	return slices.Clone(b.order)
}

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}
