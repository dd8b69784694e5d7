package contacts

import "strings"

// Record is one contact: a fixed name, an ordered list of phones and an
// optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops the first phone equal to raw.
func (r *Record) RemovePhone(raw string) bool {
	i := r.index(raw)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone equal to oldRaw with newRaw.
// newRaw is validated before the lookup, so an invalid replacement is
// reported even when oldRaw is absent. A missing oldRaw stores nothing.
func (r *Record) EditPhone(oldRaw, newRaw string) (bool, error) {
	p, err := ParsePhone(newRaw)
	if err != nil {
		return false, err
	}
	i := r.index(oldRaw)
	if i < 0 {
		return false, nil
	}
	r.phones[i] = p
	return true, nil
}

// FindPhone reports whether raw is one of the record's phones.
func (r *Record) FindPhone(raw string) bool {
	return r.index(raw) >= 0
}

// AddBirthday validates raw and sets (or overwrites) the birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// SetBirthday stores an already parsed birthday.
func (r *Record) SetBirthday(b Birthday) {
	r.birthday = &b
}

func (r *Record) index(raw string) int {
	for i, p := range r.phones {
		if string(p) == raw {
			return i
		}
	}
	return -1
}

// String renders the record for the "all" listing.
func (r *Record) String() string {
	parts := []string{"Contact name: " + r.name}
	if len(r.phones) > 0 {
		parts = append(parts, "phones: "+JoinPhones(r.phones))
	}
	if r.birthday != nil {
		parts = append(parts, "birthday: "+r.birthday.String())
	}
	return strings.Join(parts, ", ")
}

// JoinPhones joins phones with "; ".
func JoinPhones(phones []Phone) string {
	ss := make([]string, len(phones))
	for i, p := range phones {
		ss[i] = string(p)
	}
	return strings.Join(ss, "; ")
}
