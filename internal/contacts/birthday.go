package contacts

import "time"

// BirthdayLayout is the DD.MM.YYYY literal used for input and display.
const BirthdayLayout = "02.01.2006"

// Birthday is a calendar date. Only the date part is meaningful; the
// underlying time is always midnight UTC.
type Birthday struct {
	t time.Time
}

// ParseBirthday parses raw in DD.MM.YYYY form. Day and month must be two
// digits, the year four, and the result a real calendar date.
func ParseBirthday(raw string) (Birthday, error) {
	if len(raw) != len(BirthdayLayout) {
		return Birthday{}, errBirthdayFormat()
	}
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, errBirthdayFormat()
	}
	return Birthday{t: t}, nil
}

// BirthdayOn builds a Birthday from a date, dropping the clock and zone.
func BirthdayOn(year int, month time.Month, day int) Birthday {
	return Birthday{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func errBirthdayFormat() error {
	return Invalid("birthday", "Invalid date format. Use DD.MM.YYYY")
}

func (b Birthday) String() string { return b.t.Format(BirthdayLayout) }

func (b Birthday) Month() time.Month { return b.t.Month() }
func (b Birthday) Day() int          { return b.t.Day() }
