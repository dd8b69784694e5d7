package contacts

import "time"

// DefaultWindowDays is the lookahead used by UpcomingBirthdays.
const DefaultWindowDays = 7

// Congratulation is a contact whose birthday falls inside the lookahead
// window, with the date it should be celebrated on.
type Congratulation struct {
	Name string
	Date Birthday
}

// UpcomingBirthdays lists contacts with a birthday in the next seven days.
func (b *Book) UpcomingBirthdays(today time.Time) []Congratulation {
	return b.UpcomingBirthdaysWithin(today, DefaultWindowDays)
}

// UpcomingBirthdaysWithin lists contacts whose next birthday is between 0 and
// days days after today, inclusive. Birthdays landing on a weekend move to
// the following Monday; the window check happens before that move, so a
// Saturday on the last day of the window yields a Monday past it.
//
// Results follow the book's insertion order.
func (b *Book) UpcomingBirthdaysWithin(today time.Time, days int) []Congratulation {
	start := dateOf(today)
	var out []Congratulation
	for _, rec := range b.Records() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		next := occurrence(start.Year(), bd)
		if next.Before(start) {
			next = occurrence(start.Year()+1, bd)
		}
		until := daysBetween(start, next)
		if until < 0 || until > days {
			continue
		}
		out = append(out, Congratulation{
			Name: rec.Name(),
			Date: BirthdayOn(next.Year(), next.Month(), next.Day()).shifted(),
		})
	}
	return out
}

// occurrence places the birthday's month and day in year. Feb 29 becomes
// Mar 1 outside leap years.
func occurrence(year int, bd Birthday) time.Time {
	return time.Date(year, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
}

// shifted moves a Saturday or Sunday to the next Monday.
func (b Birthday) shifted() Birthday {
	switch b.t.Weekday() {
	case time.Saturday:
		return Birthday{t: b.t.AddDate(0, 0, 2)}
	case time.Sunday:
		return Birthday{t: b.t.AddDate(0, 0, 1)}
	}
	return b
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
