package domain

import "time"

// EndOfDay returns 23:59:59.999 on t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// EndOfDayAfter returns the end of the day that is days calendar days after now.
func EndOfDayAfter(now time.Time, days int) time.Time {
	return EndOfDay(now.AddDate(0, 0, days))
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDueDate parses a calendar date in layout and returns the end of that day in loc.
func ParseDueDate(value, layout string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return EndOfDay(d), nil
}
