package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time as RFC3339 with nanoseconds, in UTC.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimeFromDB parses a timestamp written by FormatTimeForDB.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
