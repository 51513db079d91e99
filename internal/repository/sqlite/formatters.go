package sqlite

import (
	"time"
)

// dbTimeFormat is a fixed-width RFC3339 variant with nine fractional digits.
// Fixed width keeps lexicographic ordering of stored timestamps identical to
// chronological ordering, which ORDER BY relies on.
const dbTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats a time.Time value for database storage.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeFormat)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil if the pointer is nil.
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses a stored timestamp string from the database.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

