package models

import "time"

// DateOnlyFormat is the calendar-date representation used by transactions.
// Dates carry no time component and sort lexicographically.
const DateOnlyFormat = "2006-01-02"

// ToDateOnly truncates a time to its calendar date string.
func ToDateOnly(t time.Time) string {
	return t.Format(DateOnlyFormat)
}

// ParseDateOnly parses a calendar date string.
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse(DateOnlyFormat, s)
}

// IsDateOnly reports whether s is a valid calendar date string.
func IsDateOnly(s string) bool {
	_, err := ParseDateOnly(s)
	return err == nil
}
