package validation

import (
	"errors"
	"fmt"
	"time"
)

// BirthDateLayout is the only accepted wire format for birth dates.
const BirthDateLayout = "2006-01-02"

// Defaults mirror the configured bounds until Init/SetBirthDateBounds runs.
var (
	minBirthYear = 1900
	minAge       = 13
)

// SetBirthDateBounds configures the plausibility window for birth dates.
// Callable without Gin (the admin CLI uses it directly).
func SetBirthDateBounds(year, age int) {
	if year > 0 {
		minBirthYear = year
	}
	if age > 0 {
		minAge = age
	}
}

// ParseBirthDate parses and validates a birth date string: it must be a
// real calendar date in YYYY-MM-DD form, not in the future, not before the
// minimum year, and old enough to satisfy the minimum age. Both boundary
// dates are accepted.
func ParseBirthDate(s string) (time.Time, error) {
	d, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		return time.Time{}, errors.New("must be a real date in YYYY-MM-DD format")
	}

	now := time.Now().UTC()
	if d.After(now) {
		return time.Time{}, errors.New("must not be in the future")
	}

	minDate := time.Date(minBirthYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	if d.Before(minDate) {
		return time.Time{}, fmt.Errorf("must not be before year %d", minBirthYear)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	cutoff := today.AddDate(-minAge, 0, 0)
	if d.After(cutoff) {
		return time.Time{}, fmt.Errorf("minimum age is %d", minAge)
	}

	return d, nil
}
