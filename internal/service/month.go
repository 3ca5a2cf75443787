package service

import (
	"time"
)

const monthKeyLayout = "2006-01"

// CurrentMonthKey returns the current UTC year-month as "YYYY-MM".
func CurrentMonthKey() string {
	return time.Now().UTC().Format(monthKeyLayout)
}

// NormalizeMonth defaults an empty month to the current UTC year-month and
// strictly validates anything else. Malformed keys are rejected, not coerced.
func NormalizeMonth(month string) (string, error) {
	if month == "" {
		return CurrentMonthKey(), nil
	}
	if _, err := time.Parse(monthKeyLayout, month); err != nil {
		return "", ErrInvalidMonthFormat
	}
	return month, nil
}

// MonthInterval returns the half-open UTC interval [first-of-month,
// first-of-next-month) for a validated month key. AddDate rolls December
// into January of the following year.
func MonthInterval(month string) (time.Time, time.Time, error) {
	parsed, err := time.Parse(monthKeyLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidMonthFormat
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}
