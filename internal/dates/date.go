package dates

import (
	"fmt"
	"time"
)

// Date is a plain calendar day with no time-of-day or timezone attached.
// All dates cross the wire as "YYYY-MM-DD" with zero-padded month and day,
// which keeps lexicographic ordering consistent with calendar ordering.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse parses a strict "YYYY-MM-DD" date string.
func Parse(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return FromTime(t), nil
}

// FromTime truncates a timestamp to its calendar day in the timestamp's location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Valid reports whether the triple denotes a real calendar day
// (rejects things like 2025-02-30; accepts leap-day February 29).
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := d.toTime()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// String formats the date as zero-padded "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of week (Sunday = 0).
func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// AddDays returns the date n calendar days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.toTime().AddDate(0, 0, n))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
