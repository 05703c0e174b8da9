// Package calendar computes month grids and answers selection queries for
// date pickers. Every function is pure: callers own the displayed month and
// the selected date and pass them in on each call, and "today" is always
// supplied by the caller rather than read from a clock.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day. Month is 0-based (0 = January) and Day is 1-based.
// Dates are comparable with ==.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns the Date for the given year, 0-based month and day. It does
// not validate its arguments; see Valid.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates t to its calendar day in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m) - 1, Day: d}
}

// Time returns midnight of d in loc, or in UTC when loc is nil.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// Valid reports whether d names an existing day.
func (d Date) Valid() bool {
	n, err := DaysInMonth(d.Year, d.Month)
	if err != nil {
		return false
	}
	return d.Day >= 1 && d.Day <= n
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(d.Month - other.Month)
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// AddDays returns the date n days after d (before d when n is negative).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

// MonthView returns the month containing d.
func (d Date) MonthView() MonthView {
	return MonthView{Year: d.Year, Month: d.Month}
}

// String formats d as YYYY-MM-DD with a 1-based month.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month+1, d.Day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Bounds is an inclusive date range. A nil Min or Max leaves that side
// unbounded, so the zero value accepts every date.
type Bounds struct {
	Min *Date
	Max *Date
}

// NewBounds builds Bounds from optional endpoints.
func NewBounds(min, max *Date) Bounds {
	return Bounds{Min: min, Max: max}
}

// Contains reports whether d lies within b, comparing at day granularity.
func (b Bounds) Contains(d Date) bool {
	if b.Min != nil && d.Before(*b.Min) {
		return false
	}
	if b.Max != nil && d.After(*b.Max) {
		return false
	}
	return true
}

// IsWithinRange is Contains in function form.
func IsWithinRange(d Date, b Bounds) bool {
	return b.Contains(d)
}

// Empty reports whether no date can satisfy b.
func (b Bounds) Empty() bool {
	return b.Min != nil && b.Max != nil && b.Max.Before(*b.Min)
}

func (b Bounds) String() string {
	lo, hi := "-inf", "+inf"
	if b.Min != nil {
		lo = b.Min.String()
	}
	if b.Max != nil {
		hi = b.Max.String()
	}
	return "[" + lo + ", " + hi + "]"
}
