package calendar

import (
	"encoding/json"
	"time"

	"cloudeng.io/datetime"

	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
)

// DaysPerWeek is the column count of a month grid.
const DaysPerWeek = 7

// CellKind distinguishes padding cells from day cells.
type CellKind int

const (
	// CellEmpty pads the first row so day 1 falls under its weekday.
	CellEmpty CellKind = iota
	// CellDay holds a day of the displayed month.
	CellDay
)

func (k CellKind) String() string {
	if k == CellDay {
		return "day"
	}
	return "empty"
}

// Cell is one slot of a month grid. Date and the flags are only meaningful
// when Kind is CellDay.
type Cell struct {
	Kind     CellKind
	Date     Date
	Today    bool
	Selected bool
	Disabled bool
}

// IsEmpty reports whether c is padding.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Interactive reports whether c may be clicked or chosen.
func (c Cell) Interactive() bool {
	return c.Kind == CellDay && !c.Disabled
}

type cellJSON struct {
	Kind     string `json:"kind"`
	Date     string `json:"date,omitempty"`
	Day      int    `json:"day,omitempty"`
	Today    bool   `json:"today,omitempty"`
	Selected bool   `json:"selected,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// MarshalJSON encodes empty cells as {"kind":"empty"}.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{Kind: c.Kind.String()}
	if c.Kind == CellDay {
		out.Date = c.Date.String()
		out.Day = c.Date.Day
		out.Today = c.Today
		out.Selected = c.Selected
		out.Disabled = c.Disabled
	}
	return json.Marshal(out)
}

func checkMonth(month int) error {
	if month < 0 || month > 11 {
		return dperrors.NewInvalidMonthError(month)
	}
	return nil
}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the length of the 0-based month in year.
func DaysInMonth(year, month int) (int, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month+1))), nil
}

// FirstWeekdayOfMonth returns the weekday (Sunday = 0) of the first day of
// the 0-based month in the proleptic Gregorian calendar.
func FirstWeekdayOfMonth(year, month int) (time.Weekday, error) {
	if err := checkMonth(month); err != nil {
		return 0, err
	}
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday(), nil
}

// BuildMonthGrid lays out the 0-based month of year for a Sunday-first
// seven column grid: one empty cell per weekday before the 1st, then one day
// cell per day in ascending order. The last row is not padded, so the result
// has exactly FirstWeekdayOfMonth + DaysInMonth cells.
func BuildMonthGrid(year, month int, selected *Date, today Date, bounds Bounds) ([]Cell, error) {
	n, err := DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}
	w, err := FirstWeekdayOfMonth(year, month)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, int(w)+n)
	for i := 0; i < int(w); i++ {
		cells = append(cells, Cell{Kind: CellEmpty})
	}
	for day := 1; day <= n; day++ {
		date := Date{Year: year, Month: month, Day: day}
		cells = append(cells, Cell{
			Kind:     CellDay,
			Date:     date,
			Today:    date == today,
			Selected: selected != nil && *selected == date,
			Disabled: !bounds.Contains(date),
		})
	}
	return cells, nil
}

// Weeks splits a grid into rows of DaysPerWeek cells. The final row keeps
// whatever cells remain.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+DaysPerWeek-1)/DaysPerWeek)
	for start := 0; start < len(cells); start += DaysPerWeek {
		end := start + DaysPerWeek
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[start:end])
	}
	return rows
}
