package calendar

import (
	"fmt"
	"strconv"

	dperrors "github.com/alexisbeaulieu97/datepick/pkg/errors"
	"github.com/alexisbeaulieu97/datepick/pkg/pagination"
)

// MonthsPerYear is the page count of a year pager, one page per month.
const MonthsPerYear = 12

// MonthView identifies the month a picker is displaying. Month is 0-based.
type MonthView struct {
	Year  int
	Month int
}

// Add returns the view delta months away from v.
func (v MonthView) Add(delta int) MonthView {
	y, m := NavigateMonth(v.Year, v.Month, delta)
	return MonthView{Year: y, Month: m}
}

// Contains reports whether d falls in v.
func (v MonthView) Contains(d Date) bool {
	return d.Year == v.Year && d.Month == v.Month
}

// Title renders the view as "February 2024".
func (v MonthView) Title() string {
	return MonthName(v.Month) + " " + strconv.Itoa(v.Year)
}

// String formats v as YYYY-MM with a 1-based month, the form ParseMonth reads.
func (v MonthView) String() string {
	return fmt.Sprintf("%04d-%02d", v.Year, v.Month+1)
}

// Page returns the 1-based pager page of v.
func (v MonthView) Page() int {
	return v.Month + 1
}

// JumpToPage moves to the 1-based month page of v's year. A page outside
// the year, or the page already shown, leaves v unchanged and reports false.
func (v MonthView) JumpToPage(page int) (MonthView, bool) {
	if !pagination.CanChange(page, v.Page(), MonthsPerYear) {
		return v, false
	}
	return MonthView{Year: v.Year, Month: page - 1}, true
}

// Grid builds the month grid for v.
func (v MonthView) Grid(selected *Date, today Date, bounds Bounds) ([]Cell, error) {
	return BuildMonthGrid(v.Year, v.Month, selected, today, bounds)
}

// NavigateMonth moves month by delta, carrying into the year as needed.
// Any delta is accepted.
func NavigateMonth(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	newYear := floorDiv(total, 12)
	return newYear, total - newYear*12
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// SelectDate returns the requested date when it exists and lies within
// bounds. Otherwise it returns a RejectedError and the caller keeps its
// current selection. An out-of-range month is an InvalidMonthError.
func SelectDate(year, month, day int, bounds Bounds) (Date, error) {
	n, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, err
	}

	candidate := Date{Year: year, Month: month, Day: day}
	switch {
	case day < 1 || day > n:
		return Date{}, dperrors.NewRejectedError(candidate.String(), "day does not exist in month")
	case bounds.Min != nil && candidate.Before(*bounds.Min):
		return Date{}, dperrors.NewRejectedError(candidate.String(), "before minimum date "+bounds.Min.String())
	case bounds.Max != nil && candidate.After(*bounds.Max):
		return Date{}, dperrors.NewRejectedError(candidate.String(), "after maximum date "+bounds.Max.String())
	}
	return candidate, nil
}
