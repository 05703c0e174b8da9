package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultLayout is the display layout used when none is configured.
const DefaultLayout = "MM/DD/YYYY"

// ISOLayout is the layout used for config files, flags and query strings.
const ISOLayout = "YYYY-MM-DD"

const (
	tokenYear  = "YYYY"
	tokenMonth = "MM"
	tokenDay   = "DD"
)

var (
	monthNames = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	weekdayLabels = [DaysPerWeek]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

	monthPattern = regexp.MustCompile(`^(-?\d+)-(\d{1,2})$`)
)

// MonthName returns the English name of the 0-based month, or "" when the
// month is out of range.
func MonthName(month int) string {
	if checkMonth(month) != nil {
		return ""
	}
	return monthNames[month]
}

// WeekdayLabels returns the two letter column headers, Sunday first.
func WeekdayLabels() []string {
	out := make([]string, len(weekdayLabels))
	copy(out, weekdayLabels[:])
	return out
}

// Format renders d with layout. The first MM, DD and YYYY in layout become
// the zero-padded 1-based month, the zero-padded day and the year. An empty
// layout means DefaultLayout.
func Format(d Date, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	out := strings.Replace(layout, tokenMonth, fmt.Sprintf("%02d", d.Month+1), 1)
	out = strings.Replace(out, tokenDay, fmt.Sprintf("%02d", d.Day), 1)
	return strings.Replace(out, tokenYear, strconv.Itoa(d.Year), 1)
}

// ValidateLayout checks that layout names a year, a month and a day.
func ValidateLayout(layout string) error {
	for _, token := range []string{tokenYear, tokenMonth, tokenDay} {
		if !strings.Contains(layout, token) {
			return fmt.Errorf("layout %q is missing %s", layout, token)
		}
	}
	return nil
}

// Parse reads value written in layout, the inverse of Format.
func Parse(layout, value string) (Date, error) {
	if layout == "" {
		layout = DefaultLayout
	}
	if err := ValidateLayout(layout); err != nil {
		return Date{}, err
	}

	pattern, order := compileLayout(layout)
	matches := pattern.FindStringSubmatch(strings.TrimSpace(value))
	if matches == nil {
		return Date{}, fmt.Errorf("date %q does not match layout %s", value, layout)
	}

	var year, month, day int
	for i, token := range order {
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return Date{}, fmt.Errorf("parse %s in %q: %w", token, value, err)
		}
		switch token {
		case tokenYear:
			year = n
		case tokenMonth:
			month = n - 1
		case tokenDay:
			day = n
		}
	}

	d := Date{Year: year, Month: month, Day: day}
	if err := checkMonth(month); err != nil {
		return Date{}, err
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("date %q: day %d does not exist in %s", value, day, MonthView{Year: year, Month: month}.Title())
	}
	return d, nil
}

// ParseISO reads a YYYY-MM-DD date. Years outside 0..9999 are read as
// Date.String writes them, e.g. -001-12-31.
func ParseISO(value string) (Date, error) {
	d, err := Parse(ISOLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return d, nil
}

// ParseInput reads a date typed by a user: first in the display layout,
// then as ISO. The layout error is returned when neither matches.
func ParseInput(layout, value string) (Date, error) {
	d, err := Parse(layout, value)
	if err == nil {
		return d, nil
	}
	if iso, isoErr := Parse(ISOLayout, value); isoErr == nil {
		return iso, nil
	}
	return Date{}, err
}

// ParseMonth reads a YYYY-MM month, the form MonthView.String writes.
func ParseMonth(value string) (MonthView, error) {
	m := monthPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return MonthView{}, fmt.Errorf("parse month %q: want YYYY-MM", value)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return MonthView{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	month, _ := strconv.Atoi(m[2])
	if err := checkMonth(month - 1); err != nil {
		return MonthView{}, err
	}
	return MonthView{Year: year, Month: month - 1}, nil
}

// compileLayout turns the first occurrence of each token into a capture
// group and returns the tokens in group order. Later occurrences stay
// literal, matching Format.
func compileLayout(layout string) (*regexp.Regexp, []string) {
	var (
		b     strings.Builder
		order []string
		seen  = map[string]bool{}
	)
	b.WriteString("^")
	for i := 0; i < len(layout); {
		matched := false
		for _, token := range []string{tokenYear, tokenMonth, tokenDay} {
			if seen[token] || !strings.HasPrefix(layout[i:], token) {
				continue
			}
			seen[token] = true
			order = append(order, token)
			if token == tokenYear {
				b.WriteString(`(-?\d+?)`)
			} else {
				b.WriteString(`(\d{1,2})`)
			}
			i += len(token)
			matched = true
			break
		}
		if !matched {
			b.WriteString(regexp.QuoteMeta(layout[i : i+1]))
			i++
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String()), order
}
