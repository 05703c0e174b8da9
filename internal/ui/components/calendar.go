package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

// CalendarWidth is the inner width of a rendered calendar. A Field given
// this width lines up with the calendar drawn below it.
const CalendarWidth = gridWidth

const (
	cellWidth = 4
	gridWidth = cellWidth * calendar.DaysPerWeek

	prevGlyph = "‹"
	nextGlyph = "›"
)

// Calendar renders one month as a header, a weekday row and the day grid.
type Calendar struct {
	view    calendar.MonthView
	cells   []calendar.Cell
	cursor  *calendar.Date
	focused bool
	theme   *Theme
}

// NewCalendar creates a calendar for view from a grid produced by
// calendar.BuildMonthGrid.
func NewCalendar(view calendar.MonthView, cells []calendar.Cell) *Calendar {
	return &Calendar{view: view, cells: cells}
}

// RenderMonth builds the grid for view and renders it with the global theme.
func RenderMonth(view calendar.MonthView, selected *calendar.Date, today calendar.Date, bounds calendar.Bounds) (string, error) {
	cells, err := view.Grid(selected, today, bounds)
	if err != nil {
		return "", err
	}
	return NewCalendar(view, cells).View(), nil
}

// WithCursor highlights d when it falls inside the displayed month.
func (c *Calendar) WithCursor(d calendar.Date) *Calendar {
	c.cursor = &d
	return c
}

// WithFocus draws the frame in the primary colour.
func (c *Calendar) WithFocus(focused bool) *Calendar {
	c.focused = focused
	return c
}

// WithTheme renders with theme instead of the global one.
func (c *Calendar) WithTheme(theme Theme) *Calendar {
	c.theme = &theme
	return c
}

func (c *Calendar) currentTheme() Theme {
	if c.theme != nil {
		return *c.theme
	}
	return GetTheme()
}

// View renders the calendar.
func (c *Calendar) View() string {
	theme := c.currentTheme()

	lines := []string{c.header(theme), c.weekdayRow(theme)}
	for _, week := range calendar.Weeks(c.cells) {
		lines = append(lines, c.weekRow(theme, week))
	}

	frame := StyleWith(theme, lipgloss.NewStyle(),
		Border(BorderVariantRounded),
		PaddingX(1),
		BorderColour(c.frameSlot()),
	)
	return frame.Render(strings.Join(lines, "\n"))
}

func (c *Calendar) frameSlot() PaletteSlot {
	if c.focused {
		return PalettePrimary
	}
	return PaletteNeutral
}

func (c *Calendar) header(theme Theme) string {
	arrow := StyleWith(theme, lipgloss.NewStyle(), Foreground(PaletteNeutral))
	title := StyleWith(theme, lipgloss.NewStyle().
		Width(gridWidth-2*lipgloss.Width(prevGlyph)).
		Align(lipgloss.Center),
		Typography(TypographyVariantTitle),
	)
	return arrow.Render(prevGlyph) + title.Render(c.view.Title()) + arrow.Render(nextGlyph)
}

func (c *Calendar) weekdayRow(theme Theme) string {
	style := StyleWith(theme, cellBase(), Typography(TypographyVariantMuted))
	var b strings.Builder
	for _, label := range calendar.WeekdayLabels() {
		b.WriteString(style.Render(label))
	}
	return b.String()
}

func (c *Calendar) weekRow(theme Theme, week []calendar.Cell) string {
	var b strings.Builder
	for _, cell := range week {
		if cell.IsEmpty() {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		style := StyleWith(theme, cellBase(), dayAppliers(cell, c.isCursor(cell.Date))...)
		b.WriteString(style.Render(strconv.Itoa(cell.Date.Day)))
	}
	return b.String()
}

func (c *Calendar) isCursor(d calendar.Date) bool {
	return c.cursor != nil && *c.cursor == d && c.view.Contains(d)
}

func cellBase() lipgloss.Style {
	return lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
}

// dayAppliers maps a day's state onto styles. Selected wins over today, and
// the today marker only shows when the day is not selected.
func dayAppliers(cell calendar.Cell, cursor bool) []StyleApplier {
	var appliers []StyleApplier
	switch {
	case cell.Selected:
		appliers = append(appliers, Background(PalettePrimary), Typography(TypographyVariantEmphasis))
	case cell.Today:
		appliers = append(appliers,
			Foreground(PalettePrimary),
			Modifier(func(s lipgloss.Style) lipgloss.Style { return s.Underline(true).Bold(true) }),
		)
	case cell.Disabled:
		appliers = append(appliers, Typography(TypographyVariantMuted))
	default:
		appliers = append(appliers, Typography(TypographyVariantBody))
	}
	if cell.Disabled && cell.Today {
		appliers = append(appliers, Modifier(func(s lipgloss.Style) lipgloss.Style { return s.Faint(true) }))
	}
	if cursor {
		appliers = append(appliers, Modifier(func(s lipgloss.Style) lipgloss.Style { return s.Reverse(true) }))
	}
	return appliers
}
