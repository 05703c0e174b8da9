package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

func renderCalendar(t *testing.T, view calendar.MonthView, selected *calendar.Date, today calendar.Date, bounds calendar.Bounds) *Calendar {
	t.Helper()
	cells, err := view.Grid(selected, today, bounds)
	require.NoError(t, err)
	return NewCalendar(view, cells).WithTheme(DefaultTheme())
}

func TestCalendarViewLayout(t *testing.T) {
	t.Parallel()

	view := calendar.MonthView{Year: 2024, Month: 1}
	out := ansi.Strip(renderCalendar(t, view, nil, calendar.NewDate(2024, 1, 15), calendar.Bounds{}).View())
	lines := strings.Split(out, "\n")

	// border, header, weekdays, five weeks, border
	require.Len(t, lines, 9)
	assert.Contains(t, lines[1], "February 2024")
	assert.Contains(t, lines[1], prevGlyph)
	assert.Contains(t, lines[1], nextGlyph)
	for _, label := range calendar.WeekdayLabels() {
		assert.Contains(t, lines[2], label)
	}

	// February 1st 2024 is a Thursday: four blank cells precede it.
	firstWeek := lines[3]
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(strings.Trim(firstWeek, "│ ")))
	assert.True(t, strings.HasPrefix(strings.TrimPrefix(firstWeek, "│ "), strings.Repeat(" ", 4*cellWidth)))

	assert.Contains(t, out, "29")
	assert.NotContains(t, out, "30")

	for _, line := range lines {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(line))
	}
}

func TestCalendarSixWeekMonth(t *testing.T) {
	t.Parallel()

	// June 2024 starts on a Saturday and spans six rows.
	june := calendar.MonthView{Year: 2024, Month: 5}
	out := ansi.Strip(renderCalendar(t, june, nil, calendar.NewDate(2000, 0, 1), calendar.Bounds{}).View())
	assert.Equal(t, 10, len(strings.Split(out, "\n")))
}

func TestRenderMonth(t *testing.T) {
	t.Parallel()

	out, err := RenderMonth(calendar.MonthView{Year: 2023, Month: 11}, nil, calendar.NewDate(2023, 11, 25), calendar.Bounds{})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "December 2023")

	_, err = RenderMonth(calendar.MonthView{Year: 2023, Month: 12}, nil, calendar.Date{}, calendar.Bounds{})
	require.Error(t, err)
}

func TestDayAppliers(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	day := calendar.NewDate(2024, 3, 15)
	styleFor := func(cell calendar.Cell, cursor bool) lipgloss.Style {
		return StyleWith(theme, cellBase(), dayAppliers(cell, cursor)...)
	}

	selected := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day, Selected: true, Today: true}, false)
	assert.Equal(t, theme.Palette.Primary.Base, selected.GetBackground())
	assert.False(t, selected.GetUnderline(), "selected days do not carry the today marker")
	assert.True(t, selected.GetBold())

	today := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day, Today: true}, false)
	assert.True(t, today.GetUnderline())
	assert.Equal(t, theme.Palette.Primary.Base, today.GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, today.GetBackground())

	disabled := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day, Disabled: true}, false)
	assert.True(t, disabled.GetFaint())
	assert.Equal(t, theme.Palette.Neutral.Base, disabled.GetForeground())

	disabledToday := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day, Disabled: true, Today: true}, false)
	assert.True(t, disabledToday.GetUnderline())
	assert.True(t, disabledToday.GetFaint())

	plain := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day}, false)
	assert.False(t, plain.GetReverse())
	assert.False(t, plain.GetFaint())

	cursor := styleFor(calendar.Cell{Kind: calendar.CellDay, Date: day}, true)
	assert.True(t, cursor.GetReverse())
}

func TestCalendarCursorOnlyInsideView(t *testing.T) {
	t.Parallel()

	view := calendar.MonthView{Year: 2024, Month: 3}
	c := renderCalendar(t, view, nil, calendar.Date{}, calendar.Bounds{})

	c.WithCursor(calendar.NewDate(2024, 3, 10))
	assert.True(t, c.isCursor(calendar.NewDate(2024, 3, 10)))
	assert.False(t, c.isCursor(calendar.NewDate(2024, 3, 11)))

	c.WithCursor(calendar.NewDate(2024, 4, 10))
	assert.False(t, c.isCursor(calendar.NewDate(2024, 4, 10)))
}

func TestCalendarFrameFollowsFocus(t *testing.T) {
	t.Parallel()

	c := NewCalendar(calendar.MonthView{Year: 2024, Month: 0}, nil)
	assert.Equal(t, DefaultTheme().Palette.Neutral, c.frameSlot()(DefaultTheme().Palette))
	c.WithFocus(true)
	assert.Equal(t, DefaultTheme().Palette.Primary, c.frameSlot()(DefaultTheme().Palette))
}
