package picker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

func date(y, m, d int) *calendar.Date {
	v := calendar.NewDate(y, m, d)
	return &v
}

func TestNewDefaultsToTodaysMonth(t *testing.T) {
	t.Parallel()

	m := New(Options{Today: date(2024, 1, 15)})

	require.Equal(t, calendar.MonthView{Year: 2024, Month: 1}, m.Month())
	require.Equal(t, calendar.NewDate(2024, 1, 15), m.Cursor())
	require.False(t, m.IsOpen())
	require.False(t, m.Done())
	require.False(t, m.Cancelled())

	_, ok := m.Selected()
	require.False(t, ok)
}

func TestNewStartsAtInitialSelection(t *testing.T) {
	t.Parallel()

	m := New(Options{Today: date(2024, 1, 15), Initial: date(2023, 11, 25), StartOpen: true})

	require.Equal(t, calendar.MonthView{Year: 2023, Month: 11}, m.Month())
	require.Equal(t, calendar.NewDate(2023, 11, 25), m.Cursor())
	require.True(t, m.IsOpen())

	got, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, calendar.NewDate(2023, 11, 25), got)
}

func TestNewCopiesInitialDate(t *testing.T) {
	t.Parallel()

	initial := date(2024, 3, 1)
	m := New(Options{Today: date(2024, 3, 1), Initial: initial})
	initial.Day = 9

	got, _ := m.Selected()
	require.Equal(t, 1, got.Day)
}

func TestInitReturnsNoCommand(t *testing.T) {
	t.Parallel()

	require.Nil(t, New(Options{}).Init())
}
