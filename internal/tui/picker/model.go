// Package picker implements the interactive terminal date picker: a field
// that opens into a month calendar navigated from the keyboard.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/internal/logger"
	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

// Options configures a picker.
type Options struct {
	Layout       string
	Placeholder  string
	Bounds       calendar.Bounds
	Initial      *calendar.Date
	Today        *calendar.Date
	PageSiblings int
	// StartOpen shows the calendar immediately.
	StartOpen bool
	// QuitOnSelect ends the program once a date is chosen.
	QuitOnSelect bool
	Logger       *logger.Logger
}

// Model contains the Bubbletea state of the picker.
type Model struct {
	opts  Options
	today calendar.Date
	log   *logger.Logger

	view     calendar.MonthView
	cursor   calendar.Date
	selected *calendar.Date
	open     bool

	done      bool
	cancelled bool

	keys keyMap
	help help.Model
}

// New constructs a picker. Without an initial date the calendar shows the
// current month with the cursor on today.
func New(opts Options) Model {
	today := calendar.FromTime(time.Now())
	if opts.Today != nil {
		today = *opts.Today
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	if opts.Layout == "" {
		opts.Layout = calendar.DefaultLayout
	}

	cursor := today
	var selected *calendar.Date
	if opts.Initial != nil {
		initial := *opts.Initial
		selected = &initial
		cursor = initial
	}

	h := help.New()
	h.Styles = helpStyles()

	return Model{
		opts:     opts,
		today:    today,
		log:      log.With("component", "picker"),
		view:     cursor.MonthView(),
		cursor:   cursor,
		selected: selected,
		open:     opts.StartOpen,
		keys:     defaultKeyMap(),
		help:     h,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the chosen date, if any.
func (m Model) Selected() (calendar.Date, bool) {
	if m.selected == nil {
		return calendar.Date{}, false
	}
	return *m.selected, true
}

// Cancelled reports whether the user quit without choosing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Done reports whether the picker has finished.
func (m Model) Done() bool {
	return m.done
}

// IsOpen reports whether the calendar is showing.
func (m Model) IsOpen() bool {
	return m.open
}

// Month returns the month being displayed.
func (m Model) Month() calendar.MonthView {
	return m.view
}

// Cursor returns the highlighted day.
func (m Model) Cursor() calendar.Date {
	return m.cursor
}
