package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if !m.open {
		switch {
		case key.Matches(msg, m.keys.Select):
			m.open = true
		case key.Matches(msg, m.keys.Close):
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.open = false
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		m.shiftMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.shiftMonth(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.jumpToPage(m.view.Page() - 1)
	case key.Matches(msg, m.keys.NextPage):
		m.jumpToPage(m.view.Page() + 1)
	case key.Matches(msg, m.keys.FirstPage):
		m.jumpToPage(1)
	case key.Matches(msg, m.keys.LastPage):
		m.jumpToPage(calendar.MonthsPerYear)
	case key.Matches(msg, m.keys.Today):
		m.cursor = m.today
		m.view = m.today.MonthView()
	case key.Matches(msg, m.keys.Select):
		return m.selectCursor()
	}
	return m, nil
}

// moveCursor shifts the cursor by days. The displayed month follows it.
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDays(days)
	m.view = m.cursor.MonthView()
}

// shiftMonth changes the displayed month and keeps the cursor on the same
// day number, clamped to the length of the new month.
func (m *Model) shiftMonth(delta int) {
	m.showMonth(m.view.Add(delta))
}

// jumpToPage shows the given month page of the displayed year. The pager
// does not wrap into other years, so moves past January or December are
// ignored.
func (m *Model) jumpToPage(page int) {
	view, ok := m.view.JumpToPage(page)
	if !ok {
		m.log.WithFields(map[string]any{
			"page":    page,
			"current": m.view.Page(),
		}).Debug("page unchanged")
		return
	}
	m.showMonth(view)
}

func (m *Model) showMonth(view calendar.MonthView) {
	m.view = view
	n, err := calendar.DaysInMonth(view.Year, view.Month)
	if err != nil {
		return
	}
	m.cursor = calendar.NewDate(view.Year, view.Month, min(m.cursor.Day, n))
}

// selectCursor commits the cursor as the selection. A rejected date leaves
// the model unchanged.
func (m Model) selectCursor() (tea.Model, tea.Cmd) {
	d, err := calendar.SelectDate(m.cursor.Year, m.cursor.Month, m.cursor.Day, m.opts.Bounds)
	if err != nil {
		m.log.WithFields(map[string]any{
			"date":   m.cursor.String(),
			"bounds": m.opts.Bounds.String(),
		}).Debug("selection rejected")
		return m, nil
	}

	m.selected = &d
	m.open = false
	m.log.With("date", d.String()).Debug("date selected")
	if m.opts.QuitOnSelect {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}
