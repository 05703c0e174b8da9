package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
)

// View renders the field and, while open, the calendar and month pager.
func (m Model) View() string {
	sections := []string{m.field().View()}

	if m.open {
		cells, err := m.view.Grid(m.selected, m.today, m.opts.Bounds)
		if err != nil {
			sections = append(sections, components.ErrorAlert(err.Error()).View())
		} else {
			cal := components.NewCalendar(m.view, cells).
				WithCursor(m.cursor).
				WithFocus(true)
			sections = append(sections, cal.View())
			if pager := components.MonthPagination(m.view.Month, m.opts.PageSiblings).View(); pager != "" {
				sections = append(sections, pager)
			}
		}
	}

	sections = append(sections, sectionStyle.Render(m.help.View(m.helpKeys())))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) field() *components.Field {
	return components.NewField(m.opts.Layout, m.opts.Placeholder).
		WithValue(m.selected).
		WithOpen(m.open).
		WithWidth(components.CalendarWidth)
}

func (m Model) helpKeys() help.KeyMap {
	if m.open {
		return m.keys
	}
	return closedKeyMap{keys: m.keys}
}
