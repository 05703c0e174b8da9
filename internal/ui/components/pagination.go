package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
	"github.com/alexisbeaulieu97/datepick/pkg/pagination"
)

// Pagination renders a compact pager with previous/next arrows.
type Pagination struct {
	current  int
	total    int
	siblings int
}

// NewPagination creates a pager for current out of total pages.
func NewPagination(current, total, siblings int) *Pagination {
	return &Pagination{current: current, total: total, siblings: siblings}
}

// MonthPagination pages through the twelve months of a year, with the
// 0-based month as the current page.
func MonthPagination(month, siblings int) *Pagination {
	return NewPagination(month+1, calendar.MonthsPerYear, siblings)
}

// Items returns the page list being rendered.
func (p *Pagination) Items() []pagination.Item {
	return pagination.Pages(p.current, p.total, p.siblings)
}

// View renders the pager, or nothing when there is a single page.
func (p *Pagination) View() string {
	items := p.Items()
	if len(items) == 0 {
		return ""
	}

	muted := Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted), PaddingX(1))
	normal := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody), PaddingX(1))
	current := Style(lipgloss.NewStyle(), Background(PalettePrimary), Typography(TypographyVariantEmphasis), PaddingX(1))

	arrow := func(glyph string, enabled bool) string {
		if enabled {
			return normal.Render(glyph)
		}
		return muted.Render(glyph)
	}

	parts := make([]string, 0, len(items)+2)
	parts = append(parts, arrow(prevGlyph, pagination.HasPrevious(p.current)))
	for _, item := range items {
		switch {
		case item.Ellipsis:
			parts = append(parts, muted.Render(item.Label()))
		case item.Current:
			parts = append(parts, current.Render(item.Label()))
		default:
			parts = append(parts, normal.Render(item.Label()))
		}
	}
	parts = append(parts, arrow(nextGlyph, pagination.HasNext(p.current, p.total)))

	return strings.Join(parts, "")
}
