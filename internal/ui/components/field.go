package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/pkg/calendar"
)

const (
	fieldIcon       = "▦"
	chevronClosed   = "▾"
	chevronOpen     = "▴"
	defaultFieldLen = 22
)

// Field is the closed form of a date picker: an icon, the chosen date or a
// placeholder, and a chevron showing whether the calendar is open.
type Field struct {
	value       *calendar.Date
	layout      string
	placeholder string
	open        bool
	width       int
}

// NewField creates a field that formats values with layout.
func NewField(layout, placeholder string) *Field {
	return &Field{layout: layout, placeholder: placeholder, width: defaultFieldLen}
}

// WithValue sets the displayed date. A nil value shows the placeholder.
func (f *Field) WithValue(d *calendar.Date) *Field {
	f.value = d
	return f
}

// WithOpen flips the chevron and focuses the border.
func (f *Field) WithOpen(open bool) *Field {
	f.open = open
	return f
}

// WithWidth sets the inner width. Values smaller than the content are ignored.
func (f *Field) WithWidth(width int) *Field {
	f.width = width
	return f
}

// Text returns the formatted value, or the placeholder when unset.
func (f *Field) Text() string {
	if f.value == nil {
		return f.placeholder
	}
	return calendar.Format(*f.value, f.layout)
}

// View renders the field.
func (f *Field) View() string {
	text := f.Text()
	textStyle := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody))
	if f.value == nil {
		textStyle = Style(lipgloss.NewStyle(), Typography(TypographyVariantMuted))
	}

	chevron := chevronClosed
	border := PaletteNeutral
	if f.open {
		chevron = chevronOpen
		border = PalettePrimary
	}

	left := Style(lipgloss.NewStyle(), Foreground(PalettePrimary)).Render(fieldIcon) + " " + textStyle.Render(text)
	gap := f.width - lipgloss.Width(left) - lipgloss.Width(chevron)
	if gap < 1 {
		gap = 1
	}

	frame := Style(lipgloss.NewStyle(),
		Border(BorderVariantRounded),
		BorderColour(border),
		PaddingX(1),
	)
	return frame.Render(left + strings.Repeat(" ", gap) + chevron)
}
