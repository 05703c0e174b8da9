package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
)

func helpStyles() help.Styles {
	styles := help.New().Styles
	muted := components.Style(lipgloss.NewStyle(), components.Typography(components.TypographyVariantMuted))
	keyStyle := components.Style(lipgloss.NewStyle(), components.Foreground(components.PalettePrimary))

	styles.ShortKey = keyStyle
	styles.FullKey = keyStyle
	styles.ShortDesc = muted
	styles.FullDesc = muted
	styles.ShortSeparator = muted
	styles.FullSeparator = muted
	return styles
}

var sectionStyle = lipgloss.NewStyle().MarginTop(1)
