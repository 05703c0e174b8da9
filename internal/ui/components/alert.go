package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant AlertVariant
	Title   string
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{message: message, options: opts}
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// View renders the alert
func (a *Alert) View() string {
	slot := alertSlot(a.options.Variant)

	var content []string
	if a.options.Title != "" {
		title := Style(lipgloss.NewStyle(), Foreground(slot), Typography(TypographyVariantEmphasis))
		content = append(content, title.Render(a.options.Title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}

	frame := Style(lipgloss.NewStyle(),
		Border(BorderVariantNormal),
		BorderColour(slot),
		PaddingX(1),
	)
	return frame.Render(strings.Join(content, "\n"))
}

func alertSlot(variant AlertVariant) PaletteSlot {
	switch variant {
	case AlertVariantSuccess:
		return PaletteSuccess
	case AlertVariantWarning:
		return PaletteWarning
	case AlertVariantError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: "Error"})
}

// WarningAlert creates a warning alert
func WarningAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantWarning, Title: "Warning"})
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo, Title: "Info"})
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Title: "Selected"})
}
