// Package components renders the terminal widgets of the date picker with
// lipgloss: the month calendar, the closed field, the month pager and
// alerts. Styling flows through a Theme and StyleApplier chains so every
// widget follows the configured palette.
package components
