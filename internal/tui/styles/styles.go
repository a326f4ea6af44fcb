package styles

import (
	"github.com/charmbracelet/lipgloss"

	"seismon/internal/domain"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Label is used for field names in the metrics cards.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in the metrics cards.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorText is for error messages in the status bar.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)

// --- Severity badges ---

// SeverityStyle returns the text style for an alert severity.
func SeverityStyle(severity domain.Severity) lipgloss.Style {
	switch severity {
	case domain.SeverityAlert:
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	case domain.SeverityWarning:
		return lipgloss.NewStyle().Foreground(Yellow)
	default:
		return lipgloss.NewStyle().Foreground(Green)
	}
}

// StateIndicator returns a small dot + label colored for the monitor
// run state.
func StateIndicator(running bool) string {
	if running {
		style := lipgloss.NewStyle().Foreground(Green).Bold(true)
		return style.Render("●") + " " + style.Render("monitoring")
	}
	style := lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	return style.Render("●") + " " + style.Render("paused")
}

// --- Layout components ---

var (
	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer.
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}
