// Package components provides reusable Bubbletea UI building blocks
// for the seismon TUI. These are render-only helpers (not tea.Model)
// used by the dashboard model to compose its view.
package components

import (
	"strings"

	"seismon/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar: app name and state badge
// on the left, wall clock on the right.
func Header(width int, state string, clock string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("seismon")
	if state != "" {
		left += styles.MutedText.Render("  ") + state
	}
	right := styles.MutedText.Render(clock)

	gap := max(width-4-lipgloss.Width(left)-lipgloss.Width(right), 1)
	content := left + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(content)
}
