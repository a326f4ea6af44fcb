package components

import (
	"seismon/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one labelled scalar for the metrics row.
type Metric struct {
	Label string
	Value string
}

// MetricsRow renders the dashboard scalars as a row of cards. Cards
// share the available width evenly.
func MetricsRow(width int, metrics []Metric) string {
	if len(metrics) == 0 {
		return ""
	}

	cardWidth := width/len(metrics) - 4
	if cardWidth < 8 {
		cardWidth = 8
	}

	cards := make([]string, len(metrics))
	for i, m := range metrics {
		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.Label.Render(m.Label),
			styles.Value.Render(m.Value),
		)
		cards[i] = styles.Card.Width(cardWidth).Render(body)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
