package components

import (
	"fmt"

	"seismon/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartHeight is the fixed height of the amplitude plot.
const chartHeight = 8

// AmplitudeChart renders the rolling amplitude series as a line chart
// with a caption describing the visible window. Labels and values are
// index-aligned, oldest first.
func AmplitudeChart(labels []string, values []float64, width int) string {
	header := styles.Label.Render("Amplitude (μm/s)")
	if len(values) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			styles.MutedText.Render("waiting for samples..."),
		)
	}

	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	chart := asciigraph.Plot(values,
		asciigraph.Height(chartHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	)

	caption := styles.MutedText.Render(windowCaption(labels, len(values)))
	return lipgloss.JoinVertical(lipgloss.Left, header, chart, caption)
}

// windowCaption describes the time span of the visible window.
func windowCaption(labels []string, n int) string {
	if len(labels) == 0 {
		return fmt.Sprintf("  %d samples", n)
	}
	return fmt.Sprintf("  %d samples  %s to %s", n, labels[0], labels[len(labels)-1])
}
