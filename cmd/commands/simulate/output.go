package simulate

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"seismon/internal/alertlog"
	"seismon/internal/domain"
	"seismon/internal/monitor"

	"github.com/spf13/cobra"
)

// summary is the final state of a headless run.
type summary struct {
	Ticks             int                  `json:"ticks"`
	EventsToday       int                  `json:"events_today"`
	PeakAmplitude     float64              `json:"peak_amplitude"`
	CurrentMagnitude  float64              `json:"current_magnitude"`
	DominantFrequency float64              `json:"dominant_frequency"`
	WindowSamples     int                  `json:"window_samples"`
	AlertsEnabled     bool                 `json:"alerts_enabled"`
	Alerts            []domain.AlertRecord `json:"alerts"`
	ExportFile        string               `json:"export_file,omitempty"`
}

func buildSummary(ticks, windowSamples int, c *monitor.Controller, alerts *alertlog.Log, exportFile string) summary {
	s := c.State()
	return summary{
		Ticks:             ticks,
		EventsToday:       s.EventsToday,
		PeakAmplitude:     s.PeakAmplitude,
		CurrentMagnitude:  s.CurrentMagnitude,
		DominantFrequency: s.DominantFrequency,
		WindowSamples:     windowSamples,
		AlertsEnabled:     s.AlertsEnabled,
		Alerts:            alerts.Records(),
		ExportFile:        exportFile,
	}
}

// printSummaryJSON encodes the summary as indented JSON to stdout.
func printSummaryJSON(cmd *cobra.Command, s summary) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(s)
}

// printSummaryTable prints a vertical key-value table of the run.
func printSummaryTable(cmd *cobra.Command, s summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  Ticks:\t%d\n", s.Ticks)
	fmt.Fprintf(w, "  Events today:\t%d\n", s.EventsToday)
	fmt.Fprintf(w, "  Peak amplitude:\t%.2f\n", s.PeakAmplitude)
	fmt.Fprintf(w, "  Current magnitude:\t%.1f\n", s.CurrentMagnitude)
	fmt.Fprintf(w, "  Dominant frequency:\t%.1f Hz\n", s.DominantFrequency)
	fmt.Fprintf(w, "  Window samples:\t%d\n", s.WindowSamples)
	if s.ExportFile != "" {
		fmt.Fprintf(w, "  Exported:\t%s\n", s.ExportFile)
	}
	w.Flush()

	out := cmd.OutOrStdout()
	if len(s.Alerts) == 0 {
		fmt.Fprintln(out, "\nNo alerts recorded.")
		return
	}

	fmt.Fprintln(out, "\nRecent alerts (newest first):")
	aw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, a := range s.Alerts {
		fmt.Fprintf(aw, "  %s\t%s\t%s\n", a.Timestamp.Format("15:04:05"), a.Severity, a.Message)
	}
	aw.Flush()
}
