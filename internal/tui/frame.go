package tui

import "seismon/internal/domain"

// Frame is the dashboard's view of the pipeline: the controller pushes
// into it through the presentation ports and the Bubbletea model reads
// it back out after each synchronous Tick. All writes and reads happen
// inside the update loop, so no locking is needed.
type Frame struct {
	labels     []string
	amplitudes []float64

	events    string
	peak      string
	magnitude string
	frequency string

	alerts        []domain.AlertRecord
	alertsChanged bool
}

// NewFrame creates an empty frame.
func NewFrame() *Frame {
	return &Frame{
		events:    "0",
		peak:      "0.00",
		magnitude: "0.0",
		frequency: "0.0 Hz",
	}
}

// RenderSeries implements domain.ChartRenderer.
func (f *Frame) RenderSeries(labels []string, amplitudes []float64) {
	f.labels = labels
	f.amplitudes = amplitudes
}

// PresentMetrics implements domain.MetricsPresenter.
func (f *Frame) PresentMetrics(events, peak, magnitude, frequency string) {
	f.events = events
	f.peak = peak
	f.magnitude = magnitude
	f.frequency = frequency
}

// PresentAlerts implements domain.AlertPresenter.
func (f *Frame) PresentAlerts(records []domain.AlertRecord) {
	f.alerts = records
	f.alertsChanged = true
}

// takeAlertsChanged reports whether the alert history changed since
// the last call and clears the flag.
func (f *Frame) takeAlertsChanged() bool {
	changed := f.alertsChanged
	f.alertsChanged = false
	return changed
}
