// Package monitor orchestrates the monitoring pipeline: one tick draws
// a sample, pushes it through the sliding window, evaluates rolling
// statistics, and fans results out to the presentation collaborators.
package monitor

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"seismon/internal/alertlog"
	"seismon/internal/analysis"
	"seismon/internal/domain"
	"seismon/internal/export"
	"seismon/internal/signal"
	"seismon/internal/window"
)

// DefaultInterval is the pipeline tick period.
const DefaultInterval = 100 * time.Millisecond

// Config wires a controller. Generator, Buffer, Analyzer, and Alerts
// are required; the presentation collaborators and Snapshots are
// optional and skipped when nil. Logger defaults to a discarding
// handler and Now to time.Now.
type Config struct {
	Generator *signal.Generator
	Buffer    *window.Buffer
	Analyzer  *analysis.Analyzer
	Alerts    *alertlog.Log

	Chart     domain.ChartRenderer
	Metrics   domain.MetricsPresenter
	AlertView domain.AlertPresenter
	Snapshots domain.SnapshotSink

	Logger *slog.Logger
	Now    func() time.Time
}

// Controller owns the pipeline state machine. It starts Running with
// alerts enabled.
//
// Controller is not safe for concurrent use: ticks and user commands
// must arrive on the same logical thread of control (the Bubbletea
// update loop, or a plain headless loop).
type Controller struct {
	gen      *signal.Generator
	buffer   *window.Buffer
	analyzer *analysis.Analyzer
	alerts   *alertlog.Log

	chart     domain.ChartRenderer
	metrics   domain.MetricsPresenter
	alertView domain.AlertPresenter
	snapshots domain.SnapshotSink

	log *slog.Logger
	now func() time.Time

	state domain.MonitorState
}

// New creates a controller in the Running state.
func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		gen:       cfg.Generator,
		buffer:    cfg.Buffer,
		analyzer:  cfg.Analyzer,
		alerts:    cfg.Alerts,
		chart:     cfg.Chart,
		metrics:   cfg.Metrics,
		alertView: cfg.AlertView,
		snapshots: cfg.Snapshots,
		log:       logger,
		now:       now,
		state: domain.MonitorState{
			Running:       true,
			AlertsEnabled: cfg.Alerts.Enabled(),
		},
	}
}

// State returns a copy of the current monitor state.
func (c *Controller) State() domain.MonitorState { return c.state }

// Running reports whether ticks currently drive the pipeline.
func (c *Controller) Running() bool { return c.state.Running }

// Tick runs one pipeline pass: generate, push, update derived fields,
// evaluate, forward alerts, publish to the presenters. It is a no-op
// while monitoring is stopped; the timer that drives it keeps firing
// regardless.
func (c *Controller) Tick() {
	if !c.state.Running {
		return
	}

	r := c.gen.Generate(c.now())
	c.buffer.Push(r.Sample)

	c.state.CurrentMagnitude = r.Sample.Magnitude
	c.state.DominantFrequency = r.DominantFrequency
	if abs := math.Abs(r.Sample.Amplitude); abs > c.state.PeakAmplitude {
		c.state.PeakAmplitude = abs
	}
	if r.Event {
		c.state.EventsToday++
		c.log.Debug("seismic event", "magnitude", r.Sample.Magnitude, "amplitude", r.Sample.Amplitude)
	}

	changed := false
	for _, req := range r.Alerts {
		changed = c.append(req) || changed
	}
	for _, req := range c.analyzer.Evaluate(c.buffer) {
		changed = c.append(req) || changed
	}

	c.publishFrame()
	if changed {
		c.publishAlerts()
	}
}

// ToggleMonitoring flips between Running and Stopped, recording the
// transition in the alert log.
func (c *Controller) ToggleMonitoring() {
	c.state.Running = !c.state.Running
	if c.state.Running {
		c.notify(domain.SeverityInfo, "Monitoring resumed")
	} else {
		c.notify(domain.SeverityWarning, "Monitoring paused")
	}
	c.log.Info("monitoring toggled", "running", c.state.Running)
}

// Reset clears the sample window and zeroes the day's counters. The
// dominant frequency keeps its last value and the alert history stays
// intact apart from the reset notice itself.
func (c *Controller) Reset() {
	c.buffer.Clear()
	c.state.EventsToday = 0
	c.state.PeakAmplitude = 0
	c.state.CurrentMagnitude = 0
	c.notify(domain.SeverityInfo, "Data reset completed")
	c.publishFrame()
	c.log.Info("data reset")
}

// ToggleAlerts flips the global alerts gate and records an info alert
// naming the new state. The notice is gated by the post-toggle value:
// turning alerts off drops its own confirmation.
func (c *Controller) ToggleAlerts() {
	enabled := !c.alerts.Enabled()
	c.alerts.SetEnabled(enabled)
	c.state.AlertsEnabled = enabled
	if enabled {
		c.notify(domain.SeverityInfo, "Alerts enabled")
	} else {
		c.notify(domain.SeverityInfo, "Alerts disabled")
	}
	c.log.Info("alerts toggled", "enabled", enabled)
}

// ExportSnapshot serializes the visible window as CSV and hands it to
// the snapshot sink. It returns the suggested filename. An empty
// window fails with domain.ErrEmptyDataset, surfaced as a warning
// alert; no table is produced.
func (c *Controller) ExportSnapshot() (string, error) {
	if c.buffer.Len() == 0 {
		c.notify(domain.SeverityWarning, "No data to export")
		return "", fmt.Errorf("export snapshot: %w", domain.ErrEmptyDataset)
	}

	data := export.EncodeCSV(c.buffer.Samples())
	filename := export.Filename(c.now())

	if c.snapshots != nil {
		if err := c.snapshots.WriteSnapshot(filename, data); err != nil {
			c.log.Error("snapshot write failed", "file", filename, "err", err)
			return filename, fmt.Errorf("export snapshot: %w", err)
		}
	}

	c.notify(domain.SeverityInfo, "Data exported successfully")
	c.log.Info("snapshot exported", "file", filename, "samples", c.buffer.Len())
	return filename, nil
}

// append forwards an alert request to the log and reports whether the
// log changed.
func (c *Controller) append(req domain.AlertRequest) bool {
	return c.alerts.Append(req.Message, req.Severity)
}

// notify appends a controller-originated alert and republishes the
// alert view if anything was recorded.
func (c *Controller) notify(severity domain.Severity, message string) {
	if c.alerts.Append(message, severity) {
		c.publishAlerts()
	}
}

// publishFrame pushes the chart series and formatted metrics to their
// presenters.
func (c *Controller) publishFrame() {
	if c.chart != nil {
		samples := c.buffer.Samples()
		labels := make([]string, len(samples))
		amplitudes := make([]float64, len(samples))
		for i, s := range samples {
			labels[i] = s.Timestamp.Format("15:04:05")
			amplitudes[i] = s.Amplitude
		}
		c.chart.RenderSeries(labels, amplitudes)
	}
	if c.metrics != nil {
		c.metrics.PresentMetrics(
			fmt.Sprintf("%d", c.state.EventsToday),
			fmt.Sprintf("%.2f", c.state.PeakAmplitude),
			fmt.Sprintf("%.1f", c.state.CurrentMagnitude),
			fmt.Sprintf("%.1f Hz", c.state.DominantFrequency),
		)
	}
}

// publishAlerts pushes the alert history to its presenter.
func (c *Controller) publishAlerts() {
	if c.alertView != nil {
		c.alertView.PresentAlerts(c.alerts.Records())
	}
}
