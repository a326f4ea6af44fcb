package domain

// Presentation collaborators. The monitor controller drives these
// through narrow interfaces so the pipeline stays independent of the
// terminal UI (or any other frontend) rendering it.

// ChartRenderer receives the visible window of the amplitude series,
// oldest first, once per successful tick. Labels and values are
// index-aligned.
type ChartRenderer interface {
	RenderSeries(labels []string, amplitudes []float64)
}

// MetricsPresenter receives the four dashboard scalars pre-formatted
// as display strings, once per tick.
type MetricsPresenter interface {
	PresentMetrics(events, peak, magnitude, frequency string)
}

// AlertPresenter receives the full alert history, newest first,
// whenever the alert log changes. It renders; the log retains.
type AlertPresenter interface {
	PresentAlerts(records []AlertRecord)
}

// SnapshotSink materializes an exported snapshot. The controller only
// constructs the table and suggests a filename.
type SnapshotSink interface {
	WriteSnapshot(filename string, data []byte) error
}
