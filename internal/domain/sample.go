package domain

import "time"

// Sample is one synthesized seismic reading at a point in time.
// Samples are immutable once created; the sliding window owns them
// until they are evicted.
type Sample struct {
	Timestamp time.Time
	// Amplitude is the signed ground-velocity reading (μm/s-like unit).
	Amplitude float64
	// Magnitude is the derived event magnitude for this tick, >= 0.
	Magnitude float64
}

// MonitorState holds the scalar dashboard fields derived from the
// signal. It is mutated only by the monitor controller in response to
// ticks or user commands.
type MonitorState struct {
	Running       bool
	AlertsEnabled bool

	EventsToday       int
	PeakAmplitude     float64
	CurrentMagnitude  float64
	DominantFrequency float64
}
