package monitor

import (
	"errors"
	"testing"
	"time"

	"seismon/internal/alertlog"
	"seismon/internal/analysis"
	"seismon/internal/domain"
	"seismon/internal/signal"
	"seismon/internal/window"
)

// memSink captures snapshot writes in memory.
type memSink struct {
	filename string
	data     []byte
	writes   int
}

func (m *memSink) WriteSnapshot(filename string, data []byte) error {
	m.filename = filename
	m.data = data
	m.writes++
	return nil
}

// framePresenter records the most recent presenter pushes.
type framePresenter struct {
	labels     []string
	amplitudes []float64
	frames     int

	alerts      []domain.AlertRecord
	alertPushes int
}

func (f *framePresenter) RenderSeries(labels []string, amplitudes []float64) {
	f.labels = labels
	f.amplitudes = amplitudes
	f.frames++
}

func (f *framePresenter) PresentMetrics(events, peak, magnitude, frequency string) {}

func (f *framePresenter) PresentAlerts(records []domain.AlertRecord) {
	f.alerts = records
	f.alertPushes++
}

type harness struct {
	controller *Controller
	buffer     *window.Buffer
	alerts     *alertlog.Log
	sink       *memSink
	frame      *framePresenter
}

// newHarness builds a controller over a synthetic clock advancing
// 100ms per call. eventProb 0 keeps ticks quiet, 1 makes every tick an
// event.
func newHarness(eventProb float64) *harness {
	clock := func() func() time.Time {
		t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		return func() time.Time {
			t = t.Add(100 * time.Millisecond)
			return t
		}
	}()

	buf := window.New(window.DefaultCapacity)
	alerts := alertlog.NewWithClock(alertlog.DefaultCapacity, clock)
	sink := &memSink{}
	frame := &framePresenter{}

	c := New(Config{
		Generator: signal.NewDeterministic(1, eventProb),
		Buffer:    buf,
		Analyzer:  analysis.New(),
		Alerts:    alerts,
		Chart:     frame,
		Metrics:   frame,
		AlertView: frame,
		Snapshots: sink,
		Now:       clock,
	})
	return &harness{controller: c, buffer: buf, alerts: alerts, sink: sink, frame: frame}
}

func TestNew_StartsRunningWithAlertsEnabled(t *testing.T) {
	h := newHarness(0)
	s := h.controller.State()
	if !s.Running || !s.AlertsEnabled {
		t.Fatalf("initial state = %+v, want running with alerts enabled", s)
	}
}

func TestTick_PushesSampleAndUpdatesState(t *testing.T) {
	h := newHarness(0)
	h.controller.Tick()

	if h.buffer.Len() != 1 {
		t.Fatalf("buffer len = %d after one tick, want 1", h.buffer.Len())
	}
	s := h.controller.State()
	if s.PeakAmplitude <= 0 {
		t.Fatalf("peak amplitude = %v, want > 0", s.PeakAmplitude)
	}
	if s.DominantFrequency < 0.5 || s.DominantFrequency >= 3.5 {
		t.Fatalf("dominant frequency = %v, want in [0.5, 3.5)", s.DominantFrequency)
	}
	if h.frame.frames != 1 {
		t.Fatalf("chart published %d frames, want 1", h.frame.frames)
	}
	if len(h.frame.labels) != 1 || len(h.frame.amplitudes) != 1 {
		t.Fatalf("frame series lengths = %d/%d, want 1/1", len(h.frame.labels), len(h.frame.amplitudes))
	}
}

func TestTick_EventTicksCountEvents(t *testing.T) {
	h := newHarness(1)
	for i := 0; i < 20; i++ {
		h.controller.Tick()
	}
	if got := h.controller.State().EventsToday; got != 20 {
		t.Fatalf("events today = %d after 20 event ticks, want 20", got)
	}
}

func TestTick_NoOpWhileStopped(t *testing.T) {
	h := newHarness(0)
	h.controller.ToggleMonitoring() // stop

	h.controller.Tick()
	h.controller.Tick()
	if h.buffer.Len() != 0 {
		t.Fatalf("buffer len = %d while stopped, want 0", h.buffer.Len())
	}
	if h.frame.frames != 0 {
		t.Fatalf("chart published %d frames while stopped, want 0", h.frame.frames)
	}
}

func TestToggleMonitoring_RoundTripAndMessages(t *testing.T) {
	h := newHarness(0)

	h.controller.ToggleMonitoring()
	if h.controller.Running() {
		t.Fatal("still running after first toggle")
	}
	h.controller.ToggleMonitoring()
	if !h.controller.Running() {
		t.Fatal("not running after second toggle")
	}

	records := h.alerts.Records()
	if len(records) != 2 {
		t.Fatalf("got %d alerts after two toggles, want 2", len(records))
	}
	if records[0].Message != "Monitoring resumed" || records[0].Severity != domain.SeverityInfo {
		t.Fatalf("newest alert = %+v, want info Monitoring resumed", records[0])
	}
	if records[1].Message != "Monitoring paused" || records[1].Severity != domain.SeverityWarning {
		t.Fatalf("older alert = %+v, want warning Monitoring paused", records[1])
	}
}

func TestReset_Semantics(t *testing.T) {
	h := newHarness(0)
	for i := 0; i < 15; i++ {
		h.controller.Tick()
	}
	freqBefore := h.controller.State().DominantFrequency
	if freqBefore == 0 {
		t.Fatal("precondition: dominant frequency not set")
	}
	h.alerts.Append("prior entry", domain.SeverityInfo)

	h.controller.Reset()

	s := h.controller.State()
	if h.buffer.Len() != 0 {
		t.Fatalf("buffer len = %d after reset, want 0", h.buffer.Len())
	}
	if s.EventsToday != 0 || s.PeakAmplitude != 0 || s.CurrentMagnitude != 0 {
		t.Fatalf("counters not zeroed: %+v", s)
	}
	if s.DominantFrequency != freqBefore {
		t.Fatalf("dominant frequency changed on reset: %v -> %v", freqBefore, s.DominantFrequency)
	}

	// Reset appends its notice but never clears prior history.
	records := h.alerts.Records()
	if records[0].Message != "Data reset completed" {
		t.Fatalf("newest alert = %q, want reset notice", records[0].Message)
	}
	if records[1].Message != "prior entry" {
		t.Fatalf("prior alert history lost: %+v", records)
	}
}

func TestExportSnapshot_EmptyBuffer(t *testing.T) {
	h := newHarness(0)

	_, err := h.controller.ExportSnapshot()
	if !errors.Is(err, domain.ErrEmptyDataset) {
		t.Fatalf("err = %v, want ErrEmptyDataset", err)
	}
	if h.sink.writes != 0 {
		t.Fatalf("sink received %d writes for empty buffer, want 0", h.sink.writes)
	}
	newest := h.alerts.Records()[0]
	if newest.Message != "No data to export" || newest.Severity != domain.SeverityWarning {
		t.Fatalf("newest alert = %+v, want warning No data to export", newest)
	}
}

func TestExportSnapshot_WritesTable(t *testing.T) {
	h := newHarness(0)
	for i := 0; i < 3; i++ {
		h.controller.Tick()
	}

	filename, err := h.controller.ExportSnapshot()
	if err != nil {
		t.Fatalf("ExportSnapshot error: %v", err)
	}
	if filename != "seismic_data_2025-06-01.csv" {
		t.Fatalf("filename = %q, want seismic_data_2025-06-01.csv", filename)
	}
	if h.sink.writes != 1 {
		t.Fatalf("sink writes = %d, want 1", h.sink.writes)
	}
	lines := len(h.sink.data)
	if lines == 0 {
		t.Fatal("sink received empty table")
	}
	if h.alerts.Records()[0].Message != "Data exported successfully" {
		t.Fatalf("newest alert = %q, want export success notice", h.alerts.Records()[0].Message)
	}
}

func TestToggleAlerts_PostToggleGating(t *testing.T) {
	h := newHarness(0)

	// Disabling: the confirmation checks the new (disabled) value, so
	// nothing is recorded.
	h.controller.ToggleAlerts()
	if h.controller.State().AlertsEnabled {
		t.Fatal("alerts still enabled after toggle")
	}
	if h.alerts.Len() != 0 {
		t.Fatalf("alert log len = %d after disabling, want 0 (notice gated by new value)", h.alerts.Len())
	}

	// Re-enabling is recorded.
	h.controller.ToggleAlerts()
	if !h.controller.State().AlertsEnabled {
		t.Fatal("alerts still disabled after second toggle")
	}
	records := h.alerts.Records()
	if len(records) != 1 || records[0].Message != "Alerts enabled" {
		t.Fatalf("records after re-enable = %+v, want single Alerts enabled notice", records)
	}
}

func TestTick_AlertsDisabledSuppressesPipelineAlerts(t *testing.T) {
	h := newHarness(1) // every tick is an event; many have magnitude > 4
	h.controller.ToggleAlerts()

	for i := 0; i < 50; i++ {
		h.controller.Tick()
	}
	if h.alerts.Len() != 0 {
		t.Fatalf("alert log len = %d with alerts disabled, want 0", h.alerts.Len())
	}
	if h.frame.alertPushes != 0 {
		t.Fatalf("alert presenter pushed %d times with alerts disabled, want 0", h.frame.alertPushes)
	}
}

func TestTick_WindowStaysBounded(t *testing.T) {
	h := newHarness(0)
	for i := 0; i < 250; i++ {
		h.controller.Tick()
	}
	if h.buffer.Len() != window.DefaultCapacity {
		t.Fatalf("buffer len = %d after 250 ticks, want %d", h.buffer.Len(), window.DefaultCapacity)
	}
	if len(h.frame.amplitudes) != window.DefaultCapacity {
		t.Fatalf("frame series len = %d, want %d", len(h.frame.amplitudes), window.DefaultCapacity)
	}
}
