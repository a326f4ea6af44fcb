package components

import (
	"strings"
	"testing"
)

func TestAmplitudeChart_EmptySeries(t *testing.T) {
	got := AmplitudeChart(nil, nil, 80)
	if !strings.Contains(got, "waiting for samples") {
		t.Fatalf("empty chart = %q, want placeholder text", got)
	}
}

func TestAmplitudeChart_RendersSeries(t *testing.T) {
	labels := []string{"12:00:00", "12:00:01", "12:00:02"}
	values := []float64{-0.5, 2.0, 0.25}

	got := AmplitudeChart(labels, values, 80)
	if !strings.Contains(got, "3 samples") {
		t.Errorf("chart caption missing sample count:\n%s", got)
	}
	if !strings.Contains(got, "12:00:00 to 12:00:02") {
		t.Errorf("chart caption missing window span:\n%s", got)
	}
}

func TestWindowCaption_NoLabels(t *testing.T) {
	if got := windowCaption(nil, 4); !strings.Contains(got, "4 samples") {
		t.Fatalf("got %q, want sample count", got)
	}
}

func TestMetricsRow_OneCardPerMetric(t *testing.T) {
	got := MetricsRow(100, []Metric{
		{Label: "Events today", Value: "2"},
		{Label: "Peak amplitude", Value: "31.20"},
	})
	if !strings.Contains(got, "Events today") || !strings.Contains(got, "31.20") {
		t.Fatalf("metrics row missing content:\n%s", got)
	}
}

func TestFooter_TooNarrowRendersNothing(t *testing.T) {
	if got := Footer(5, []KeyBinding{{Key: "q", Desc: "quit"}}); got != "" {
		t.Fatalf("narrow footer = %q, want empty", got)
	}
}
