// Package analysis computes rolling statistics over the most recent
// samples and maps them to alert requests via a tiered threshold
// policy.
package analysis

import (
	"math"

	"seismon/internal/domain"
	"seismon/internal/window"

	"github.com/montanaflynn/stats"
)

const (
	// windowSize is the number of recent samples the rolling
	// statistics are computed over. Evaluate produces nothing until
	// the buffer holds at least this many.
	windowSize = 10

	meanWarningLevel  = 15
	meanCriticalLevel = 25
	varianceLevel     = 50
)

const (
	msgCritical  = "CRITICAL: Extremely high seismic activity - Potential major event"
	msgElevated  = "High seismic activity detected - Increased monitoring recommended"
	msgIrregular = "Irregular seismic patterns detected - Anomalous activity"
)

// Analyzer classifies anomaly severity from the sliding window.
// The zero value is not usable; construct with New.
type Analyzer struct{}

// New creates an analyzer with the standard thresholds.
func New() *Analyzer { return &Analyzer{} }

// Evaluate inspects the ten most recent samples and returns zero or
// more alert requests.
//
// The mean band and the variance check are independent: a window can
// trip both (high sustained activity that is also irregular). All
// comparisons are strict. Variance is population variance (divide by
// n), matching how the thresholds were calibrated.
func (a *Analyzer) Evaluate(buf *window.Buffer) []domain.AlertRequest {
	if buf.Len() < windowSize {
		return nil
	}

	recent := buf.Latest(windowSize)
	abs := make([]float64, len(recent))
	for i, s := range recent {
		abs[i] = math.Abs(s.Amplitude)
	}

	mean, err := stats.Mean(abs)
	if err != nil {
		return nil
	}

	var requests []domain.AlertRequest
	switch {
	case mean > meanCriticalLevel:
		requests = append(requests, domain.AlertRequest{
			Severity: domain.SeverityAlert,
			Message:  msgCritical,
		})
	case mean > meanWarningLevel:
		requests = append(requests, domain.AlertRequest{
			Severity: domain.SeverityWarning,
			Message:  msgElevated,
		})
	}

	variance, err := stats.PopulationVariance(abs)
	if err != nil {
		return requests
	}
	if variance > varianceLevel {
		requests = append(requests, domain.AlertRequest{
			Severity: domain.SeverityInfo,
			Message:  msgIrregular,
		})
	}

	return requests
}
