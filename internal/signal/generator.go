// Package signal synthesizes the seismic readings the dashboard
// monitors. There is no real sensor behind it; every tick is uniform
// background noise with a small chance of a magnitude-scaled event.
package signal

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"seismon/internal/domain"
)

const (
	// DefaultEventProbability is the per-tick chance of a seismic event.
	DefaultEventProbability = 0.02

	// alertMagnitude and criticalMagnitude are the thresholds above
	// which an event tick emits a warning or alert request.
	alertMagnitude    = 4.0
	criticalMagnitude = 6.0
)

// Reading is the outcome of one generator tick. The controller applies
// the derived fields to the monitor state; the generator itself holds
// no signal state.
type Reading struct {
	Sample domain.Sample
	// Event reports whether this tick was a seismic event (the day's
	// event counter should advance).
	Event bool
	// DominantFrequency is redrawn uniformly from [0.5, 3.5) every
	// tick. It is not derived from the signal; the simulation keeps it
	// as an independent display value.
	DominantFrequency float64
	// Alerts carries requests for event magnitudes above the alert
	// threshold.
	Alerts []domain.AlertRequest
}

// Generator draws synthetic samples from a private rand source.
type Generator struct {
	rng       *rand.Rand
	eventProb float64
}

// New creates a generator with the default event probability and a
// time-based seed.
func New() *Generator {
	return NewDeterministic(time.Now().UnixNano(), DefaultEventProbability)
}

// NewDeterministic creates a generator with a fixed seed and event
// probability. Tests use probability 0 or 1 to force quiet or
// event-only ticks.
func NewDeterministic(seed int64, eventProbability float64) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		eventProb: eventProbability,
	}
}

// Generate produces the reading for one tick at the given instant.
//
// Baseline noise is uniform in [-1, 1). On an event tick the event
// magnitude is uniform in [1, 7) and a sinusoidal component scaled by
// it is added to the baseline; quiet ticks derive the magnitude from
// the amplitude instead.
func (g *Generator) Generate(now time.Time) Reading {
	amplitude := g.rng.Float64()*2 - 1
	event := g.rng.Float64() < g.eventProb

	var magnitude float64
	var alerts []domain.AlertRequest
	if event {
		magnitude = 1 + g.rng.Float64()*6
		amplitude += math.Sin(float64(now.UnixMilli())*0.01) * magnitude * 10
		if magnitude > alertMagnitude {
			severity := domain.SeverityWarning
			if magnitude > criticalMagnitude {
				severity = domain.SeverityAlert
			}
			alerts = append(alerts, domain.AlertRequest{
				Severity: severity,
				Message:  fmt.Sprintf("Seismic event detected - Magnitude %.1f", magnitude),
			})
		}
	} else {
		magnitude = math.Abs(amplitude) / 10
	}

	return Reading{
		Sample: domain.Sample{
			Timestamp: now,
			Amplitude: amplitude,
			Magnitude: magnitude,
		},
		Event:             event,
		DominantFrequency: 0.5 + g.rng.Float64()*3,
		Alerts:            alerts,
	}
}
