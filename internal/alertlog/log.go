// Package alertlog keeps the bounded history of recent alerts shown on
// the dashboard.
package alertlog

import (
	"time"

	"seismon/internal/domain"
)

// DefaultCapacity is the number of alerts the dashboard retains.
const DefaultCapacity = 5

// Log is a bounded alert history. Records are reported newest first;
// the oldest record is evicted once the capacity is exceeded. There is
// no way to remove an individual record.
//
// Appends are gated by the global alerts-enabled flag, checked at call
// time, so a disabled log silently drops requests while keeping its
// existing history.
type Log struct {
	records  []domain.AlertRecord // oldest first; reversed on read
	capacity int
	enabled  bool
	now      func() time.Time
}

// New creates an enabled log. Capacities below 1 fall back to
// DefaultCapacity.
func New(capacity int) *Log {
	return NewWithClock(capacity, time.Now)
}

// NewWithClock creates a log that stamps records using the given
// clock. The simulate command and tests inject synthetic clocks here.
func NewWithClock(capacity int, now func() time.Time) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		records:  make([]domain.AlertRecord, 0, capacity),
		capacity: capacity,
		enabled:  true,
		now:      now,
	}
}

// Append records a new alert stamped with the current time, evicting
// the oldest entry if the log is full. It reports whether anything was
// recorded; a disabled log drops the request and returns false.
func (l *Log) Append(message string, severity domain.Severity) bool {
	if !l.enabled {
		return false
	}
	if len(l.records) == l.capacity {
		copy(l.records, l.records[1:])
		l.records = l.records[:l.capacity-1]
	}
	l.records = append(l.records, domain.AlertRecord{
		Timestamp: l.now(),
		Severity:  severity,
		Message:   message,
	})
	return true
}

// Records returns a copy of the history, newest first.
func (l *Log) Records() []domain.AlertRecord {
	out := make([]domain.AlertRecord, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

// Len returns the number of retained records.
func (l *Log) Len() int { return len(l.records) }

// Enabled reports whether appends are currently recorded.
func (l *Log) Enabled() bool { return l.enabled }

// SetEnabled flips the global gate. Disabling does not discard the
// existing history.
func (l *Log) SetEnabled(enabled bool) { l.enabled = enabled }
