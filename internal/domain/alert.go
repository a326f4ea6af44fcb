package domain

import "time"

// Severity classifies an alert. Ordering is informational only; the
// alert log does not prioritize by severity.
type Severity string

const (
	// SeverityInfo marks routine notices (exports, resets, toggles).
	SeverityInfo Severity = "info"
	// SeverityWarning marks elevated activity worth watching.
	SeverityWarning Severity = "warning"
	// SeverityAlert marks critical activity (highest).
	SeverityAlert Severity = "alert"
)

// AlertRequest asks the alert log to record a message. Producers
// (signal generator, pattern analyzer) emit requests; the controller
// forwards them, so a request carries no timestamp of its own.
type AlertRequest struct {
	Severity Severity
	Message  string
}

// AlertRecord is a stamped, immutable entry in the alert log.
type AlertRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
}
