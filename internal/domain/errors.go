package domain

import "errors"

// Sentinel errors for the monitoring core. Callers wrap these so the
// CLI and TUI can classify failures uniformly.
//
//	return fmt.Errorf("export snapshot: %w", domain.ErrEmptyDataset)
var (
	// ErrEmptyDataset indicates an export was attempted while the
	// sliding window held no samples. It is recovered locally and
	// surfaced as a warning alert; nothing in the core panics.
	ErrEmptyDataset = errors.New("empty dataset")
)
