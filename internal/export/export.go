// Package export turns the visible sample window into a CSV snapshot
// and materializes it on disk.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"seismon/internal/domain"
)

// timeLayout is how sample timestamps appear in the CSV, matching the
// dashboard's time axis labels.
const timeLayout = "15:04:05"

// EncodeCSV serializes samples in the order given, one row per sample
// under a Time,Amplitude,Magnitude header.
func EncodeCSV(samples []domain.Sample) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Time", "Amplitude", "Magnitude"})
	for _, s := range samples {
		w.Write([]string{
			s.Timestamp.Format(timeLayout),
			strconv.FormatFloat(s.Amplitude, 'f', 2, 64),
			strconv.FormatFloat(s.Magnitude, 'f', 2, 64),
		})
	}
	w.Flush()

	return buf.Bytes()
}

// Filename suggests the snapshot filename for an export taken at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("seismic_data_%s.csv", t.Format("2006-01-02"))
}

// DirSink writes snapshots into a directory. It implements
// domain.SnapshotSink.
type DirSink struct {
	Dir string
}

// WriteSnapshot writes data to <dir>/<filename>, creating the
// directory if needed.
func (s DirSink) WriteSnapshot(filename string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
