// Package dashboard wires the monitoring pipeline to the live
// terminal UI.
package dashboard

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"seismon/internal/alertlog"
	"seismon/internal/analysis"
	"seismon/internal/export"
	"seismon/internal/monitor"
	"seismon/internal/signal"
	"seismon/internal/tui"
	"seismon/internal/window"

	"github.com/spf13/cobra"
)

// debugLogFile receives slog output under --debug. The TUI owns the
// terminal, so logs can never go to stdout or stderr.
const debugLogFile = "seismon.log"

// NewCommand creates the dashboard command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Run the live seismic monitoring dashboard",
		Long: `Open the full-screen terminal dashboard: a rolling amplitude chart,
magnitude trend, summary metrics, and the five most recent alerts.

Keys: [m] pause/resume  [r] reset  [e] export CSV  [a] toggle alerts  [q] quit`,
		RunE: runDashboard,
	}

	cmd.Flags().Duration("interval", monitor.DefaultInterval, "pipeline tick interval")
	cmd.Flags().Int("window", window.DefaultCapacity, "sliding window capacity in samples")
	cmd.Flags().Bool("no-alerts", false, "start with alerts disabled")
	cmd.Flags().String("export-dir", ".", "directory snapshot exports are written to")
	cmd.Flags().Bool("debug", false, "write debug logs to "+debugLogFile)

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetDuration("interval")
	capacity, _ := cmd.Flags().GetInt("window")
	noAlerts, _ := cmd.Flags().GetBool("no-alerts")
	exportDir, _ := cmd.Flags().GetString("export-dir")
	debug, _ := cmd.Flags().GetBool("debug")

	logger, closeLog, err := newLogger(debug)
	if err != nil {
		return err
	}
	defer closeLog()

	alerts := alertlog.New(alertlog.DefaultCapacity)
	alerts.SetEnabled(!noAlerts)

	frame := tui.NewFrame()
	controller := monitor.New(monitor.Config{
		Generator: signal.New(),
		Buffer:    window.New(capacity),
		Analyzer:  analysis.New(),
		Alerts:    alerts,
		Chart:     frame,
		Metrics:   frame,
		AlertView: frame,
		Snapshots: export.DirSink{Dir: exportDir},
		Logger:    logger,
	})

	return tui.Run(tui.Options{
		Controller: controller,
		Frame:      frame,
		Interval:   interval,
	})
}

// newLogger returns a slog.Logger and a cleanup func. Without --debug
// the logger discards everything.
func newLogger(debug bool) (*slog.Logger, func(), error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}
