// Package tui renders the live seismic dashboard: rolling amplitude
// chart, magnitude sparkline, metrics cards, and the recent alert
// table, driven by a periodic pipeline tick.
package tui

import (
	"fmt"
	"time"

	"seismon/internal/monitor"
	"seismon/internal/tui/components"
	"seismon/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---

// pipelineTickMsg drives one pipeline pass. The timer keeps firing
// while monitoring is paused; the controller ignores those ticks.
type pipelineTickMsg time.Time

// clockTickMsg refreshes the header clock once a second. It is
// independent of the pipeline and touches none of its data.
type clockTickMsg time.Time

// --- Model ---

const (
	alertTableHeight = 7
	sparklineHeight  = 4
)

type dashboardModel struct {
	controller *monitor.Controller
	frame      *Frame
	interval   time.Duration

	spark      sparkline.Model
	alertTable table.Model

	clock     time.Time
	status    string
	statusErr bool

	width, height int
}

func newDashboardModel(controller *monitor.Controller, frame *Frame, interval time.Duration) dashboardModel {
	t := table.New()
	t.SetColumns(alertColumns(60))
	t.SetHeight(alertTableHeight)

	return dashboardModel{
		controller: controller,
		frame:      frame,
		interval:   interval,
		spark:      sparkline.New(40, sparklineHeight),
		alertTable: t,
		clock:      time.Now(),
	}
}

func alertColumns(width int) []table.Column {
	msgWidth := width - 10 - 9 - 6
	if msgWidth < 20 {
		msgWidth = 20
	}
	return []table.Column{
		{Title: "TIME", Width: 10},
		{Title: "SEVERITY", Width: 9},
		{Title: "MESSAGE", Width: msgWidth},
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		schedulePipelineTick(m.interval),
		scheduleClockTick(),
	)
}

func schedulePipelineTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return pipelineTickMsg(t) })
}

func scheduleClockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.alertTable.SetColumns(alertColumns(m.width - 8))
		m.alertTable.SetWidth(m.width - 6)
		m.spark.Resize(max(m.width/3, 20), sparklineHeight)
		return m, nil

	case pipelineTickMsg:
		// The whole pipeline runs synchronously inside Update, so the
		// buffer, state, and alert log are only ever touched from this
		// single logical thread.
		m.controller.Tick()
		if m.controller.Running() {
			m.spark.Push(m.controller.State().CurrentMagnitude)
			m.spark.Draw()
		}
		if m.frame.takeAlertsChanged() {
			m.rebuildAlertRows()
		}
		return m, schedulePipelineTick(m.interval)

	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, scheduleClockTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "m":
			m.controller.ToggleMonitoring()
			if m.controller.Running() {
				m.setStatus("Monitoring resumed", false)
			} else {
				m.setStatus("Monitoring paused", false)
			}
			m.rebuildAlertRows()
			return m, nil

		case "r":
			m.controller.Reset()
			m.rebuildAlertRows()
			m.setStatus("Data reset completed", false)
			return m, nil

		case "e":
			filename, err := m.controller.ExportSnapshot()
			m.rebuildAlertRows()
			if err != nil {
				m.setStatus(fmt.Sprintf("Export failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("Exported %s", filename), false)
			}
			return m, nil

		case "a":
			m.controller.ToggleAlerts()
			m.rebuildAlertRows()
			if m.controller.State().AlertsEnabled {
				m.setStatus("Alerts enabled", false)
			} else {
				m.setStatus("Alerts disabled", false)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.alertTable, cmd = m.alertTable.Update(msg)
	return m, cmd
}

func (m *dashboardModel) setStatus(message string, isError bool) {
	m.status = message
	m.statusErr = isError
}

func (m *dashboardModel) rebuildAlertRows() {
	m.frame.takeAlertsChanged()
	rows := make([]table.Row, 0, len(m.frame.alerts))
	for _, r := range m.frame.alerts {
		rows = append(rows, table.Row{
			r.Timestamp.Format("15:04:05"),
			styles.SeverityStyle(r.Severity).Render(string(r.Severity)),
			r.Message,
		})
	}
	m.alertTable.SetRows(rows)
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	state := styles.StateIndicator(m.controller.Running())
	if !m.controller.State().AlertsEnabled {
		state += styles.MutedText.Render("  alerts off")
	}
	head := components.Header(m.width, state, m.clock.Format("15:04:05"))

	chart := styles.Card.Width(m.width - 4).Render(
		components.AmplitudeChart(m.frame.labels, m.frame.amplitudes, m.width-8),
	)

	metrics := components.MetricsRow(m.width-2, []components.Metric{
		{Label: "Events today", Value: m.frame.events},
		{Label: "Peak amplitude", Value: m.frame.peak},
		{Label: "Current magnitude", Value: m.frame.magnitude},
		{Label: "Dominant freq", Value: m.frame.frequency},
	})

	trend := styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Magnitude trend"),
		m.spark.View(),
	))

	alerts := styles.Card.Width(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.Label.Render("Recent alerts"),
		m.alertTable.View(),
	))

	status := components.StatusBar(m.width, m.status, m.statusErr)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: "m", Desc: "pause/resume"},
		{Key: "r", Desc: "reset"},
		{Key: "e", Desc: "export csv"},
		{Key: "a", Desc: "toggle alerts"},
		{Key: "q", Desc: "quit"},
	})

	body := lipgloss.JoinVertical(lipgloss.Left,
		head,
		chart,
		metrics,
		trend,
		alerts,
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, status, footer)
}

// --- Entry point ---

// Options configures a dashboard session.
type Options struct {
	Controller *monitor.Controller
	// Frame must be the same instance wired into the controller's
	// presentation ports.
	Frame *Frame
	// Interval is the pipeline tick period; zero means
	// monitor.DefaultInterval.
	Interval time.Duration
}

// Run starts the dashboard and blocks until the user quits.
func Run(opts Options) error {
	interval := opts.Interval
	if interval <= 0 {
		interval = monitor.DefaultInterval
	}

	m := newDashboardModel(opts.Controller, opts.Frame, interval)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
