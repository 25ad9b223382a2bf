package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/refineryiq/riq/internal/platform"
	"github.com/refineryiq/riq/internal/session"
)

// DataSource loads the panels the dashboard renders.
// *platform.Client satisfies it.
type DataSource interface {
	OperatorDashboard(ctx context.Context, datasetID string) (*platform.OperatorDashboard, error)
	AdminDashboard(ctx context.Context, datasetID string) (*platform.AdminDashboard, error)
	KPIs(ctx context.Context) (*platform.KPISummary, error)
	Anomalies(ctx context.Context, limit int) ([]platform.Alert, error)
}

// Panel names used to key per-panel state. Each panel loads on its own, so
// one failing call degrades a single section instead of blanking the screen.
const (
	panelSummary = "summary"
	panelKPIs    = "kpis"
	panelAlerts  = "alerts"
)

type summaryMsg struct {
	operator *platform.OperatorDashboard
	admin    *platform.AdminDashboard
	err      error
}

type kpisMsg struct {
	kpis *platform.KPISummary
	err  error
}

type alertsMsg struct {
	alerts []platform.Alert
	err    error
}

// DashboardModel is the bubbletea model for the live dashboard
type DashboardModel struct {
	ctx       context.Context
	source    DataSource
	user      session.User
	datasetID string

	operator *platform.OperatorDashboard
	admin    *platform.AdminDashboard
	kpis     *platform.KPISummary

	alertTable table.Model
	spinner    spinner.Model
	panelErr   map[string]string
	pending    int

	width    int
	height   int
	quitting bool
	styles   Styles
}

// NewDashboard creates the dashboard model for the given user. The user's
// role picks which backend dashboard is fetched.
func NewDashboard(ctx context.Context, source DataSource, user session.User, datasetID string) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	columns := []table.Column{
		{Title: "Severity", Width: 10},
		{Title: "Message", Width: 48},
		{Title: "Source", Width: 14},
		{Title: "Time", Width: 20},
	}
	alertTable := table.New(
		table.WithColumns(columns),
		table.WithHeight(8),
		table.WithFocused(true),
	)

	return DashboardModel{
		ctx:        ctx,
		source:     source,
		user:       user,
		datasetID:  datasetID,
		alertTable: alertTable,
		spinner:    sp,
		panelErr:   map[string]string{},
		pending:    3,
		styles:     DefaultStyles(),
	}
}

// Init starts the spinner and kicks off the initial load
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// load fetches every panel concurrently
func (m DashboardModel) load() tea.Cmd {
	return tea.Batch(
		m.loadSummary(),
		m.loadKPIs(),
		m.loadAlerts(),
	)
}

func (m DashboardModel) loadSummary() tea.Cmd {
	return func() tea.Msg {
		if m.user.Role == session.RoleAdmin {
			dashboard, err := m.source.AdminDashboard(m.ctx, m.datasetID)
			return summaryMsg{admin: dashboard, err: err}
		}
		dashboard, err := m.source.OperatorDashboard(m.ctx, m.datasetID)
		return summaryMsg{operator: dashboard, err: err}
	}
}

func (m DashboardModel) loadKPIs() tea.Cmd {
	return func() tea.Msg {
		kpis, err := m.source.KPIs(m.ctx)
		return kpisMsg{kpis: kpis, err: err}
	}
}

func (m DashboardModel) loadAlerts() tea.Cmd {
	return func() tea.Msg {
		alerts, err := m.source.Anomalies(m.ctx, 25)
		return alertsMsg{alerts: alerts, err: err}
	}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.pending = 3
			m.panelErr = map[string]string{}
			return m, m.load()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case summaryMsg:
		m.pending--
		if msg.err != nil {
			m.panelErr[panelSummary] = msg.err.Error()
		} else {
			m.operator = msg.operator
			m.admin = msg.admin
		}
		return m, nil

	case kpisMsg:
		m.pending--
		if msg.err != nil {
			m.panelErr[panelKPIs] = msg.err.Error()
		} else {
			m.kpis = msg.kpis
		}
		return m, nil

	case alertsMsg:
		m.pending--
		if msg.err != nil {
			m.panelErr[panelAlerts] = msg.err.Error()
		} else {
			m.alertTable.SetRows(alertRows(msg.alerts))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.alertTable, cmd = m.alertTable.Update(msg)
	return m, cmd
}

func alertRows(alerts []platform.Alert) []table.Row {
	rows := make([]table.Row, 0, len(alerts))
	for _, alert := range alerts {
		source := alert.Source
		if source == "" {
			source = "Unknown"
		}
		rows = append(rows, table.Row{alert.Severity, alert.Message, source, alert.Timestamp})
	}
	return rows
}

func (m DashboardModel) loading() bool {
	return m.pending > 0
}
