package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refineryiq/riq/internal/platform"
	"github.com/refineryiq/riq/internal/session"
)

// fakeSource returns canned panel data per role
type fakeSource struct {
	operator    *platform.OperatorDashboard
	admin       *platform.AdminDashboard
	kpis        *platform.KPISummary
	alerts      []platform.Alert
	operatorErr error
	adminErr    error
}

func (f *fakeSource) OperatorDashboard(ctx context.Context, datasetID string) (*platform.OperatorDashboard, error) {
	return f.operator, f.operatorErr
}

func (f *fakeSource) AdminDashboard(ctx context.Context, datasetID string) (*platform.AdminDashboard, error) {
	return f.admin, f.adminErr
}

func (f *fakeSource) KPIs(ctx context.Context) (*platform.KPISummary, error) {
	return f.kpis, nil
}

func (f *fakeSource) Anomalies(ctx context.Context, limit int) ([]platform.Alert, error) {
	return f.alerts, nil
}

func operatorUser() session.User {
	return session.User{Email: "ops@refinery.example", Name: "Ops", Role: session.RoleOperator}
}

func floatPtr(v float64) *float64 { return &v }

func TestDashboard_PanelsResolveIndependently(t *testing.T) {
	m := NewDashboard(context.Background(), &fakeSource{}, operatorUser(), "")
	require.True(t, m.loading())

	next, _ := m.Update(summaryMsg{err: errors.New("dashboard unavailable")})
	m = next.(DashboardModel)
	assert.True(t, m.loading(), "other panels still pending")

	next, _ = m.Update(kpisMsg{kpis: &platform.KPISummary{AvgSEC: floatPtr(1.9)}})
	m = next.(DashboardModel)
	next, _ = m.Update(alertsMsg{alerts: []platform.Alert{{Severity: "HIGH", Message: "SEC spike"}}})
	m = next.(DashboardModel)

	assert.False(t, m.loading())

	view := m.View()
	assert.Contains(t, view, "Summary unavailable: dashboard unavailable")
	assert.Contains(t, view, "1.90", "a failed summary panel must not blank the KPI cards")
	assert.Contains(t, view, "SEC spike")
}

func TestDashboard_QuitKeys(t *testing.T) {
	m := NewDashboard(context.Background(), &fakeSource{}, operatorUser(), "")

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}
	for _, key := range keys {
		next, cmd := m.Update(key)
		model := next.(DashboardModel)
		assert.True(t, model.quitting, "key %q should quit", key.String())
		require.NotNil(t, cmd, "key %q should produce the quit command", key.String())
	}
}

func TestDashboard_ReloadResetsPanels(t *testing.T) {
	m := NewDashboard(context.Background(), &fakeSource{}, operatorUser(), "")

	next, _ := m.Update(summaryMsg{err: errors.New("boom")})
	m = next.(DashboardModel)
	next, _ = m.Update(kpisMsg{kpis: &platform.KPISummary{}})
	m = next.(DashboardModel)
	next, _ = m.Update(alertsMsg{})
	m = next.(DashboardModel)
	require.False(t, m.loading())
	require.NotEmpty(t, m.panelErr)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(DashboardModel)

	assert.True(t, m.loading())
	assert.Empty(t, m.panelErr)
	assert.NotNil(t, cmd)
}

func TestDashboard_RolePicksSummaryEndpoint(t *testing.T) {
	operatorSrc := &fakeSource{operator: &platform.OperatorDashboard{}, adminErr: errors.New("wrong endpoint")}
	m := NewDashboard(context.Background(), operatorSrc, operatorUser(), "")
	msg := m.loadSummary()()
	summary, ok := msg.(summaryMsg)
	require.True(t, ok)
	assert.NoError(t, summary.err)
	assert.NotNil(t, summary.operator)
	assert.Nil(t, summary.admin)

	adminSrc := &fakeSource{admin: &platform.AdminDashboard{}, operatorErr: errors.New("wrong endpoint")}
	admin := session.User{Email: "chief@refinery.example", Name: "Chief", Role: session.RoleAdmin}
	m = NewDashboard(context.Background(), adminSrc, admin, "")
	msg = m.loadSummary()()
	summary, ok = msg.(summaryMsg)
	require.True(t, ok)
	assert.NoError(t, summary.err)
	assert.NotNil(t, summary.admin)
	assert.Contains(t, m.View(), "Admin Dashboard")
}

func TestAlertRows(t *testing.T) {
	rows := alertRows([]platform.Alert{
		{Severity: "HIGH", Message: "spike", Source: "CDU-2", Timestamp: "t1"},
		{Severity: "LOW", Message: "drift", Timestamp: "t2"},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "CDU-2", rows[0][2])
	assert.Equal(t, "Unknown", rows[1][2], "missing source gets a placeholder")
}

func TestSparkline(t *testing.T) {
	points := []platform.TrendPoint{
		{Date: "d1", Value: floatPtr(1)},
		{Date: "d2", Value: nil},
		{Date: "d3", Value: floatPtr(10)},
	}

	line := sparkline(points, 60)
	runes := []rune(line)
	require.Len(t, runes, 3)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, ' ', runes[1], "null values render as gaps")
	assert.Equal(t, '█', runes[2])

	assert.Empty(t, sparkline([]platform.TrendPoint{{Date: "d1"}}, 60), "all-null series renders nothing")

	flat := sparkline([]platform.TrendPoint{
		{Date: "d1", Value: floatPtr(5)},
		{Date: "d2", Value: floatPtr(5)},
	}, 60)
	assert.Equal(t, strings.Repeat("▁", 2), flat)
}

func TestFmtHelpers(t *testing.T) {
	assert.Equal(t, "n/a", fmtFloat(nil, "MWh"))
	assert.Equal(t, "1.84 MWh", fmtFloat(floatPtr(1.84), "MWh"))
	assert.Equal(t, "1.84", fmtFloat(floatPtr(1.84), ""))
	assert.Equal(t, "n/a", fmtPercent(nil))
	assert.Equal(t, "3.1%", fmtPercent(floatPtr(0.031)))
}
