package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/refineryiq/riq/internal/platform"
	"github.com/refineryiq/riq/internal/session"
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RefineryIQ Operator Dashboard"
	if m.user.Role == session.RoleAdmin {
		title = "RefineryIQ Admin Dashboard"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(m.user.Name))
	if m.datasetID != "" {
		b.WriteString(m.styles.Muted.Render("  dataset: " + m.datasetID))
	}
	b.WriteString("\n\n")

	if m.loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading panels...\n\n")
	}

	b.WriteString(m.kpiView())
	b.WriteString("\n")
	b.WriteString(m.trendView())
	b.WriteString("\n")
	b.WriteString(m.alertsView())
	b.WriteString("\n")
	b.WriteString(m.recommendationsView())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("r reload • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m DashboardModel) kpiView() string {
	if msg, failed := m.panelErr[panelKPIs]; failed {
		return m.styles.Error.Render("KPIs unavailable: "+msg) + "\n"
	}
	if m.kpis == nil {
		return ""
	}

	cards := []string{
		m.card("Total Energy", fmtFloat(m.kpis.TotalEnergy, "MWh")),
		m.card("Avg SEC", fmtFloat(m.kpis.AvgSEC, "MWh/bbl")),
		m.card("Anomaly Rate", fmtPercent(m.kpis.AnomalyRate)),
		m.card("Next-Day Energy", fmtFloat(m.kpis.PredictedEnergyNextDay, "MWh")),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n"
}

func (m DashboardModel) card(label, value string) string {
	content := m.styles.CardLabel.Render(label) + "\n" + m.styles.CardValue.Render(value)
	return m.styles.Card.Render(content)
}

func (m DashboardModel) trendView() string {
	if msg, failed := m.panelErr[panelSummary]; failed {
		return m.styles.Error.Render("Summary unavailable: "+msg) + "\n"
	}

	var points []platform.TrendPoint
	label := "Energy trend"
	switch {
	case m.operator != nil:
		points = m.operator.EnergyTrend
	case m.admin != nil:
		points = m.admin.EnergyForecast
		label = "Energy forecast"
	default:
		return ""
	}

	if len(points) == 0 {
		return m.styles.Muted.Render(label+": no data") + "\n"
	}

	return m.styles.Subtitle.Render(label) + "\n" + sparkline(points, 60) + "\n"
}

// sparkline renders trend values as unicode block bars, newest at the right
func sparkline(points []platform.TrendPoint, width int) string {
	if len(points) > width {
		points = points[len(points)-width:]
	}

	min, max := 0.0, 0.0
	first := true
	for _, p := range points {
		if p.Value == nil {
			continue
		}
		v := *p.Value
		if first || v < min {
			min = v
		}
		if first || v > max {
			max = v
		}
		first = false
	}
	if first {
		return ""
	}

	span := max - min
	var b strings.Builder
	for _, p := range points {
		if p.Value == nil {
			b.WriteRune(' ')
			continue
		}
		idx := 0
		if span > 0 {
			idx = int((*p.Value - min) / span * float64(len(sparks)-1))
		}
		b.WriteRune(sparks[idx])
	}
	return b.String()
}

func (m DashboardModel) alertsView() string {
	if msg, failed := m.panelErr[panelAlerts]; failed {
		return m.styles.Error.Render("Alerts unavailable: "+msg) + "\n"
	}
	if len(m.alertTable.Rows()) == 0 {
		return m.styles.Muted.Render("No active alerts") + "\n"
	}

	return m.styles.Subtitle.Render("Alerts") + "\n" + m.alertTable.View() + "\n"
}

func (m DashboardModel) recommendationsView() string {
	if _, failed := m.panelErr[panelSummary]; failed {
		return ""
	}

	var recs []string
	switch {
	case m.operator != nil:
		recs = m.operator.Recommendations
	case m.admin != nil:
		recs = m.admin.Recommendations
	}
	if len(recs) == 0 {
		return ""
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}

	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("Recommendations"))
	b.WriteString("\n")
	for _, rec := range recs {
		b.WriteString("  • ")
		b.WriteString(rec)
		b.WriteString("\n")
	}
	return b.String()
}

func fmtFloat(v *float64, unit string) string {
	if v == nil {
		return "n/a"
	}
	if unit == "" {
		return fmt.Sprintf("%.2f", *v)
	}
	return fmt.Sprintf("%.2f %s", *v, unit)
}

func fmtPercent(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}
