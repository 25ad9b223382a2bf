package platform

import (
	"context"
)

// KPISummary is the aggregate KPI payload for the landing cards. Every field
// except LastUpdated is nullable upstream, so nullable numerics stay pointers
// instead of decaying to a misleading zero.
type KPISummary struct {
	TotalEnergy            *float64 `json:"total_energy"`
	AvgEnergy              *float64 `json:"avg_energy"`
	AvgSEC                 *float64 `json:"avg_sec"`
	AnomalyRate            *float64 `json:"anomaly_rate"`
	TotalRecords           *int     `json:"total_records"`
	TotalAnomalies         *int     `json:"total_anomalies"`
	HighSeverityCount      *int     `json:"high_severity_count"`
	PredictedEnergyNextDay *float64 `json:"predicted_energy_next_day"`
	LastUpdated            string   `json:"last_updated"`
}

// KPIs fetches the aggregate KPI summary
func (c *Client) KPIs(ctx context.Context) (*KPISummary, error) {
	var summary KPISummary
	if err := c.getJSON(ctx, "/api/kpis", &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
