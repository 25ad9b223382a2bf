package platform

import (
	"context"
	"fmt"
	"net/url"
)

// TrendPoint is a dated value in a trend or forecast series
type TrendPoint struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// DashboardAlert is the alert shape embedded in dashboard payloads
type DashboardAlert struct {
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Unit      string `json:"unit"`
	Timestamp string `json:"timestamp"`
}

// OperatorDashboard is the pre-aggregated payload for the operator view
type OperatorDashboard struct {
	TotalActiveAnomalies   int              `json:"totalActiveAnomalies"`
	HighSeverityAlerts     int              `json:"highSeverityAlerts"`
	CurrentSEC             *float64         `json:"currentSEC"`
	PredictedEnergyNextDay *float64         `json:"predictedEnergyNextDay"`
	EnergyTrend            []TrendPoint     `json:"energyTrend"`
	Alerts                 []DashboardAlert `json:"alerts"`
	Recommendations        []string         `json:"recommendations"`
}

// AdminDashboard is the pre-aggregated payload for the admin view
type AdminDashboard struct {
	TotalAnomaliesOverall int          `json:"totalAnomaliesOverall"`
	AverageSEC            *float64     `json:"averageSEC"`
	ForecastedEnergy      *float64     `json:"forecastedEnergy"`
	OptimizationImpact    *float64     `json:"optimizationImpact"`
	EnergyForecast        []TrendPoint `json:"energyForecast"`
	SECForecast           []TrendPoint `json:"secForecast"`
	Recommendations       []string     `json:"recommendations"`
}

func dashboardPath(role, datasetID string) string {
	path := fmt.Sprintf("/api/dashboard/%s", role)
	if datasetID != "" {
		path = fmt.Sprintf("%s?dataset_id=%s", path, url.QueryEscape(datasetID))
	}
	return path
}

// OperatorDashboard fetches the operator dashboard, optionally pinned to a dataset
func (c *Client) OperatorDashboard(ctx context.Context, datasetID string) (*OperatorDashboard, error) {
	var dashboard OperatorDashboard
	if err := c.getJSON(ctx, dashboardPath("operator", datasetID), &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

// AdminDashboard fetches the admin dashboard, optionally pinned to a dataset
func (c *Client) AdminDashboard(ctx context.Context, datasetID string) (*AdminDashboard, error) {
	var dashboard AdminDashboard
	if err := c.getJSON(ctx, dashboardPath("admin", datasetID), &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}
