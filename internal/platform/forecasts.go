package platform

import (
	"context"
	"fmt"
	"net/url"
)

// Forecast metric names accepted by the backend
const (
	MetricEnergy = "energy"
	MetricSEC    = "sec"
)

// ForecastPoint is a single point of a forecast series. Timestamp and Value
// are both optional upstream.
type ForecastPoint struct {
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
	Metric    string   `json:"metric,omitempty"`
}

// Label returns the display label for the point at position i: the timestamp
// when present, otherwise the 1-based position within the series.
func (p ForecastPoint) Label(i int) string {
	if p.Timestamp != "" {
		return p.Timestamp
	}
	return fmt.Sprintf("#%d", i+1)
}

// Forecast fetches a named metric's forecast series. The forecast resource
// moved from /forecasts to /api/forecast during the backend's API migration,
// so both paths are tried.
func (c *Client) Forecast(ctx context.Context, metric string, limit int) ([]ForecastPoint, error) {
	candidates := []string{
		fmt.Sprintf("/api/forecast?metric=%s&limit=%d", url.QueryEscape(metric), limit),
		fmt.Sprintf("/forecasts?forecast_type=%s&limit=%d", url.QueryEscape(metric), limit),
	}

	var points []ForecastPoint
	if err := c.getFirst(ctx, candidates, &points); err != nil {
		return nil, err
	}

	return points, nil
}
