package platform

import (
	"context"
	"fmt"
)

// Alert represents a detected anomaly surfaced to operators
type Alert struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// Anomalies fetches the alert list, capped by limit when limit > 0
func (c *Client) Anomalies(ctx context.Context, limit int) ([]Alert, error) {
	path := "/api/anomalies"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var alerts []Alert
	if err := c.getJSON(ctx, path, &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}
