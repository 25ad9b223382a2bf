package platform

import (
	"context"
	"fmt"
)

// Recommendation represents an optimization suggestion
type Recommendation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timestamp   string `json:"timestamp"`
}

// Recommendations fetches optimization suggestions, capped by limit when limit > 0
func (c *Client) Recommendations(ctx context.Context, limit int) ([]Recommendation, error) {
	path := "/api/recommendations"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	var recs []Recommendation
	if err := c.getJSON(ctx, path, &recs); err != nil {
		return nil, err
	}

	return recs, nil
}
