package platform

import (
	"context"
	"fmt"
	"net/url"
)

// defaultCategory is the grouping label used when the backend omits one
const defaultCategory = "General"

// Dataset represents an uploaded dataset record
type Dataset struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListDatasets fetches all dataset records, newest first
func (c *Client) ListDatasets(ctx context.Context) ([]Dataset, error) {
	var datasets []Dataset
	if err := c.getJSON(ctx, "/api/datasets", &datasets); err != nil {
		return nil, err
	}

	for i := range datasets {
		if datasets[i].Category == "" {
			datasets[i].Category = defaultCategory
		}
		if datasets[i].Status == "" {
			datasets[i].Status = "processed"
		}
	}

	return datasets, nil
}

// ActiveDataset returns the ID of the currently active dataset, which may be
// empty when no dataset has been uploaded yet
func (c *Client) ActiveDataset(ctx context.Context) (string, error) {
	var state struct {
		DatasetID string `json:"dataset_id"`
	}
	if err := c.getJSON(ctx, "/api/datasets/active", &state); err != nil {
		return "", err
	}

	return state.DatasetID, nil
}

// SetActiveDataset selects the dataset that dashboards and the assistant read from
func (c *Client) SetActiveDataset(ctx context.Context, datasetID string) error {
	path := fmt.Sprintf("/api/datasets/active/%s", url.PathEscape(datasetID))
	return c.postJSON(ctx, path, nil, nil)
}

// DeleteDataset removes a dataset record
func (c *Client) DeleteDataset(ctx context.Context, datasetID string) error {
	path := fmt.Sprintf("/api/datasets/%s", url.PathEscape(datasetID))
	return c.deleteJSON(ctx, path, nil)
}
