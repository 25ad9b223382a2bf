package platform

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDatasets_DefaultsCategoryAndStatus(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/datasets", r.URL.Path)
		w.Write([]byte(`[
			{"id": "ds1", "name": "q3_metrics.csv", "category": "Energy", "status": "processed"},
			{"id": "ds2", "name": "sensors.csv", "category": "", "status": ""}
		]`))
	}))

	datasets, err := c.ListDatasets(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 2)

	assert.Equal(t, "Energy", datasets[0].Category)
	assert.Equal(t, "General", datasets[1].Category)
	assert.Equal(t, "processed", datasets[1].Status)
}

func TestActiveDataset(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/datasets/active", r.URL.Path)
		w.Write([]byte(`{"dataset_id": "ds1"}`))
	}))

	id, err := c.ActiveDataset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ds1", id)
}

func TestSetActiveDataset_EscapesID(t *testing.T) {
	var gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.SetActiveDataset(context.Background(), "ds/one"))
	assert.Equal(t, "/api/datasets/active/ds%2Fone", gotPath)
}

func TestDeleteDataset(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"detail": "Dataset deleted"}`))
	}))

	require.NoError(t, c.DeleteDataset(context.Background(), "ds1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/datasets/ds1", gotPath)
}

func TestAnomalies_LimitParam(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id": "a1", "message": "SEC above threshold", "severity": "HIGH"}]`))
	}))

	alerts, err := c.Anomalies(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "limit=20", gotQuery)
	assert.Equal(t, "HIGH", alerts[0].Severity)

	_, err = c.Anomalies(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, gotQuery, "limit param omitted when not positive")
}
