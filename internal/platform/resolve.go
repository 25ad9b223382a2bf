package platform

import (
	"context"
	"net/http"
)

// getFirst issues a GET against each candidate path in order. The backend's
// API surface has moved over time, so a resource may still live at an older
// path: a 404 means "not at this path, try the next one", while any other
// failure is terminal and propagates unchanged so the fallback never masks a
// genuine auth or validation error. When every candidate 404s, the last 404
// is returned.
func (c *Client) getFirst(ctx context.Context, paths []string, target any) error {
	var lastErr error

	for _, path := range paths {
		err := c.getJSON(ctx, path, target)
		if err == nil {
			return nil
		}
		if !IsStatus(err, http.StatusNotFound) {
			return err
		}
		lastErr = err
	}

	if lastErr == nil {
		lastErr = &APIError{Status: http.StatusNotFound, Message: "no endpoint candidates"}
	}
	return lastErr
}
