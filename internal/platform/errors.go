package platform

import (
	"errors"
	"fmt"
)

// APIError represents a failed backend call. Message carries the backend's
// "detail" payload when one was provided, otherwise the HTTP status text.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// IsStatus reports whether err is an APIError carrying the given HTTP status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
