package client

import (
	"errors"
	"fmt"
)

// ErrTransport wraps network failures and unreadable responses.
var ErrTransport = errors.New("client: transport failure")

// APIError is a non-2xx response from the dispatch endpoint.
type APIError struct {
	StatusCode int
	Message    string // the "error" field
	Details    string // the "details" field, if any
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("client: status %d: %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("client: status %d: %s", e.StatusCode, e.Message)
}

// AsAPIError extracts the APIError from an error if present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
