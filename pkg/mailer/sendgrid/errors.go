package sendgrid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNotConfigured indicates a missing API key or sender address.
var ErrNotConfigured = errors.New("sendgrid: api key and sender email are required")

// APIError is returned when the SendGrid API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Messages   []string
	Body       string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("sendgrid: status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	if e.Body != "" {
		return fmt.Sprintf("sendgrid: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("sendgrid: status %d", e.StatusCode)
}

// newAPIError extracts the error messages from a v3 error body:
// {"errors":[{"message":"...","field":"..."}]}
func newAPIError(status int, body string) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		for _, e := range payload.Errors {
			if e.Message != "" {
				apiErr.Messages = append(apiErr.Messages, e.Message)
			}
		}
	}

	return apiErr
}
