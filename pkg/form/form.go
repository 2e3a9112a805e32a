// Package form holds the state of the email submission form.
//
// A Form is built from the posted fields, submitted once through a Submitter
// (usually *client.Client) and then rendered with its resulting Status and
// Message. Fields are cleared after a successful send and kept after a failure
// so the user can correct and resubmit.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrymomot/mailform/pkg/client"
	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// Status is the outcome of the last submission.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// User-facing messages.
const (
	MessageSuccess      = "Email sent successfully! 🎉"
	MessageFailed       = "Failed to send email"
	MessageNetworkError = "Network error. Please try again."
)

// ErrInFlight is returned when Submit is called while a submission is running.
var ErrInFlight = errors.New("form: submission already in progress")

// Submitter sends the form fields to the dispatch endpoint.
type Submitter interface {
	SendEmail(ctx context.Context, req mailer.Request) (*client.SendResponse, error)
}

// Form is the state of one form instance.
//
// Loading and ErrInFlight guard a Form shared between goroutines. The HTTP
// handler builds a fresh Form per request and renders it after Submit returns,
// so in the browser the in-flight state comes from htmx instead.
type Form struct {
	Fields  mailer.Request
	Status  Status
	Message string
	Loading bool

	mu sync.Mutex
}

// New returns an idle form pre-filled with fields.
func New(fields mailer.Request) *Form {
	return &Form{Fields: fields, Status: StatusIdle}
}

// Submit sends the current fields once and records the outcome.
// The returned error is the submitter's error, for logging; the user-facing
// result is in Status and Message.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	if !f.begin() {
		return ErrInFlight
	}
	defer f.end()

	_, err := s.SendEmail(ctx, f.Fields)
	if err != nil {
		f.Status = StatusError
		f.Message = errorMessage(err)
		return err
	}

	f.Status = StatusSuccess
	f.Message = MessageSuccess
	f.Fields = mailer.Request{}
	return nil
}

// begin marks the form as loading and clears the previous outcome.
func (f *Form) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Loading {
		return false
	}
	f.Loading = true
	f.Status = StatusIdle
	f.Message = ""
	return true
}

func (f *Form) end() {
	f.mu.Lock()
	f.Loading = false
	f.mu.Unlock()
}

// errorMessage maps a submitter error to the text shown to the user.
// Server errors carry their own message; anything else is a network error.
func errorMessage(err error) string {
	apiErr, ok := client.AsAPIError(err)
	if !ok {
		return MessageNetworkError
	}
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return MessageFailed
}
