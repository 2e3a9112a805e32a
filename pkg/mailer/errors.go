package mailer

import (
	"errors"
	"strings"
)

var (
	// ErrMissingFields indicates that to, subject or message is empty.
	ErrMissingFields = errors.New("mailer: missing required fields")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have content")

	// ErrNoSender indicates the mailer has no Sender configured.
	ErrNoSender = errors.New("mailer: sender is not configured")

	// ErrNoFrom indicates neither Config.From nor the sender supplies a sender address.
	ErrNoFrom = errors.New("mailer: sender address is not configured")

	// ErrUnknownBodyFormat indicates an unsupported Config.BodyFormat.
	ErrUnknownBodyFormat = errors.New("mailer: unknown body format")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)

// unknownErrorDetails is reported when a failure carries no message of its own.
const unknownErrorDetails = "An unknown error occurred."

// ErrorDetails returns the human-readable cause of a send failure.
// The ErrSendFailed sentinel is skipped so only the provider's message remains.
func ErrorDetails(err error) string {
	if err == nil {
		return unknownErrorDetails
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			if e == nil || e == ErrSendFailed {
				continue
			}
			if msg := ErrorDetails(e); msg != unknownErrorDetails {
				msgs = append(msgs, msg)
			}
		}
		if len(msgs) == 0 {
			return unknownErrorDetails
		}
		return strings.Join(msgs, "; ")
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorDetails
}
