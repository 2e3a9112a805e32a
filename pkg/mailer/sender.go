package mailer

import "context"

// Sender is implemented by email providers.
type Sender interface {
	// Send delivers a fully-built Email. It must not retry.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
