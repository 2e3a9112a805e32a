package mailer

import (
	"context"
	"errors"
	"fmt"
)

// Mailer validates requests, builds provider messages and sends them.
// It holds no mutable state and is safe for concurrent use.
type Mailer struct {
	sender Sender
	config Config
}

// New creates a Mailer delivering through sender.
func New(sender Sender, cfg Config) *Mailer {
	return &Mailer{
		sender: sender,
		config: cfg,
	}
}

// Build converts req into a provider-ready Email.
// The sender address is always the configured one, never taken from the request.
func (m *Mailer) Build(req Request) (*Email, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	html, err := formatBody(m.config, req.Message)
	if err != nil {
		return nil, err
	}

	return &Email{
		From:    m.config.From,
		To:      []string{req.To},
		Subject: req.Subject,
		Text:    req.Message,
		HTML:    html,
	}, nil
}

// Send validates req and makes exactly one provider call.
// Validation failures return ErrMissingFields without contacting the provider.
func (m *Mailer) Send(ctx context.Context, req Request) error {
	email, err := m.Build(req)
	if err != nil {
		return err
	}
	return m.SendRaw(ctx, email)
}

// SendRaw sends a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if m.sender == nil {
		return ErrNoSender
	}
	if err := email.Validate(); err != nil {
		return err
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// Healthcheck reports whether the mailer can attempt delivery.
// It does not contact the provider.
func (m *Mailer) Healthcheck(ctx context.Context) error {
	if m.sender == nil {
		return ErrNoSender
	}
	if !m.config.BodyFormat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBodyFormat, m.config.BodyFormat)
	}
	if h, ok := m.sender.(interface{ Healthcheck(context.Context) error }); ok {
		if err := h.Healthcheck(ctx); err != nil {
			return err
		}
	}
	if m.config.From == "" {
		if d, ok := m.sender.(interface{ DefaultFrom() string }); ok && d.DefaultFrom() == "" {
			return ErrNoFrom
		}
	}
	return nil
}
