package resend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// ErrNotConfigured indicates a missing API key or sender address.
var ErrNotConfigured = errors.New("resend: api key and sender email are required")

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) *Sender {
	return &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// NewWithClient creates a Resend sender that issues requests through httpClient.
func NewWithClient(cfg Config, httpClient *http.Client) *Sender {
	if httpClient == nil {
		return New(cfg)
	}
	return &Sender{
		client: resend.NewCustomClient(httpClient, cfg.APIKey),
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		if s.config.SenderEmail == "" {
			return ErrNotConfigured
		}
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}

	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

// Healthcheck reports whether the API key is present. It makes no API call.
// The sender address may come from mailer.Config, so mailer.Mailer checks it.
func (s *Sender) Healthcheck(context.Context) error {
	if s.config.APIKey == "" {
		return ErrNotConfigured
	}
	return nil
}

// DefaultFrom returns the configured sender address, used when an email has no From.
func (s *Sender) DefaultFrom() string {
	return s.config.SenderEmail
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
