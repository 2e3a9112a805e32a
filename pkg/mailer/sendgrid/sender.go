package sendgrid

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/dmitrymomot/mailform/pkg/mailer"
)

const sendEndpoint = "/v3/mail/send"

// Sender implements mailer.Sender using the SendGrid v3 API.
type Sender struct {
	client *rest.Client
	config Config
}

// New creates a new SendGrid sender using http.DefaultClient.
func New(cfg Config) *Sender {
	return NewWithClient(cfg, http.DefaultClient)
}

// NewWithClient creates a SendGrid sender that issues requests through httpClient.
func NewWithClient(cfg Config, httpClient *http.Client) *Sender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Sender{
		client: &rest.Client{HTTPClient: httpClient},
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from, err := s.from(email.From)
	if err != nil {
		return err
	}

	msg := mail.NewSingleEmail(from, email.Subject, mail.NewEmail("", email.To[0]), email.Text, email.HTML)
	for _, addr := range email.To[1:] {
		msg.Personalizations[0].AddTos(mail.NewEmail("", addr))
	}
	if email.ReplyTo != "" {
		msg.SetReplyTo(mail.NewEmail("", email.ReplyTo))
	}
	for k, v := range email.Headers {
		msg.SetHeader(k, v)
	}
	if len(email.Tags) > 0 {
		msg.AddCategories(categories(email.Tags)...)
	}

	req := sendgrid.GetRequest(s.config.APIKey, sendEndpoint, s.config.Host)
	req.Method = rest.Post
	req.Body = mail.GetRequestBody(msg)

	resp, err := s.client.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, resp.Body)
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

// from resolves the sender address, preferring an explicit override.
func (s *Sender) from(override string) (*mail.Email, error) {
	if override == "" {
		if s.config.SenderEmail == "" {
			return nil, ErrNotConfigured
		}
		return mail.NewEmail(s.config.SenderName, s.config.SenderEmail), nil
	}

	addr, err := mail.ParseEmail(override)
	if err != nil {
		return nil, fmt.Errorf("sendgrid: invalid sender %q: %w", override, err)
	}
	return addr, nil
}

// categories maps tag names to SendGrid categories in a stable order.
func categories(tags mailer.Tags) []string {
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
