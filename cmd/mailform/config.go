package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/mailform/pkg/logger"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/pkg/mailer/resend"
	"github.com/dmitrymomot/mailform/pkg/mailer/sendgrid"
)

// Mail providers selectable with MAIL_PROVIDER.
const (
	providerSendGrid = "sendgrid"
	providerResend   = "resend"
	providerLog      = "log"
)

var (
	errUnknownProvider = errors.New("config: unknown MAIL_PROVIDER")
	errMissingAPIKey   = errors.New("config: provider api key is required")
	errMissingSender   = errors.New("config: sender address is required")
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	FormAPIURL         string        `env:"FORM_API_URL"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MailProvider       string        `env:"MAIL_PROVIDER" envDefault:"sendgrid"`

	Mail     mailer.Config
	SendGrid sendgrid.Config
	Resend   resend.Config
	Log      logger.Config
	Sentry   logger.SentryConfig
}

// loadConfig reads .env (if present) and then the process environment.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	if cfg.FormAPIURL == "" {
		cfg.FormAPIURL = localURL(cfg.HTTPAddr)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the selected provider can send mail.
func (c Config) Validate() error {
	if !c.Mail.BodyFormat.Valid() {
		return fmt.Errorf("%w: %q", mailer.ErrUnknownBodyFormat, c.Mail.BodyFormat)
	}

	switch c.MailProvider {
	case providerSendGrid:
		return requireCredentials(c.SendGrid.APIKey, c.SendGrid.SenderEmail, c.Mail.From)
	case providerResend:
		return requireCredentials(c.Resend.APIKey, c.Resend.SenderEmail, c.Mail.From)
	case providerLog:
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownProvider, c.MailProvider)
	}
}

func requireCredentials(apiKey, providerFrom, mailFrom string) error {
	if apiKey == "" {
		return errMissingAPIKey
	}
	if providerFrom == "" && mailFrom == "" {
		return errMissingSender
	}
	return nil
}

// localURL turns a listen address into a loopback base URL for the form.
func localURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://localhost:8080"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
