// Command mailform serves the email form and its dispatch endpoint.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/mailform"
	"github.com/dmitrymomot/mailform/handlers"
	"github.com/dmitrymomot/mailform/middlewares"
	"github.com/dmitrymomot/mailform/pkg/client"
	"github.com/dmitrymomot/mailform/pkg/logger"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/pkg/mailer/resend"
	"github.com/dmitrymomot/mailform/pkg/mailer/sendgrid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, cfg.Sentry, middlewares.RequestIDExtractor())

	m := mailer.New(newSender(cfg, log), cfg.Mail)

	app := mailform.New(
		mailform.WithLogger(log),
		mailform.WithHTTPMiddleware(
			middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowedOrigins...)),
		),
		mailform.WithMiddleware(
			middlewares.RequestID(),
			middlewares.RequestLogger(),
			middlewares.Recover(),
		),
		mailform.WithErrorHandler(handlers.ErrorHandler),
		mailform.WithNotFoundHandler(handlers.NotFound),
		mailform.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		mailform.WithHealthChecks(
			mailform.WithReadinessCheck("mailer", m.Healthcheck),
		),
		mailform.WithHandlers(
			handlers.NewEmail(m),
			handlers.NewForm(client.New(cfg.FormAPIURL)),
		),
	)

	log.Info("starting server",
		slog.String("addr", cfg.HTTPAddr),
		slog.String("provider", cfg.MailProvider),
		slog.String("form_api_url", cfg.FormAPIURL),
	)

	return app.Run(cfg.HTTPAddr,
		mailform.Logger(log),
		mailform.ShutdownTimeout(cfg.ShutdownTimeout),
		mailform.ShutdownHook(logger.FlushSentry),
	)
}

// newSender builds the provider selected by MAIL_PROVIDER.
// cfg must already be validated.
func newSender(cfg Config, log *slog.Logger) mailer.Sender {
	switch cfg.MailProvider {
	case providerResend:
		return resend.New(cfg.Resend)
	case providerLog:
		return mailer.NewLogSender(log)
	default:
		return sendgrid.New(cfg.SendGrid)
	}
}
