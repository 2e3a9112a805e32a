// Package mailform serves a small email form and the JSON endpoint it posts to.
//
// The form collects a recipient, subject and message and sends them as JSON to
// POST /api/send-email, which validates the fields and hands one message to a
// transactional email provider (SendGrid or Resend).
//
// This package is the thin application layer: it re-exports the App, Context,
// Router and option types so handlers never import internal packages.
//
//	app := mailform.New(
//	    mailform.WithLogger(log),
//	    mailform.WithErrorHandler(handlers.ErrorHandler),
//	    mailform.WithHandlers(
//	        handlers.NewEmail(m),
//	        handlers.NewForm(client.New("http://localhost:8080")),
//	    ),
//	    mailform.WithHealthChecks(mailform.WithReadinessCheck("mailer", m.Healthcheck)),
//	)
//
//	if err := app.Run(":8080", mailform.Logger(log)); err != nil {
//	    log.Error("server error", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *EmailHandler) Routes(r mailform.Router) {
//	    r.POST("/api/send-email", h.send)
//	}
//
// A handler returns an error instead of writing a failure response. Return an
// [HTTPError] to control the status and message; the error handler renders it.
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM. In-flight requests get ShutdownTimeout to finish,
// then ShutdownHook functions run (for example flushing Sentry).
package mailform
