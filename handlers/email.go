package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailform"
	"github.com/dmitrymomot/mailform/pkg/client"
	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// Response messages of the dispatch endpoint.
const (
	MessageSent          = "Email sent successfully!"
	MessageMissingFields = "Missing required fields: to, subject, message"
	MessageSendFailed    = "Failed to send email"
)

// EmailSender sends a validated request through a provider.
// *mailer.Mailer satisfies it.
type EmailSender interface {
	Send(ctx context.Context, req mailer.Request) error
}

// EmailHandler serves the mail dispatch endpoint.
type EmailHandler struct {
	mailer EmailSender
}

// NewEmail creates an EmailHandler.
func NewEmail(m EmailSender) *EmailHandler {
	return &EmailHandler{mailer: m}
}

func (h *EmailHandler) Routes(r mailform.Router) {
	r.POST(client.SendEmailPath, h.send)
}

// send validates the posted fields and makes one provider call.
// Parse failures share the 500 branch with provider failures.
func (h *EmailHandler) send(c mailform.Context) error {
	var req mailer.Request
	if err := c.BindJSON(&req); err != nil {
		c.LogError("failed to read email request", slog.String("error", err.Error()))
		return sendFailed(err)
	}

	c.LogDebug("received email request",
		slog.String("to", req.To),
		slog.String("subject", req.Subject),
		slog.String("message", req.Message),
	)

	if err := req.Validate(); err != nil {
		p := req.Presence()
		c.LogInfo("email request validation failed",
			slog.Bool("to", p["to"]),
			slog.Bool("subject", p["subject"]),
			slog.Bool("message", p["message"]),
		)
		return mailform.ErrBadRequest(MessageMissingFields, mailform.WithError(err))
	}

	if err := h.mailer.Send(c, req); err != nil {
		c.LogError("email provider error", slog.String("error", err.Error()))
		return sendFailed(err)
	}

	return c.JSON(http.StatusOK, client.SendResponse{Message: MessageSent})
}

func sendFailed(err error) *mailform.HTTPError {
	return mailform.ErrInternal(MessageSendFailed,
		mailform.WithDetail(mailer.ErrorDetails(err)),
		mailform.WithError(err),
	)
}
