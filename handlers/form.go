package handlers

import (
	"net/http"

	"github.com/dmitrymomot/mailform"
	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/htmx"
	"github.com/dmitrymomot/mailform/pkg/mailer"
	"github.com/dmitrymomot/mailform/views"
)

const formPath = "/"

// EventEmailSent is the htmx event triggered on the client after a successful send.
const EventEmailSent = "email-sent"

// FormHandler serves the email form page and its submit action.
type FormHandler struct {
	submitter form.Submitter
}

// NewForm creates a FormHandler that submits through s, usually a *client.Client.
func NewForm(s form.Submitter) *FormHandler {
	return &FormHandler{submitter: s}
}

func (h *FormHandler) Routes(r mailform.Router) {
	r.GET(formPath, h.show)
	r.POST(formPath, h.submit)
}

func (h *FormHandler) show(c mailform.Context) error {
	f := form.New(mailer.Request{})
	return c.Render(http.StatusOK, views.Page(f, formPath))
}

// submit posts the form fields to the dispatch endpoint once and re-renders
// the form with the outcome. htmx requests get only the form fragment.
func (h *FormHandler) submit(c mailform.Context) error {
	f := form.New(mailer.Request{
		To:      c.Form("to"),
		Subject: c.Form("subject"),
		Message: c.Form("message"),
	})

	if err := f.Submit(c, h.submitter); err != nil {
		c.LogWarn("form submission failed", "error", err)
	}

	var opts []htmx.RenderOption
	if f.Status == form.StatusSuccess {
		opts = append(opts, htmx.WithTrigger(EventEmailSent))
	}

	return c.RenderPartial(http.StatusOK, views.Page(f, formPath), views.EmailForm(f, formPath), opts...)
}
