package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform"
	"github.com/dmitrymomot/mailform/handlers"
	"github.com/dmitrymomot/mailform/middlewares"
	"github.com/dmitrymomot/mailform/pkg/client"
	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

const fromAddr = "noreply@example.com"

func newApp(sender mailer.Sender) http.Handler {
	m := mailer.New(sender, mailer.Config{From: fromAddr})
	return mailform.New(
		mailform.WithErrorHandler(handlers.ErrorHandler),
		mailform.WithNotFoundHandler(handlers.NotFound),
		mailform.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		mailform.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
		mailform.WithHandlers(handlers.NewEmail(m)),
	).Router()
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEmailHandler_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return e.From == fromAddr &&
			len(e.To) == 1 && e.To[0] == "alice@example.com" &&
			e.Subject == "Hello" &&
			e.Text == "Line one\nLine two" &&
			e.HTML == "<p>Line one<br>Line two</p>"
	})).Return(nil).Once()

	rec := postJSON(t, newApp(sender),
		`{"to":"alice@example.com","subject":"Hello","message":"Line one\nLine two"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Email sent successfully!"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	sender.AssertExpectations(t)
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestEmailHandler_SenderCannotBeOverridden(t *testing.T) {
	t.Parallel()

	sender := mailer.NewMemorySender()
	rec := postJSON(t, newApp(sender),
		`{"to":"alice@example.com","subject":"s","message":"m","from":"attacker@example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	emails := sender.Emails()
	require.Len(t, emails, 1)
	require.Equal(t, fromAddr, emails[0].From)
}

func TestEmailHandler_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "null", body: `null`},
		{name: "missing to", body: `{"subject":"s","message":"m"}`},
		{name: "missing subject", body: `{"to":"a@b.c","message":"m"}`},
		{name: "missing message", body: `{"to":"a@b.c","subject":"s"}`},
		{name: "empty strings", body: `{"to":"","subject":"","message":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			rec := postJSON(t, newApp(sender), tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"error":"Missing required fields: to, subject, message"}`, rec.Body.String())
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestEmailHandler_ProviderError(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	rec := postJSON(t, newApp(sender), `{"to":"a@b.c","subject":"s","message":"m"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to send email","details":"boom"}`, rec.Body.String())
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestEmailHandler_ProviderErrorWithoutMessage(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("")).Once()

	rec := postJSON(t, newApp(sender), `{"to":"a@b.c","subject":"s","message":"m"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to send email","details":"An unknown error occurred."}`, rec.Body.String())
}

func TestEmailHandler_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"to":`},
		{name: "empty body", body: ``},
		{name: "wrong type", body: `{"to":1,"subject":"s","message":"m"}`},
		{name: "trailing garbage", body: `{"to":"a@b.c","subject":"s","message":"m"}}} not json`},
		{name: "two objects", body: `{"to":"a@b.c","subject":"s","message":"m"}{"to":"b@c.d"}`},
		{name: "array body", body: `[]`},
		{name: "string body", body: `"x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &MockSender{}
			rec := postJSON(t, newApp(sender), tt.body)

			require.Equal(t, http.StatusInternalServerError, rec.Code)

			var resp client.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "Failed to send email", resp.Error)
			require.NotEmpty(t, resp.Details)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestEmailHandler_PassesRequestContext(t *testing.T) {
	t.Parallel()

	var gotID string
	sender := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) error {
		gotID = middlewares.GetRequestID(ctx)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/send-email",
		strings.NewReader(`{"to":"a@b.c","subject":"s","message":"m"}`))
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	newApp(sender).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "req-123", gotID)
}

func TestErrorHandler_Panic(t *testing.T) {
	t.Parallel()

	sender := mailer.SenderFunc(func(context.Context, *mailer.Email) error {
		panic("provider exploded")
	})

	rec := postJSON(t, newApp(sender), `{"to":"a@b.c","subject":"s","message":"m"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := newApp(mailer.NewMemorySender())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/send-email", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}

// End to end: the form posts through the real client to the real endpoint.
func TestFormHandler_EndToEnd(t *testing.T) {
	t.Parallel()

	sender := mailer.NewMemorySender()
	api := httptest.NewServer(newApp(sender))
	t.Cleanup(api.Close)

	formApp := mailform.New(
		mailform.WithErrorHandler(handlers.ErrorHandler),
		mailform.WithHandlers(handlers.NewForm(client.New(api.URL))),
	).Router()

	submit := func(t *testing.T, values url.Values, htmx bool) (string, http.Header) {
		t.Helper()

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		rec := httptest.NewRecorder()
		formApp.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		return string(body), rec.Header()
	}

	t.Run("success clears fields", func(t *testing.T) {
		html, header := submit(t, url.Values{
			"to":      {"alice@example.com"},
			"subject": {"Hello"},
			"message": {"Hi"},
		}, true)

		require.Contains(t, html, "Email sent successfully! 🎉")
		require.NotContains(t, html, `value="alice@example.com"`)
		require.NotContains(t, html, "<!DOCTYPE html>")
		require.Len(t, sender.Emails(), 1)
		require.Equal(t, handlers.EventEmailSent, header.Get("HX-Trigger"))
	})

	t.Run("server validation error keeps fields", func(t *testing.T) {
		html, _ := submit(t, url.Values{
			"to":      {"alice@example.com"},
			"subject": {"Hello"},
		}, false)

		require.Contains(t, html, "<!DOCTYPE html>")
		require.Contains(t, html, "Missing required fields: to, subject, message")
		require.Contains(t, html, `value="alice@example.com"`)
		require.Contains(t, html, `value="Hello"`)
	})

	t.Run("provider error shows server message", func(t *testing.T) {
		sender.FailWith(errors.New("boom"))
		t.Cleanup(func() { sender.FailWith(nil) })

		html, header := submit(t, url.Values{
			"to":      {"alice@example.com"},
			"subject": {"Hello"},
			"message": {"Hi"},
		}, true)

		require.Empty(t, header.Get("HX-Trigger"))
		require.Contains(t, html, `role="alert">Failed to send email</p>`)
		require.Contains(t, html, `value="alice@example.com"`)
	})
}

func TestFormHandler_NetworkError(t *testing.T) {
	t.Parallel()

	api := httptest.NewServer(http.NotFoundHandler())
	apiURL := api.URL
	api.Close()

	formApp := mailform.New(mailform.WithHandlers(handlers.NewForm(client.New(apiURL)))).Router()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("to=a%40b.c&subject=s&message=m"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	formApp.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Network error. Please try again.")
}

func TestFormHandler_Show(t *testing.T) {
	t.Parallel()

	formApp := mailform.New(mailform.WithHandlers(handlers.NewForm(client.New("http://unused")))).Router()

	rec := httptest.NewRecorder()
	formApp.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `id="email-form"`)
}
