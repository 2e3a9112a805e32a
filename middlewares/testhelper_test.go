package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/mailform/internal"
	"github.com/dmitrymomot/mailform/pkg/htmx"
)

// testContext is a minimal internal.Context backed by a recorder.
type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	logger   *slog.Logger
	values   map[any]any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		response: w,
		request:  r,
		logger:   slog.New(slog.DiscardHandler),
		values:   make(map[any]any),
	}
}

func (c *testContext) Deadline() (time.Time, bool)   { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}         { return c.request.Context().Done() }
func (c *testContext) Err() error                    { return c.request.Context().Err() }
func (c *testContext) Value(key any) any             { return c.request.Context().Value(key) }
func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Param(string) string           { return "" }
func (c *testContext) Query(name string) string      { return c.request.URL.Query().Get(name) }
func (c *testContext) Form(name string) string       { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string     { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)  { c.response.Header().Set(name, value) }

func (c *testContext) JSON(code int, v any) error {
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error { c.response.WriteHeader(code); return nil }

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) IsHTMX() bool { return htmx.IsHTMX(c.request) }

func (c *testContext) Render(code int, component internal.Component, _ ...htmx.RenderOption) error {
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *testContext) RenderPartial(code int, fullPage, partial internal.Component, opts ...htmx.RenderOption) error {
	if c.IsHTMX() {
		return c.Render(code, partial, opts...)
	}
	return c.Render(code, fullPage)
}

func (c *testContext) BindJSON(v any) error { return json.NewDecoder(c.request.Body).Decode(v) }
func (c *testContext) Written() bool        { return false }
func (c *testContext) Logger() *slog.Logger { return c.logger }

func (c *testContext) LogDebug(msg string, attrs ...any) { c.logger.DebugContext(c, msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)  { c.logger.InfoContext(c, msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)  { c.logger.WarnContext(c, msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any) { c.logger.ErrorContext(c, msg, attrs...) }

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}
