package handlers

import (
	"net/http"

	"github.com/dmitrymomot/mailform"
	"github.com/dmitrymomot/mailform/middlewares"
	"github.com/dmitrymomot/mailform/pkg/client"
)

// ErrorHandler renders handler errors as {"error": ..., "details": ...}.
// HTTPErrors keep their status and message; anything else becomes a bare 500.
func ErrorHandler(c mailform.Context, err error) error {
	if httpErr := mailform.AsHTTPError(err); httpErr != nil {
		return c.JSON(httpErr.StatusCode(), client.ErrorResponse{
			Error:   httpErr.Message,
			Details: httpErr.Detail,
		})
	}

	if pe, ok := middlewares.AsPanicError(err); ok {
		c.LogError("panic", "value", pe.Value)
	} else {
		c.LogError("unhandled error", "error", err)
	}

	return c.JSON(http.StatusInternalServerError, client.ErrorResponse{
		Error: http.StatusText(http.StatusInternalServerError),
	})
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(c mailform.Context) error {
	return mailform.ErrNotFound(http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c mailform.Context) error {
	return mailform.ErrMethodNotAllowed(http.StatusText(http.StatusMethodNotAllowed))
}
