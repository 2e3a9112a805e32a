package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/mailform/internal"
)

// RequestLogger logs one line per request with method, path, status and duration.
// Requests that end in an error are logged at warn level; the error handler
// writes the response afterwards, so the status reported is the one it will use.
func RequestLogger() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", responseStatus(c, err)),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				c.LogWarn("request failed", append(attrs, slog.String("error", err.Error()))...)
				return err
			}

			c.LogInfo("request completed", attrs...)
			return nil
		}
	}
}

func responseStatus(c internal.Context, err error) int {
	if err != nil {
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			return httpErr.StatusCode()
		}
		return http.StatusInternalServerError
	}
	if sw, ok := c.Response().(interface{ Status() int }); ok && sw.Status() != 0 {
		return sw.Status()
	}
	return http.StatusOK
}
