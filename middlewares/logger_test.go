package middlewares_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/internal"
	"github.com/dmitrymomot/mailform/middlewares"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, h internal.HandlerFunc) (map[string]any, error) {
		t.Helper()

		var buf bytes.Buffer
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/send-email", nil))
		ctx.logger = slog.New(slog.NewJSONHandler(&buf, nil))

		err := middlewares.RequestLogger()(h)(ctx)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		return entry, err
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		entry, err := run(t, func(c internal.Context) error { return c.NoContent(http.StatusOK) })

		require.NoError(t, err)
		require.Equal(t, "request completed", entry["msg"])
		require.Equal(t, "POST", entry["method"])
		require.Equal(t, "/api/send-email", entry["path"])
		require.EqualValues(t, http.StatusOK, entry["status"])
		require.Contains(t, entry, "duration")
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()

		entry, err := run(t, func(c internal.Context) error {
			return internal.ErrBadRequest("Missing required fields: to, subject, message")
		})

		require.Error(t, err)
		require.Equal(t, "WARN", entry["level"])
		require.EqualValues(t, http.StatusBadRequest, entry["status"])
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		entry, err := run(t, func(c internal.Context) error { return errors.New("boom") })

		require.Error(t, err)
		require.EqualValues(t, http.StatusInternalServerError, entry["status"])
		require.Equal(t, "boom", entry["error"])
	})
}
