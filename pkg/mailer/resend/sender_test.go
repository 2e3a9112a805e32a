package resend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// roundTripFunc answers requests in-process.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	var (
		got  map[string]any
		auth string
	)
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		auth = r.Header.Get("Authorization")
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/emails"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		return jsonResponse(http.StatusOK, `{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`), nil
	})}

	s := NewWithClient(Config{APIKey: "re_test", SenderEmail: "noreply@example.com", SenderName: "Mail Form"}, client)

	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"alice@example.com"},
		Subject: "Hello",
		Text:    "hi",
		HTML:    "<p>hi</p>",
		Tags:    mailer.SimpleTags("contact-form"),
	})

	require.NoError(t, err)
	require.Equal(t, "Bearer re_test", auth)
	require.Equal(t, "Mail Form <noreply@example.com>", got["from"])
	require.Equal(t, []any{"alice@example.com"}, got["to"])
	require.Equal(t, "Hello", got["subject"])
	require.Equal(t, "hi", got["text"])
	require.Equal(t, "<p>hi</p>", got["html"])
}

func TestSender_Send_APIError(t *testing.T) {
	t.Parallel()

	client := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity,
			`{"statusCode":422,"name":"validation_error","message":"Invalid to field"}`), nil
	})}

	s := NewWithClient(Config{APIKey: "re_test", SenderEmail: "noreply@example.com"}, client)

	err := s.Send(context.Background(), &mailer.Email{To: []string{"bad"}, Subject: "s", Text: "t"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "resend: failed to send email")
	require.Contains(t, err.Error(), "Invalid to field")
}

func TestSender_Send_NotConfigured(t *testing.T) {
	t.Parallel()

	s := New(Config{APIKey: "re_test"})
	err := s.Send(context.Background(), &mailer.Email{To: []string{"a@b.c"}, Subject: "s", Text: "t"})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestSender_Healthcheck(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.ErrorIs(t, New(Config{}).Healthcheck(ctx), ErrNotConfigured)
	require.NoError(t, New(Config{APIKey: "re_test"}).Healthcheck(ctx))
	require.Empty(t, New(Config{APIKey: "re_test"}).DefaultFrom())
	require.Equal(t, "noreply@example.com", New(Config{APIKey: "re_test", SenderEmail: "noreply@example.com"}).DefaultFrom())
}

func TestTagValue(t *testing.T) {
	t.Parallel()

	require.Equal(t, "true", tagValue(struct{}{}))
	require.Equal(t, "true", tagValue(nil))
	require.Equal(t, "v", tagValue("v"))
	require.Equal(t, "false", tagValue(false))
	require.Equal(t, "3", tagValue(3))
	require.Equal(t, "1.5", tagValue(1.5))
}

func TestConvertTags_Sorted(t *testing.T) {
	t.Parallel()

	tags := convertTags(mailer.Tags{"b": "2", "a": struct{}{}})
	require.Len(t, tags, 2)
	require.Equal(t, "a", tags[0].Name)
	require.Equal(t, "true", tags[0].Value)
	require.Equal(t, "b", tags[1].Name)
}
