package form_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/client"
	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/mailer"
)

// MockSubmitter is a mock implementation of form.Submitter.
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) SendEmail(ctx context.Context, req mailer.Request) (*client.SendResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*client.SendResponse)
	return resp, args.Error(1)
}

var fields = mailer.Request{To: "alice@example.com", Subject: "Hello", Message: "Hi"}

func TestForm_Submit_Success(t *testing.T) {
	t.Parallel()

	s := &MockSubmitter{}
	s.On("SendEmail", mock.Anything, fields).
		Return(&client.SendResponse{Message: "Email sent successfully!"}, nil).Once()

	f := form.New(fields)
	require.NoError(t, f.Submit(context.Background(), s))

	require.Equal(t, form.StatusSuccess, f.Status)
	require.Equal(t, "Email sent successfully! 🎉", f.Message)
	require.Equal(t, mailer.Request{}, f.Fields)
	require.False(t, f.Loading)
	s.AssertExpectations(t)
}

func TestForm_Submit_ServerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server message",
			err:  &client.APIError{StatusCode: http.StatusBadRequest, Message: "X"},
			want: "X",
		},
		{
			name: "missing server message",
			err:  &client.APIError{StatusCode: http.StatusInternalServerError},
			want: "Failed to send email",
		},
		{
			name: "transport failure",
			err:  errors.Join(client.ErrTransport, errors.New("connection refused")),
			want: "Network error. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &MockSubmitter{}
			s.On("SendEmail", mock.Anything, fields).Return(nil, tt.err).Once()

			f := form.New(fields)
			err := f.Submit(context.Background(), s)

			require.ErrorIs(t, err, tt.err)
			require.Equal(t, form.StatusError, f.Status)
			require.Equal(t, tt.want, f.Message)
			require.Equal(t, fields, f.Fields)
			require.False(t, f.Loading)
			s.AssertNumberOfCalls(t, "SendEmail", 1)
		})
	}
}

func TestForm_Submit_ClearsPreviousStatus(t *testing.T) {
	t.Parallel()

	f := form.New(fields)
	f.Status = form.StatusError
	f.Message = "old"

	var during form.Status
	var duringMsg string
	s := submitFunc(func(context.Context, mailer.Request) (*client.SendResponse, error) {
		during, duringMsg = f.Status, f.Message
		return &client.SendResponse{}, nil
	})

	require.NoError(t, f.Submit(context.Background(), s))
	require.Equal(t, form.StatusIdle, during)
	require.Empty(t, duringMsg)
}

func TestForm_Submit_LoadingFlag(t *testing.T) {
	t.Parallel()

	f := form.New(fields)

	var loadingDuring bool
	var nested error
	s := submitFunc(func(ctx context.Context, _ mailer.Request) (*client.SendResponse, error) {
		loadingDuring = f.Loading
		nested = f.Submit(ctx, submitFunc(func(context.Context, mailer.Request) (*client.SendResponse, error) {
			t.Fatal("resubmission must not reach the submitter")
			return nil, nil
		}))
		return nil, &client.APIError{StatusCode: http.StatusInternalServerError, Message: "Failed to send email"}
	})

	require.Error(t, f.Submit(context.Background(), s))
	require.True(t, loadingDuring)
	require.ErrorIs(t, nested, form.ErrInFlight)
	require.False(t, f.Loading)
}

func TestForm_Submit_LoadingClearedOnPanic(t *testing.T) {
	t.Parallel()

	f := form.New(fields)
	s := submitFunc(func(context.Context, mailer.Request) (*client.SendResponse, error) {
		panic("submitter bug")
	})

	require.Panics(t, func() { _ = f.Submit(context.Background(), s) })
	require.False(t, f.Loading)
}

// Exercise the form against the real client with canned HTTP responses.
func TestForm_Submit_WithClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus form.Status
		wantMsg    string
		wantFields mailer.Request
	}{
		{
			name:       "200 clears fields",
			status:     http.StatusOK,
			body:       `{"message":"Email sent successfully!"}`,
			wantStatus: form.StatusSuccess,
			wantMsg:    form.MessageSuccess,
			wantFields: mailer.Request{},
		},
		{
			name:       "400 keeps fields",
			status:     http.StatusBadRequest,
			body:       `{"error":"X"}`,
			wantStatus: form.StatusError,
			wantMsg:    "X",
			wantFields: fields,
		},
		{
			name:       "non-JSON 5xx is a network error",
			status:     http.StatusBadGateway,
			body:       "Bad Gateway",
			wantStatus: form.StatusError,
			wantMsg:    form.MessageNetworkError,
			wantFields: fields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := form.New(fields)
			var loadingDuring bool
			httpClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
				loadingDuring = f.Loading
				return &http.Response{
					StatusCode: tt.status,
					Header:     http.Header{},
					Body:       io.NopCloser(strings.NewReader(tt.body)),
				}, nil
			})}

			_ = f.Submit(context.Background(), client.New("http://form.test", client.WithHTTPClient(httpClient)))

			require.True(t, loadingDuring)
			require.False(t, f.Loading)
			require.Equal(t, tt.wantStatus, f.Status)
			require.Equal(t, tt.wantMsg, f.Message)
			require.Equal(t, tt.wantFields, f.Fields)
		})
	}
}

type submitFunc func(context.Context, mailer.Request) (*client.SendResponse, error)

func (f submitFunc) SendEmail(ctx context.Context, req mailer.Request) (*client.SendResponse, error) {
	return f(ctx, req)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
