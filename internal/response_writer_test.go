package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusBadRequest)

	require.Equal(t, http.StatusBadRequest, rw.Status())
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.True(t, rw.Written())
}

func TestResponseWriter_WriteHeader_HTMX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		inputCode      int
		expectedCode   int
		expectedStatus int
	}{
		{"200 stays 200", http.StatusOK, http.StatusOK, http.StatusOK},
		{"400 becomes 200", http.StatusBadRequest, http.StatusOK, http.StatusBadRequest},
		{"500 becomes 200", http.StatusInternalServerError, http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			rw := NewResponseWriter(w, true)

			rw.WriteHeader(tt.inputCode)

			// Status keeps the original code for logging
			require.Equal(t, tt.expectedStatus, rw.Status())
			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	require.Equal(t, http.StatusCreated, rw.Status())
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)
	require.False(t, rw.Written())

	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, int64(5), rw.Size())
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, rw.Written())
	require.Equal(t, "hello", w.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w, false)
	require.Same(t, w, rw.Unwrap())
}
