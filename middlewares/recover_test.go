package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/internal"
	"github.com/dmitrymomot/mailform/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: test panic", err.Error())
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover()(func(c internal.Context) error { return nil })
		require.NoError(t, handler(ctx))
	})

	t.Run("passes handler errors through", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("handler failed")

		handler := middlewares.Recover()(func(c internal.Context) error { return want })
		require.ErrorIs(t, handler(ctx), want)
	})

	t.Run("disable stack", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("no stack")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("error panic value unwraps", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		cause := errors.New("nil map")

		handler := middlewares.Recover()(func(c internal.Context) error { panic(cause) })
		require.ErrorIs(t, handler(ctx), cause)
	})

	t.Run("not a panic error", func(t *testing.T) {
		t.Parallel()

		require.False(t, middlewares.IsPanicError(errors.New("plain")))
		_, ok := middlewares.AsPanicError(nil)
		require.False(t, ok)
	})
}
