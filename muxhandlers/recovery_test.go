package muxhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoveryMiddleware(t *testing.T) {
	t.Run("passes through without panic", func(t *testing.T) {
		handler := RecoveryMiddleware(RecoveryConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("recovers and logs", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)

		handler := RecoveryMiddleware(RecoveryConfig{Logger: zap.New(core)})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic("boom")
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		require.Equal(t, 1, logs.Len())

		entry := logs.All()[0]
		assert.Equal(t, "handler panicked", entry.Message)
		fields := entry.ContextMap()
		assert.Equal(t, "boom", fields["panic"])
		assert.Equal(t, "/users", fields["path"])
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		handler := RecoveryMiddleware(RecoveryConfig{})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		w := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
