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

func TestAccessLogMiddleware(t *testing.T) {
	t.Run("logs resolved version", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		r := newVersionedRouter("v2", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("users"))
		})
		r.Use(RequestIDMiddleware(RequestIDConfig{}))
		r.Use(AccessLogMiddleware(AccessLogConfig{Logger: zap.New(core), VersionHeader: "X-Api-Version"}))

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("X-Api-Version", "2015-05-01")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "v2", fields["version"])
		assert.Equal(t, "2015-05-01", fields["requested"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, int64(5), fields["bytes"])
		assert.Equal(t, w.Header().Get("X-Request-ID"), fields["request_id"])
	})

	t.Run("unversioned route logs empty version", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		r := newVersionedRouter("v1", func(_ http.ResponseWriter, _ *http.Request) {})
		r.Use(AccessLogMiddleware(AccessLogConfig{Logger: zap.New(core)}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "", fields["version"])
		assert.Equal(t, int64(http.StatusNoContent), fields["status"])
		assert.NotContains(t, fields, "requested")
	})

	t.Run("level follows status", func(t *testing.T) {
		tests := []struct {
			name   string
			status int
			level  zapcore.Level
		}{
			{"ok", http.StatusOK, zapcore.InfoLevel},
			{"client error", http.StatusNotFound, zapcore.WarnLevel},
			{"server error", http.StatusBadGateway, zapcore.ErrorLevel},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				core, logs := observer.New(zapcore.DebugLevel)

				handler := AccessLogMiddleware(AccessLogConfig{Logger: zap.New(core)})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
				}))
				handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

				require.Equal(t, 1, logs.Len())
				assert.Equal(t, tt.level, logs.All()[0].Level)
			})
		}
	})

	t.Run("skip", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		handler := AccessLogMiddleware(AccessLogConfig{
			Logger: zap.New(core),
			Skip:   func(r *http.Request) bool { return r.URL.Path == "/health" },
		})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, 0, logs.Len())
	})
}
