package muxhandlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	uuidV4Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	uuidV7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
)

func TestRequestIDMiddleware(t *testing.T) {
	const incoming = "0190f3a4-7b1c-7d2e-8f00-112233445566"

	tests := []struct {
		name           string
		config         RequestIDConfig
		incomingHeader string
		wantHeader     string
		wantV7         bool
	}{
		{
			name:   "generates UUID v7 by default",
			config: RequestIDConfig{},
			wantV7: true,
		},
		{
			name:           "does not trust incoming by default",
			config:         RequestIDConfig{},
			incomingHeader: incoming,
			wantV7:         true,
		},
		{
			name:           "trusts incoming UUID when configured",
			config:         RequestIDConfig{TrustIncoming: true},
			incomingHeader: incoming,
			wantHeader:     incoming,
		},
		{
			name:           "replaces malformed incoming value",
			config:         RequestIDConfig{TrustIncoming: true},
			incomingHeader: "not-a-uuid",
			wantV7:         true,
		},
		{
			name:       "custom generate func",
			config:     RequestIDConfig{GenerateFunc: func(_ *http.Request) string { return "custom-id" }},
			wantHeader: "custom-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestIDMiddleware(tt.config)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingHeader != "" {
				req.Header.Set("X-Request-ID", tt.incomingHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			assert.Equal(t, got, seen)

			if tt.wantV7 {
				assert.Regexp(t, uuidV7Regex, got)
				assert.NotEqual(t, tt.incomingHeader, got)
				return
			}
			assert.Equal(t, tt.wantHeader, got)
		})
	}

	t.Run("custom header name", func(t *testing.T) {
		handler := RequestIDMiddleware(RequestIDConfig{HeaderName: "X-Trace-ID"})(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, w.Header().Get("X-Request-ID"))
		assert.Regexp(t, uuidV7Regex, w.Header().Get("X-Trace-ID"))
	})
}

func TestGenerators(t *testing.T) {
	t.Run("v4", func(t *testing.T) {
		assert.Regexp(t, uuidV4Regex, GenerateUUIDv4(nil))
	})

	t.Run("v7", func(t *testing.T) {
		assert.Regexp(t, uuidV7Regex, GenerateUUIDv7(nil))
	})
}

func TestRequestIDFromContext(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})

	t.Run("present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), requestIDKey{}, "abc")
		require.Equal(t, "abc", RequestIDFromContext(ctx))
	})
}
