package muxhandlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionHeaderMiddleware(t *testing.T) {
	t.Run("sets resolved version and vary", func(t *testing.T) {
		r := newVersionedRouter("v3", func(_ http.ResponseWriter, _ *http.Request) {})
		r.Use(VersionHeaderMiddleware(VersionHeaderConfig{RequestHeader: "X-Api-Version"}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, "v3", w.Header().Get("X-Api-Resolved-Version"))
		assert.Equal(t, "X-Api-Version", w.Header().Get("Vary"))
	})

	t.Run("custom response header without vary", func(t *testing.T) {
		r := newVersionedRouter("v1", func(_ http.ResponseWriter, _ *http.Request) {})
		r.Use(VersionHeaderMiddleware(VersionHeaderConfig{ResponseHeader: "X-Version"}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))

		assert.Equal(t, "v1", w.Header().Get("X-Version"))
		assert.Empty(t, w.Header().Get("Vary"))
	})

	t.Run("unversioned route", func(t *testing.T) {
		r := newVersionedRouter("v1", func(_ http.ResponseWriter, _ *http.Request) {})
		r.Use(VersionHeaderMiddleware(VersionHeaderConfig{RequestHeader: "X-Api-Version"}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, w.Header().Get("X-Api-Resolved-Version"))
		assert.Empty(t, w.Header().Get("Vary"))
	})
}
