package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMethodMiddleware(t *testing.T) {
	t.Run("lists methods of every version of the path", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/users", textHandler("v1")).Methods(http.MethodGet).Namespace("api/v1")
		r.HandleFunc("/users", textHandler("v2")).Methods(http.MethodGet, http.MethodPost).Namespace("api/v2")
		r.HandleFunc("/other", textHandler("x")).Methods(http.MethodDelete)
		r.Use(CORSMethodMiddleware(r))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
		assert.Equal(t, "GET,POST", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("error when no probed method matches", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/x", textHandler("x")).Methods("PROPFIND")

		_, err := methodsForPath(r, httptest.NewRequest("PROPFIND", "/x", nil))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
