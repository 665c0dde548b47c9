package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHelpers(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, Vars(req))
		assert.Nil(t, CurrentRoute(req))
		assert.Empty(t, CurrentVersion(req))

		_, ok := VarGet(req, "id")
		assert.False(t, ok)
	})

	t.Run("values of the selected candidate", func(t *testing.T) {
		r := NewRouter()
		route := r.Handle("/users/{id}", textHandler("x")).Namespace("api/v2")

		req := setRouteContext(httptest.NewRequest(http.MethodGet, "/users/9", nil), &Candidate{
			Route:   route,
			Vars:    map[string]string{"id": "9"},
			Version: "v2",
		})

		assert.Same(t, route, CurrentRoute(req))
		assert.Equal(t, "v2", CurrentVersion(req))
		id, ok := VarGet(req, "id")
		require.True(t, ok)
		assert.Equal(t, "9", id)
	})

	t.Run("set url vars keeps route and version", func(t *testing.T) {
		route := NewRouter().Path("/x")
		req := setRouteContext(httptest.NewRequest(http.MethodGet, "/x", nil), &Candidate{Route: route, Version: "v1"})

		req = SetURLVars(req, map[string]string{"id": "42"})
		assert.Equal(t, map[string]string{"id": "42"}, Vars(req))
		assert.Same(t, route, CurrentRoute(req))
		assert.Equal(t, "v1", CurrentVersion(req))
	})

	t.Run("vars visible in handler", func(t *testing.T) {
		r := NewRouter()
		r.HandleFunc("/users/{id:int}", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(Vars(req)["id"]))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/42", nil))
		assert.Equal(t, "42", w.Body.String())
	})
}
