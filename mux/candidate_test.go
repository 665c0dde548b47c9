package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type namedHandler struct{}

func (namedHandler) ServeHTTP(http.ResponseWriter, *http.Request) {}

func TestNamespaceHasTag(t *testing.T) {
	tests := []struct {
		namespace, tag string
		want           bool
	}{
		{"example.com/api/v1", "v1", true},
		{"example.com/api/V1", "v1", true},
		{"Company.Api.v2", "V2", true},
		{"v3", "v3", true},
		{"example.com/api/v11", "v1", false},
		{"example.com/api/xv1", "v1", false},
		{"example.com/api/v1/users", "v1", false},
		{"", "v1", false},
		{"example.com/api/v1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.namespace+"~"+tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, NamespaceHasTag(tt.namespace, tt.tag))
		})
	}
}

func TestHandlerNamespace(t *testing.T) {
	t.Run("named type", func(t *testing.T) {
		assert.Equal(t, "github.com/vitalvas/vroute/mux", HandlerNamespace(namedHandler{}))
		assert.Equal(t, "github.com/vitalvas/vroute/mux", HandlerNamespace(&namedHandler{}))
	})

	t.Run("handler func", func(t *testing.T) {
		assert.Empty(t, HandlerNamespace(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, HandlerNamespace(nil))
	})
}

func TestRouteDataVersioned(t *testing.T) {
	var nilData *RouteData
	assert.False(t, nilData.Versioned())

	assert.False(t, (&RouteData{Candidates: []*Candidate{{}}}).Versioned())
	assert.True(t, (&RouteData{Candidates: []*Candidate{{}, {Namespace: "api/v1"}}}).Versioned())
}

func TestCandidateMatchesTag(t *testing.T) {
	c := &Candidate{Namespace: "example.com/api/v2"}
	assert.True(t, c.MatchesTag("V2"))
	assert.False(t, c.MatchesTag("v1"))
}
