package muxhandlers

import (
	"net/http"

	"github.com/vitalvas/vroute/mux"
)

// newVersionedRouter returns a router whose resolver always picks the first
// candidate and stamps it with tag.
func newVersionedRouter(tag string, h http.HandlerFunc) *mux.Router {
	r := mux.NewRouter()
	r.Resolver = mux.ResolverFunc(func(_ *http.Request, data *mux.RouteData) (*mux.Candidate, error) {
		c := *data.Candidates[0]
		c.Version = tag
		return &c, nil
	})
	r.NewRoute().Path("/users").Namespace("example.com/api/" + tag).HandlerFunc(h)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}
