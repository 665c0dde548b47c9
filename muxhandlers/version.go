package muxhandlers

import (
	"net/http"

	"github.com/vitalvas/vroute/mux"
)

// VersionHeaderConfig configures the VersionHeader middleware behaviour.
type VersionHeaderConfig struct {
	// ResponseHeader is the header carrying the resolved version tag.
	// Defaults to "X-Api-Resolved-Version" when empty.
	ResponseHeader string

	// RequestHeader is the header clients use to request a version. When
	// set, it is added to Vary so that caches keep one entry per
	// requested version.
	RequestHeader string
}

// VersionHeaderMiddleware returns a middleware that tells the client which
// version served its request. Unversioned routes get no header.
func VersionHeaderMiddleware(cfg VersionHeaderConfig) mux.MiddlewareFunc {
	responseHeader := cfg.ResponseHeader
	if responseHeader == "" {
		responseHeader = "X-Api-Resolved-Version"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tag := mux.CurrentVersion(r); tag != "" {
				w.Header().Set(responseHeader, tag)
				if cfg.RequestHeader != "" {
					w.Header().Add("Vary", cfg.RequestHeader)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
