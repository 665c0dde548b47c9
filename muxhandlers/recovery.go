package muxhandlers

import (
	"fmt"
	"net/http"

	"github.com/vitalvas/vroute/mux"
	"go.uber.org/zap"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// Logger receives an error entry for every recovered panic.
	// When nil, panics are recovered silently.
	Logger *zap.Logger
}

// RecoveryMiddleware returns a middleware that recovers from panics in the
// selected handler and answers 500 Internal Server Error.
func RecoveryMiddleware(cfg RecoveryConfig) mux.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("handler panicked",
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("version", mux.CurrentVersion(r)),
						zap.String("request_id", RequestIDFromContext(r.Context())),
						zap.String("panic", fmt.Sprint(err)),
						zap.StackSkip("stack", 2),
					)

					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
