package muxhandlers

import (
	"net/http"
	"time"

	"github.com/vitalvas/vroute/mux"
	"go.uber.org/zap"
)

// AccessLogConfig configures the AccessLog middleware behaviour.
type AccessLogConfig struct {
	// Logger receives one entry per request. Required.
	Logger *zap.Logger

	// VersionHeader is the request header carrying the requested version
	// date. When set, its raw value is logged as "requested".
	VersionHeader string

	// Skip, when it returns true, disables logging for the request.
	Skip func(r *http.Request) bool
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// AccessLogMiddleware returns a middleware that logs every dispatched
// request with the version tag it was resolved to. Server errors are logged
// at error level, client errors at warn level, everything else at info.
func AccessLogMiddleware(cfg AccessLogConfig) mux.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("latency", time.Since(start)),
				zap.String("version", mux.CurrentVersion(r)),
			}
			if id := RequestIDFromContext(r.Context()); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}
			if cfg.VersionHeader != "" {
				if requested := r.Header.Get(cfg.VersionHeader); requested != "" {
					fields = append(fields, zap.String("requested", requested))
				}
			}

			switch {
			case status >= 500:
				logger.Error("request completed", fields...)
			case status >= 400:
				logger.Warn("request completed", fields...)
			default:
				logger.Info("request completed", fields...)
			}
		})
	}
}
