package selector

import (
	"errors"
	"net/http"

	"github.com/vitalvas/vroute/version"
)

// ReasonVersionNotSupported is the reason reported when no version serves
// a request.
const ReasonVersionNotSupported = "Version is not supported"

var (
	// ErrNoRouteData is returned when the router matched nothing for the
	// request.
	ErrNoRouteData = errors.New("no route data")

	// ErrNoCandidates is returned when route data carries no candidates.
	ErrNoCandidates = errors.New("no route candidates")

	// ErrVersionNotSupported is returned when no version is effective as of
	// the requested date, or when no candidate serves any version of the
	// chain.
	ErrVersionNotSupported = version.ErrVersionNotSupported
)

// NotFoundError is the terminal failure of a selection. Its message is the
// reason reported to the client.
type NotFoundError struct {
	// Kind is one of the package sentinel errors.
	Kind error

	// Reason is a short human readable explanation.
	Reason string
}

func notFound(kind error) *NotFoundError {
	reason := http.StatusText(http.StatusNotFound)
	if kind == ErrVersionNotSupported {
		reason = ReasonVersionNotSupported
	}
	return &NotFoundError{Kind: kind, Reason: reason}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return e.Reason
}

// Unwrap returns the sentinel kind.
func (e *NotFoundError) Unwrap() error {
	return e.Kind
}

// StatusCode returns the HTTP status of the failure.
func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// WriteError writes err as a plain text response. Errors exposing a
// StatusCode method use it; anything else is a 404. It matches the
// signature of mux.Router.ResolveErrorHandler.
func WriteError(w http.ResponseWriter, _ *http.Request, err error) {
	code := http.StatusNotFound
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		code = sc.StatusCode()
	}
	http.Error(w, err.Error(), code)
}

// WriteError is like the package level WriteError but also adds the version
// header to Vary, so caches keep rejections per requested date. It matches
// the signature of mux.Router.ResolveErrorHandler.
func (s *Selector) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Add("Vary", s.header)
	WriteError(w, r, err)
}
