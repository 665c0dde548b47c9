package mux

import (
	"context"
	"errors"
	"net/http"
)

// routeContextKey is an unexported type for the single context key.
type routeContextKey struct{}

// ctxKey is the single context key used to store the selected route.
var ctxKey = routeContextKey{}

// routeContext holds the selected route, its variables and version.
type routeContext struct {
	route   *Route
	vars    map[string]string
	version string
}

// Vars returns the route variables for the current request, if any.
func Vars(r *http.Request) map[string]string {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.vars
	}
	return nil
}

// VarGet returns the value of a single route variable by name and a boolean
// indicating whether the variable exists.
func VarGet(r *http.Request, name string) (string, bool) {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok && rc.vars != nil {
		val, exists := rc.vars[name]
		return val, exists
	}
	return "", false
}

// CurrentRoute returns the selected route for the current request, if any.
func CurrentRoute(r *http.Request) *Route {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.route
	}
	return nil
}

// CurrentVersion returns the version tag the current request was resolved
// to. It is empty for unversioned routes.
func CurrentVersion(r *http.Request) string {
	if rc, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		return rc.version
	}
	return ""
}

// SetURLVars sets the URL variables for the given request, returning the
// modified request. This is intended for testing route handlers.
func SetURLVars(r *http.Request, val map[string]string) *http.Request {
	rc := &routeContext{vars: val}
	if prev, ok := r.Context().Value(ctxKey).(*routeContext); ok {
		rc.route = prev.route
		rc.version = prev.version
	}
	return r.WithContext(context.WithValue(r.Context(), ctxKey, rc))
}

// setRouteContext stores the selected candidate in the request context.
func setRouteContext(r *http.Request, c *Candidate) *http.Request {
	rc := &routeContext{route: c.Route, vars: c.Vars, version: c.Version}
	return r.WithContext(context.WithValue(r.Context(), ctxKey, rc))
}

// RouteMatch stores information about a single matched route.
type RouteMatch struct {
	// Route is the matched route, if any.
	Route *Route

	// Handler is the handler to use for the matched route.
	Handler http.Handler

	// Vars contains the extracted path variables from the matched route.
	Vars map[string]string

	// MatchErr is set to ErrMethodMismatch when the request method
	// does not match but the path does.
	MatchErr error
}

// MatcherFunc is the function signature used by custom matchers.
type MatcherFunc func(*http.Request, *RouteMatch) bool

// Match implements the matcher interface.
func (m MatcherFunc) Match(r *http.Request, match *RouteMatch) bool {
	return m(r, match)
}

// MiddlewareFunc is a function which receives an http.Handler and returns
// another http.Handler.
type MiddlewareFunc func(http.Handler) http.Handler

// Middleware allows MiddlewareFunc to implement the Middleware interface.
func (mw MiddlewareFunc) Middleware(handler http.Handler) http.Handler {
	return mw(handler)
}

// WalkFunc is the type of the function called for each route visited by
// Walk.
type WalkFunc func(route *Route) error

// ErrMethodMismatch is set when the method in the request does not match
// the method defined against the route.
var ErrMethodMismatch = errors.New("method is not allowed")

// ErrNotFound is returned when no route match is found.
var ErrNotFound = errors.New("no matching route was found")
