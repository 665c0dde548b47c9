package mux

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// matcher is the interface implemented by route matchers.
type matcher interface {
	Match(*http.Request, *RouteMatch) bool
}

// Route stores information to match a request against a path template and
// the handler version serving it.
type Route struct {
	handler     http.Handler
	matchers    []matcher
	path        *routeRegexp
	name        string
	namespace   string
	err         error
	namedRoutes map[string]*Route
}

// Match matches this route against the request. A path match with a method
// mismatch sets match.MatchErr to ErrMethodMismatch and returns false.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}

	if r.path != nil && !r.path.Match(req.URL.Path) {
		return false
	}

	var methodMismatch bool
	for _, m := range r.matchers {
		if m.Match(req, match) {
			continue
		}
		if _, ok := m.(methodMatcher); ok {
			methodMismatch = true
			continue
		}
		return false
	}

	if methodMismatch {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	match.Route = r
	match.Handler = r.handler
	if r.path != nil && len(r.path.varsN) > 0 {
		match.Vars = make(map[string]string, len(r.path.varsN))
		r.path.setVars(req.URL.Path, match.Vars)
	}

	return true
}

// addMatcher adds a matcher to the route.
func (r *Route) addMatcher(m matcher) *Route {
	if r.err == nil {
		r.matchers = append(r.matchers, m)
	}
	return r
}

func (r *Route) setPath(tpl string, prefix bool) *Route {
	if r.err != nil {
		return r
	}
	rr, err := newRouteRegexp(tpl, prefix)
	if err != nil {
		r.err = err
		return r
	}
	r.path = rr
	return r
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Namespace marks the route as versioned, declaring the package path (or
// dotted namespace) whose last segment is matched against version tags.
// An empty namespace makes the route unversioned.
func (r *Route) Namespace(ns string) *Route {
	if r.err == nil {
		r.namespace = ns
	}
	return r
}

// GetNamespace returns the namespace of the route; empty for unversioned
// routes.
func (r *Route) GetNamespace() string {
	return r.namespace
}

// Name sets the name for the route. Returns an error if the route already
// has a name.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Path adds a path matcher to the route per RFC 3986 Section 3.3.
func (r *Route) Path(tpl string) *Route {
	return r.setPath(tpl, false)
}

// PathPrefix adds a path prefix matcher to the route.
func (r *Route) PathPrefix(tpl string) *Route {
	return r.setPath(tpl, true)
}

// Methods adds a method matcher to the route. Calling Methods multiple times
// replaces the previous method matcher.
func (r *Route) Methods(methods ...string) *Route {
	upper := make([]string, len(methods))
	for i, m := range methods {
		upper[i] = strings.ToUpper(m)
	}
	filtered := r.matchers[:0]
	for _, m := range r.matchers {
		if _, ok := m.(methodMatcher); !ok {
			filtered = append(filtered, m)
		}
	}
	r.matchers = filtered
	return r.addMatcher(methodMatcher(upper))
}

// MatcherFunc adds a custom matcher function to the route.
func (r *Route) MatcherFunc(f MatcherFunc) *Route {
	return r.addMatcher(f)
}

// GetPathTemplate returns the template for the route path, if defined.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.path == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.path.template, nil
}

// GetMethods returns the methods the route matches against.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.matchers {
		if methods, ok := m.(methodMatcher); ok {
			return []string(methods), nil
		}
	}
	return nil, errors.New("mux: route doesn't have methods")
}

// GetVarNames returns the variable names for the route.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.path == nil {
		return nil, nil
	}
	return r.path.varsN, nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}

// methodMatcher matches the request method token (RFC 9110 Section 9)
// against a list of allowed methods.
type methodMatcher []string

func (m methodMatcher) Match(r *http.Request, _ *RouteMatch) bool {
	return matchInArray([]string(m), r.Method)
}
