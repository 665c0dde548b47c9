package mux

import (
	"net/http"
	"reflect"
	"strings"
)

// Candidate is a route matched for a request path, prior to version
// selection.
type Candidate struct {
	// Route is the matched route.
	Route *Route

	// Handler is the route's handler.
	Handler http.Handler

	// Namespace is the package path that declares the handler. It is empty
	// for unversioned routes.
	Namespace string

	// Vars contains the extracted path variables.
	Vars map[string]string

	// Version is the version tag the candidate was selected for. It is set
	// by a Resolver and empty until then.
	Version string
}

// MatchesTag reports whether the last segment of the candidate's namespace
// equals tag, ignoring case.
func (c *Candidate) MatchesTag(tag string) bool {
	return NamespaceHasTag(c.Namespace, tag)
}

// RouteData holds every route that matched a request, in registration order.
type RouteData struct {
	Candidates []*Candidate
}

// Versioned reports whether any candidate declares a namespace.
func (d *RouteData) Versioned() bool {
	if d == nil {
		return false
	}
	for _, c := range d.Candidates {
		if c.Namespace != "" {
			return true
		}
	}
	return false
}

// Resolver picks the candidate that serves a request among the routes
// matched for its path.
type Resolver interface {
	Resolve(req *http.Request, data *RouteData) (*Candidate, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(*http.Request, *RouteData) (*Candidate, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(req *http.Request, data *RouteData) (*Candidate, error) {
	return f(req, data)
}

// NamespaceHasTag reports whether namespace ends with the segment tag.
// Segments are separated by "/" (package paths) or "." (dotted names);
// comparison ignores case.
func NamespaceHasTag(namespace, tag string) bool {
	if tag == "" || len(namespace) < len(tag) {
		return false
	}

	rest := namespace[:len(namespace)-len(tag)]
	if !strings.EqualFold(namespace[len(rest):], tag) {
		return false
	}

	return rest == "" || strings.HasSuffix(rest, "/") || strings.HasSuffix(rest, ".")
}

// HandlerNamespace returns the package path of the handler's named type.
// Pointer types are dereferenced. It returns an empty string for unnamed
// types and for http.HandlerFunc.
func HandlerNamespace(h http.Handler) string {
	if h == nil {
		return ""
	}

	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" || t == handlerFuncType {
		return ""
	}

	return t.PkgPath()
}

var handlerFuncType = reflect.TypeOf(http.HandlerFunc(nil))
