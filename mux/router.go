package mux

import (
	"net/http"
	"strings"
	"sync"
)

// Router registers routes to be matched and dispatches a handler.
//
// Several routes may match the same path: each one is a candidate for the
// request. When none of them is versioned the first candidate is
// dispatched. When at least one is versioned and a Resolver is set, all
// candidates are handed to the Resolver, which picks the one serving the
// requested version; versioned routes thus take precedence over unversioned
// ones registered before them.
//
//	r := mux.NewRouter()
//	r.Resolver = sel
//	r.HandleVersioned("/users/{id:int}", &v1.UsersHandler{})
//	r.HandleVersioned("/users/{id:int}", &v2.UsersHandler{})
//	http.ListenAndServe(":8080", r)
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler is called when a route matches the path
	// but not the method. If nil, a default 405 handler is used.
	// The Allow header is always set before this handler is invoked.
	MethodNotAllowedHandler http.Handler

	// Resolver selects among versioned candidates. If nil, the first
	// candidate is used.
	Resolver Resolver

	// ResolveErrorHandler is called when the Resolver rejects a request.
	// If nil, a 404 response carrying the error text is written.
	ResolveErrorHandler func(http.ResponseWriter, *http.Request, error)

	routes      []*Route
	namedRoutes map[string]*Route
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route
	// to avoid re-wrapping on every request.
	handlerCache sync.Map // map[*Route]http.Handler

	skipClean bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
	}
}

// ServeHTTP dispatches the handler of the selected candidate.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// unless SkipClean is enabled.
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	data, methodMismatch := r.match(req)
	if data == nil {
		if methodMismatch {
			// RFC 9110 Section 15.5.6: a 405 response MUST carry Allow.
			w.Header().Set("Allow", strings.Join(allowedMethods(r, req), ", "))
			r.methodNotAllowedHandler().ServeHTTP(w, req)
			return
		}
		r.notFoundHandler().ServeHTTP(w, req)
		return
	}

	candidate, err := r.resolve(req, data)
	if err != nil {
		if r.ResolveErrorHandler != nil {
			r.ResolveErrorHandler(w, req, err)
			return
		}
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	handler := candidate.Handler
	if handler == nil {
		r.notFoundHandler().ServeHTTP(w, req)
		return
	}

	req = setRouteContext(req, candidate)
	r.wrap(candidate.Route, handler).ServeHTTP(w, req)
}

// RouteData returns every route matching the request, in registration
// order, or nil when none matches.
func (r *Router) RouteData(req *http.Request) *RouteData {
	data, _ := r.match(req)
	return data
}

// match collects candidates and reports whether some route matched the
// path but not the method.
func (r *Router) match(req *http.Request) (*RouteData, bool) {
	var (
		candidates     []*Candidate
		methodMismatch bool
	)

	for _, route := range r.routes {
		var m RouteMatch
		if route.Match(req, &m) {
			candidates = append(candidates, &Candidate{
				Route:     route,
				Handler:   m.Handler,
				Namespace: route.namespace,
				Vars:      m.Vars,
			})
			continue
		}
		if m.MatchErr == ErrMethodMismatch {
			methodMismatch = true
		}
	}

	if len(candidates) == 0 {
		return nil, methodMismatch
	}

	return &RouteData{Candidates: candidates}, false
}

// resolve returns the first candidate when no candidate is versioned or no
// Resolver is set. Otherwise the Resolver sees every candidate, so an
// earlier unversioned route never hides a versioned one.
func (r *Router) resolve(req *http.Request, data *RouteData) (*Candidate, error) {
	if r.Resolver == nil || !data.Versioned() {
		return data.Candidates[0], nil
	}
	return r.Resolver.Resolve(req, data)
}

// wrap returns the middleware-wrapped handler for route, caching it.
func (r *Router) wrap(route *Route, handler http.Handler) http.Handler {
	if len(r.middlewares) == 0 {
		return handler
	}
	if cached, ok := r.handlerCache.Load(route); ok {
		return cached.(http.Handler)
	}
	wrapped := r.applyMiddleware(handler)
	actual, _ := r.handlerCache.LoadOrStore(route, wrapped)
	return actual.(http.Handler)
}

func (r *Router) notFoundHandler() http.Handler {
	if r.NotFoundHandler != nil {
		return r.NotFoundHandler
	}
	return http.NotFoundHandler()
}

func (r *Router) methodNotAllowedHandler() http.Handler {
	if r.MethodNotAllowedHandler != nil {
		return r.MethodNotAllowedHandler
	}
	return http.HandlerFunc(methodNotAllowed)
}

// SkipClean defines the path cleaning behavior. When true, the path will
// not be cleaned.
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// NewRoute creates an empty route for configuration.
func (r *Router) NewRoute() *Route {
	route := &Route{namedRoutes: r.namedRoutes}
	r.routes = append(r.routes, route)
	return route
}

// Handle registers a new unversioned route with a matcher for the URL path.
func (r *Router) Handle(path string, handler http.Handler) *Route {
	return r.NewRoute().Path(path).Handler(handler)
}

// HandleFunc registers a new unversioned route with a matcher for the URL
// path and a handler function.
func (r *Router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.NewRoute().Path(path).HandlerFunc(f)
}

// HandleVersioned registers a new versioned route whose namespace is the
// package path of the handler's type. Handlers of unnamed types register
// as unversioned routes; use Route.Namespace to declare one explicitly.
func (r *Router) HandleVersioned(path string, handler http.Handler) *Route {
	return r.Handle(path, handler).Namespace(HandlerNamespace(handler))
}

// Path registers a new route with a matcher for the URL path.
func (r *Router) Path(tpl string) *Route {
	return r.NewRoute().Path(tpl)
}

// PathPrefix registers a new route with a matcher for the URL path prefix.
func (r *Router) PathPrefix(tpl string) *Route {
	return r.NewRoute().PathPrefix(tpl)
}

// Methods registers a new route with a matcher for HTTP methods.
func (r *Router) Methods(methods ...string) *Route {
	return r.NewRoute().Methods(methods...)
}

// Get returns a route registered with the given name.
func (r *Router) Get(name string) *Route {
	return r.namedRoutes[name]
}

// Walk calls walkFn for each registered route in registration order,
// stopping at the first error.
func (r *Router) Walk(walkFn WalkFunc) error {
	for _, route := range r.routes {
		if err := walkFn(route); err != nil {
			return err
		}
	}
	return nil
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// selected handlers only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}
