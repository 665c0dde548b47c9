// Package mux implements a request router that matches incoming HTTP
// requests against path templates and dispatches the handler serving the
// requested API version.
//
// The package follows the gorilla/mux style of route registration and
// implements routing semantics based on:
//   - RFC 9110 (HTTP Semantics)
//   - RFC 3986 (URIs)
//
// # Router
//
// Create a router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/health", HealthHandler)
//	r.HandleFunc("/articles/{category}/{id:int}", ArticleHandler)
//	http.Handle("/", r)
//
// # Candidates and Versions
//
// Unlike a classic router, every route matching a request path is kept as a
// Candidate. Versioned routes carry a namespace, the package path declaring
// their handler, whose last segment is the version tag:
//
//	r.HandleVersioned("/users/{id}", &v1.UsersHandler{}) // namespace ".../v1"
//	r.HandleVersioned("/users/{id}", &v2.UsersHandler{}) // namespace ".../v2"
//	r.HandleFunc("/users/{id}", fn).Namespace("example.com/api/v3")
//
// RouteData returns all candidates for a request in registration order.
// When the first candidate is versioned and a Resolver is set, the Resolver
// picks the candidate to dispatch; otherwise the first candidate wins.
//
//	r.Resolver = sel // e.g. *selector.Selector
//
// A Resolver error is rendered as 404 Not Found carrying the error text,
// unless ResolveErrorHandler is set.
//
// # Path Variables
//
// Routes can have variables enclosed in curly braces, optionally followed
// by a colon and a regular expression or macro name:
//
//	r.HandleFunc("/users/{id:uuid}", handler)
//	r.HandleFunc("/events/{d:date}", handler)
//
// Available macros: uuid, int, slug, alpha, alphanum, date, hex and tag
// (a version tag such as v2).
//
// # Context Functions
//
//	vars := mux.Vars(r)
//	id, ok := mux.VarGet(r, "id")
//	route := mux.CurrentRoute(r)
//	tag := mux.CurrentVersion(r)
//
// # Error Handling
//
// NotFoundHandler is called when no route matches a request.
// MethodNotAllowedHandler is called when a route matches the path but not
// the method; the Allow header is set before it runs (RFC 9110
// Section 15.5.6).
//
// # Middleware
//
// Middleware wraps the selected handler and runs after version selection,
// so CurrentVersion is available to it:
//
//	r.Use(mux.MiddlewareFunc(loggingMiddleware))
//
// # Response Helpers
//
// ResponseJSON and ResponseYAML encode a value and write it with the
// matching Content-Type. If encoding fails, a 500 is written instead.
package mux
