// Package selector resolves a request to the handler version it should be
// served by.
//
// Clients send the date of the API version they were built against in a
// request header (X-Api-Version by default):
//
//	X-Api-Version: 2015-05-01
//
// The Selector finds the version effective on that date and walks the
// version chain backward, checking the route candidates for the request
// path at each step. The first candidate whose namespace ends with the
// version tag is selected, so a newer version always outranks candidate
// order. Without the header, the walk starts at the latest version.
//
// The Selector implements mux.Resolver:
//
//	r := mux.NewRouter()
//	sel := selector.New(idx, r, selector.WithHeader("Api-Version"))
//	r.Resolver = sel
//	r.ResolveErrorHandler = sel.WriteError
//
// Every failure is a *NotFoundError wrapping one of ErrNoRouteData,
// ErrNoCandidates or ErrVersionNotSupported.
package selector
