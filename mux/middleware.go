package mux

import (
	"net/http"
	"strings"
)

// CORSMethodMiddleware sets the Access-Control-Allow-Methods response header
// to every method registered for the request path, across all versions.
func CORSMethodMiddleware(r *Router) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if methods, err := methodsForPath(r, req); err == nil {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ","))
			}
			next.ServeHTTP(w, req)
		})
	}
}

// methodsForPath returns the methods for which some route matches the
// request path, in probe order.
func methodsForPath(router *Router, req *http.Request) ([]string, error) {
	var methods []string
	for _, method := range probeMethods {
		testReq := req.Clone(req.Context())
		testReq.Method = method
		if data, _ := router.match(testReq); data != nil {
			methods = append(methods, method)
		}
	}

	if len(methods) == 0 {
		return nil, ErrNotFound
	}

	return methods, nil
}
