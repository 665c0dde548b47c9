// Package diagnostics exposes the handler registry and the version index
// over HTTP so operators can see which handler serves which version.
//
//	diagnostics.Handle(r, "/_versions", reg, idx, nil)
//
// registers:
//
//	GET /_versions/mapping.json
//	GET /_versions/mapping.yaml
//	GET /_versions/versions.json
//
// The endpoints are unversioned routes and are dispatched without consulting
// the router's resolver.
package diagnostics
