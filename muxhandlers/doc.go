// Package muxhandlers provides HTTP middleware for the mux router.
//
// Middlewares run after version resolution, so mux.CurrentVersion reports
// the tag of the handler that is about to serve the request.
//
// # Request ID Middleware
//
// RequestIDMiddleware generates a UUID for every request, or reuses a valid
// incoming one when TrustIncoming is set.
//
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}))
//
// # Access Log Middleware
//
// AccessLogMiddleware writes one zap entry per request including the
// resolved version tag and, when configured, the raw requested date.
//
//	r.Use(muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{
//	    Logger:        logger,
//	    VersionHeader: "X-Api-Version",
//	}))
//
// # Recovery Middleware
//
// RecoveryMiddleware turns a panic in the selected handler into a 500
// response and logs it with the stack.
//
// # Version Header Middleware
//
// VersionHeaderMiddleware echoes the resolved tag in a response header and
// adds the request header to Vary.
package muxhandlers
