// Package httpserver provides the main HTTP listener for redisgate: the
// http.Server wrapper, the middleware chain (request ID, audit logging,
// panic recovery, optional rate limiting, metrics), and the router that
// hands every request to the gateway handler.
package httpserver
