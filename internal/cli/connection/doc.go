// Package connection provides the HTTP client used by redisgate-cli to
// talk to a running gateway.
package connection
