// Package main provides the entry point for redisgate-server.
//
// redisgate-server is an HTTP gateway in front of Redis: every request
// path is translated into a Redis command, executed over a pooled
// connection, and returned as JSON.
package main
