// Package service implements the gateway's application services: single
// command execution, batch execution in pipeline or transaction mode,
// reply formatting, and the store health check.
package service
