// Package handler implements the gateway's HTTP surface: the per-request
// auth gate, the command builder mapping a request onto a store command,
// the batch endpoints, and reply formatting selected by request headers.
package handler
