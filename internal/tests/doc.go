// Package tests provides end-to-end integration tests for the gateway,
// exercising the full middleware chain and handler against a scripted
// store.
package tests
