// Package benchmark provides benchmarks for the gateway's hot paths:
// reply conversion, response formatting, and command construction.
//
// Run with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/
package benchmark
