// Package domain defines the core domain models for redisgate.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Command: A store command name plus its ordered arguments
//   - Batch: An ordered command sequence with a pipeline or transaction mode
//   - Value: A tagged union over every reply shape the store can produce,
//     with the Flatten and Base64 transforms applied by the formatter
//   - Errors: Gateway error definitions with stable RG- codes
//
// Transforms over Value are total functions: every kind has defined
// behavior in every transform.
package domain
