// Package confloader provides configuration loading mechanism.
//
// This package implements a flexible configuration loader that supports
// multiple sources using koanf as the underlying library.
//
// Priority (highest to lowest):
//
//  1. Environment variables (REDISGATE_ prefix)
//  2. Configuration file (YAML)
//  3. Default values populated on the target struct
//
// The companion Watcher reloads the file on change, debouncing editor
// save bursts into a single callback.
package confloader
