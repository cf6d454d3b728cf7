// Package types defines the core data types and interfaces shared across the
// scheduler library.
//
// The root impala package re-exports the public subset via type aliases, so
// internal packages can depend on types without importing the root package.
package types
