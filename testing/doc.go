// Package testing provides test utilities for scheduler and feed tests:
// an embedded NATS server and a testing.T-backed logger.
package testing
