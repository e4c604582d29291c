// Package contract provides interfaces and shared utilities for internal architecture.
package contract

// RandSource picks feedback phrases. It is an interface so benchmark
// evaluation can be made deterministic in tests or seeded from config.
type RandSource interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}
