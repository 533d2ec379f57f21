// Package orchestrator wires the loader → parser → assignment engine →
// sink writer pipeline, providing dependency injection friendly helpers
// for consumers that prefer a single entry point.
package orchestrator
