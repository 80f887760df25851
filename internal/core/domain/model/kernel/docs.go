// Package kernel provides the shared domain primitives of the restaurant core.
//
// The package includes:
//   - UUID: the identifier value object used by every aggregate and entity
//   - Clock: the time source used for lifecycle timestamps, order numbering and wait-time scoring
//
// Value objects here are immutable and safe for concurrent use.
package kernel
