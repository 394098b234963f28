// Package matrix offers immutable matrices of symbolic cells and the
// Add, Sub and Mul kernels that compute them with a per-cell trace.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols grid of value.Value, immutable once built.
//   - Build, which parses a rectangular grid of raw tokens into a Dense.
//   - Validate and friends, the single source of truth for shape checks.
//   - Add, Sub, Mul (and Compute, which dispatches on an Operation), each
//     returning the canonical result matrix and one TraceEntry per cell.
//
// Every kernel validates before it allocates: on a shape error no partial
// result exists. Result cells are simplified exactly once; trace steps keep
// the raw, unsimplified arithmetic.
//
// See the examples in this package and the calc package for usage patterns.
package matrix
