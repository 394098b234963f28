// SPDX-License-Identifier: MIT

// Package calc is the single entry point of the calculator core.
//
// A Request carries the operation, the display mode and two raw token grids.
// Engine.Compute runs the full pipeline synchronously
//
//	parse → build → validate → compute → simplify
//
// and returns a Result holding the result matrix and its per-cell trace,
// both renderable under the requested display mode. On failure the error of
// the failing stage is returned unchanged, so callers can match it with
// errors.As against *value.ParseError, *value.ArithmeticError or
// *matrix.ShapeError. No partial result is ever returned.
//
// An Engine holds configuration only; computations share no state and an
// Engine may be used from several goroutines.
package calc
