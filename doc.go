// Package matcalc is the core of a symbolic matrix calculator: it adds,
// subtracts and multiplies matrices whose cells may be numbers, fractions,
// variables or small polynomials, and records how every result cell was
// derived.
//
// 🚀 What is in the box?
//
//	• Exact values: integers and fractions on math/big, never floats
//	• Symbolic cells: a, 2b, (x+1)^2, 1/3y … collected into canonical form
//	• Kernels: Add, Sub and Mul with strict shape validation
//	• Traces: one derivation line per result cell, in row-major order
//	• Display modes: decimal, fraction or letters (1 → A, 26 → Z)
//
// ✨ Guarantees
//
//   - Deterministic - same input, same trace, byte for byte
//   - No partial results - validation happens before any allocation
//   - Stateless - every computation is independent
//   - Structured errors - ParseError, ShapeError, ArithmeticError via errors.As
//
// Packages:
//
//	value/         the Value union, parser, arithmetic & simplification
//	matrix/        Dense storage, validators, kernels, trace entries
//	trace/         rendering of trace entries into text lines
//	format/        display modes for values
//	calc/          request/result facade with logging
//	internal/      config, logging, input files, fixtures, presentation, TUI
//	cmd/matcalc/   the command-line front end
//
// Quick example:
//
//	[1/2  a] × [2] = [1/2*2 + a*a] = [a² + 1]
//	           [a]
//
//	go install github.com/katalvlaran/matcalc/cmd/matcalc@latest
package matcalc
