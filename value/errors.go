// SPDX-License-Identifier: MIT
// Package value: sentinel errors and structured error types.
//
// Sentinels are prefixed with "value: ". Structured errors (ParseError,
// ArithmeticError) implement Unwrap so callers match with errors.Is on the
// sentinel and errors.As on the type when they need the detail.

package value

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax marks structurally malformed input: unbalanced parentheses,
	// a dangling operator, an empty group.
	ErrSyntax = errors.New("value: malformed expression")

	// ErrUnsupported marks well-formed input the algebra cannot represent
	// (unknown characters, symbolic divisors, fractional exponents). The
	// parser falls back to a Symbol on it unless strict parsing is enabled.
	ErrUnsupported = errors.New("value: unsupported expression")

	// ErrDivisionByZero is returned by Quo and Pow for a zero divisor.
	ErrDivisionByZero = errors.New("value: division by zero")

	// ErrNotPolynomial is returned when a result would leave the polynomial
	// algebra (division by a symbol, negative power of a symbol).
	ErrNotPolynomial = errors.New("value: result is not a polynomial")

	// ErrTooLarge is returned when an expansion would exceed MaxTerms terms.
	ErrTooLarge = errors.New("value: expression too large")
)

// ParseError describes a token that could not be read.
type ParseError struct {
	Token  string // the raw token as supplied
	Offset int    // byte offset of the offending position inside Token
	Reason string // short human-readable cause
	Err    error  // ErrSyntax or ErrUnsupported
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("value: parse %q at offset %d: %s", e.Token, e.Offset, e.Reason)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// ArithmeticError reports an undefined operation on values.
type ArithmeticError struct {
	Op  string // "Quo", "Pow"
	Err error  // ErrDivisionByZero, ErrNotPolynomial or ErrTooLarge
}

// Error implements error.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("value: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ArithmeticError) Unwrap() error { return e.Err }
