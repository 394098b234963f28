// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Operation selects a kernel. Each operation has a fixed shape rule
// (Validate) and a fixed per-cell derivation rule (Add/Sub/Mul).
type Operation uint8

const (
	// OpAdd is element-wise a + b; shapes must match.
	OpAdd Operation = iota
	// OpSub is element-wise a - b; shapes must match.
	OpSub
	// OpMul is the matrix product a × b; a.Cols must equal b.Rows.
	OpMul
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opBuild      = "Build"
	opFromValues = "FromValues"
	opValidate   = "Validate"
	opCompute    = "Compute"
)

// Operations lists every supported operation in display order.
func Operations() []Operation { return []Operation{OpAdd, OpSub, OpMul} }

// String returns "Add", "Sub" or "Mul".
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return opAdd
	case OpSub:
		return opSub
	case OpMul:
		return opMul
	default:
		return fmt.Sprintf("Operation(%d)", uint8(op))
	}
}

// Symbol returns the infix sign used in traces: "+", "-" or "*".
func (op Operation) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "?"
	}
}

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool { return op <= OpMul }

// ParseOperation reads an operation name, case-insensitively.
// Accepted: add|sum|plus|+, sub|subtract|minus|diff|-, mul|multiply|product|times|*|x.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "sum", "plus", "+":
		return OpAdd, nil
	case "sub", "subtract", "minus", "diff", "-":
		return OpSub, nil
	case "mul", "multiply", "product", "times", "*", "x", "×":
		return OpMul, nil
	default:
		return 0, fmt.Errorf("ParseOperation(%q): %w", s, ErrUnknownOperation)
	}
}

// MarshalText implements encoding.TextMarshaler (lower-case name).
func (op Operation) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, ErrUnknownOperation
	}

	return []byte(strings.ToLower(op.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseOperation.
func (op *Operation) UnmarshalText(text []byte) error {
	v, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*op = v

	return nil
}
