// SPDX-License-Identifier: MIT

// Package format projects values onto display text without changing them.
//
// Modes:
//   - Decimal:  integers as digits, other numbers with one decimal place.
//   - Fraction: numbers as reduced p/q (integers without a denominator).
//   - Letters:  numbers floored and mapped onto A..Z modulo 26 (0→A, -1→Z).
//
// Symbols and expressions render in their canonical text in every mode.
package format

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/matcalc/value"
)

// ErrUnknownMode is returned by ParseMode for an unrecognized name.
var ErrUnknownMode = errors.New("format: unknown display mode")

// Mode selects a display projection.
type Mode uint8

const (
	// Decimal renders numbers with one decimal place unless integral.
	Decimal Mode = iota
	// Fraction renders numbers as reduced fractions.
	Fraction
	// Letters maps numbers onto the alphabet.
	Letters
)

const (
	decimalPlaces = 1
	alphabet      = 26
	negZero       = "-0.0"
)

// Modes lists every display mode in menu order.
func Modes() []Mode { return []Mode{Decimal, Fraction, Letters} }

// String returns "Decimal", "Fraction" or "Letters".
func (m Mode) String() string {
	switch m {
	case Decimal:
		return "Decimal"
	case Fraction:
		return "Fraction"
	case Letters:
		return "Letters"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode reads a mode name case-insensitively.
// Accepted: decimal|dec, fraction|frac|rational, letters|letter|alpha.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "decimal", "dec":
		return Decimal, nil
	case "fraction", "frac", "rational":
		return Fraction, nil
	case "letters", "letter", "alpha":
		return Letters, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

// MarshalText implements encoding.TextMarshaler (lower-case name).
func (m Mode) MarshalText() ([]byte, error) {
	if m > Letters {
		return nil, ErrUnknownMode
	}

	return []byte(strings.ToLower(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMode.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Formatter renders values under a fixed Mode. The zero value uses Decimal.
type Formatter struct{ mode Mode }

// New returns a Formatter for mode.
func New(mode Mode) Formatter { return Formatter{mode: mode} }

// Mode returns the formatter's mode.
func (f Formatter) Mode() Mode { return f.mode }

// Format renders v under the formatter's mode.
func (f Formatter) Format(v value.Value) string { return Format(v, f.mode) }

// Format renders v under mode. A nil v renders as zero.
func Format(v value.Value, mode Mode) string {
	if v == nil {
		v = value.Zero()
	}
	r, ok := value.Rat(v)
	if !ok {
		return v.String()
	}
	switch mode {
	case Fraction:
		return r.RatString()
	case Letters:
		return letter(r)
	default:
		return decimal(r)
	}
}

func decimal(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(decimalPlaces)
	if s == negZero {
		return negZero[1:]
	}

	return s
}

// letter floors r and maps it onto 'A'..'Z', wrapping negatives.
func letter(r *big.Rat) string {
	n := new(big.Int).Div(r.Num(), r.Denom()) // Euclidean: floors for a positive denominator
	n.Mod(n, big.NewInt(alphabet))

	return string(rune('A' + n.Int64()))
}
