// SPDX-License-Identifier: MIT

// Package value - token parser.
//
// Rules, applied in order:
//  1. Empty token → Number 0.
//  2. Digits with at most one decimal point → exact Number.
//  3. Algebraic expression (+ - * / ^ ** parentheses, implicit products,
//     multi-character names) → canonical Value.
//  4. Anything well-formed but unsupported → Symbol named as typed
//     (or a ParseError under WithStrict).
//
// Structural errors (unbalanced parentheses, dangling operators, empty
// groups) are always a *ParseError; a literal zero divisor is an
// *ArithmeticError.

package value

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxExponent bounds |n| in a^n.
const DefaultMaxExponent = 64

const panicMaxExponent = "value: WithMaxExponent: limit must be >= 0"

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	strict      bool
	maxExponent int
}

func defaultParseOptions() parseOptions {
	return parseOptions{maxExponent: DefaultMaxExponent}
}

// WithStrict makes Parse return a *ParseError (wrapping ErrUnsupported)
// where it would otherwise fall back to a bare Symbol.
func WithStrict() ParseOption {
	return func(o *parseOptions) { o.strict = true }
}

// WithMaxExponent sets the largest accepted |exponent|. Panics on n < 0.
func WithMaxExponent(n int) ParseOption {
	if n < 0 {
		panic(panicMaxExponent)
	}

	return func(o *parseOptions) { o.maxExponent = n }
}

// Parse converts one raw cell token into a canonical Value.
func Parse(token string, opts ...ParseOption) (Value, error) {
	o := defaultParseOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := strings.TrimSpace(token)
	if s == "" {
		return Zero(), nil
	}
	if isDecimalLiteral(s) {
		return parseDecimal(s), nil
	}

	p := &parser{src: s, opts: o}
	v, err := p.parse()
	if err == nil {
		return Simplify(v), nil
	}

	var pe *ParseError
	var ae *ArithmeticError
	switch {
	case errors.As(err, &ae) && errors.Is(ae, ErrDivisionByZero):
		return nil, ae
	case errors.As(err, &pe) && errors.Is(pe, ErrSyntax):
		pe.Token = token
		return nil, pe
	case o.strict:
		if errors.As(err, &pe) {
			pe.Token = token
			return nil, pe
		}
		return nil, &ParseError{Token: token, Offset: p.pos, Reason: err.Error(), Err: ErrUnsupported}
	default:
		return NewSymbol(s), nil
	}
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(token string, opts ...ParseOption) Value {
	v, err := Parse(token, opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// isDecimalLiteral: only digits once at most one '.' is removed.
func isDecimalLiteral(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}

	return digits > 0 && dots <= 1
}

// parseDecimal reads a validated decimal literal exactly ("2.50" → 5/2).
func parseDecimal(s string) Number {
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		// unreachable for validated literals
		return Zero()
	}

	return Number{r: r}
}

// ---------- lexer ----------

type tokenKind uint8

const (
	tkEOF tokenKind = iota
	tkNumber
	tkIdent
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkCaret
	tkLParen
	tkRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (k tokenKind) String() string {
	switch k {
	case tkEOF:
		return "end of input"
	case tkNumber:
		return "number"
	case tkIdent:
		return "name"
	case tkLParen:
		return "'('"
	case tkRParen:
		return "')'"
	default:
		return "operator"
	}
}

// lex splits src into tokens. Unknown characters are ErrUnsupported.
func lex(src string) ([]token, error) {
	var out []token
	for i := 0; i < len(src); {
		r, w := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case r >= '0' && r <= '9' || r == '.':
			start, dots := i, 0
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.' && dots == 0) {
				if src[i] == '.' {
					dots++
				}
				i++
			}
			if !isDecimalLiteral(src[start:i]) {
				return nil, &ParseError{Offset: start, Reason: "lone decimal point", Err: ErrUnsupported}
			}
			out = append(out, token{kind: tkNumber, text: src[start:i], pos: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(src) {
				r, w = utf8.DecodeRuneInString(src[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += w
			}
			out = append(out, token{kind: tkIdent, text: src[start:i], pos: start})
		default:
			k, width := opToken(src[i:])
			if k == tkEOF {
				return nil, &ParseError{Offset: i, Reason: fmt.Sprintf("unexpected character %q", r), Err: ErrUnsupported}
			}
			out = append(out, token{kind: k, text: src[i : i+width], pos: i})
			i += width
		}
	}

	return append(out, token{kind: tkEOF, pos: len(src)}), nil
}

func opToken(s string) (tokenKind, int) {
	if strings.HasPrefix(s, "**") {
		return tkCaret, 2
	}
	for _, mul := range []string{"×", "·"} {
		if strings.HasPrefix(s, mul) {
			return tkStar, len(mul)
		}
	}
	switch s[0] {
	case '+':
		return tkPlus, 1
	case '-':
		return tkMinus, 1
	case '*':
		return tkStar, 1
	case '/':
		return tkSlash, 1
	case '^':
		return tkCaret, 1
	case '(':
		return tkLParen, 1
	case ')':
		return tkRParen, 1
	}

	return tkEOF, 0
}

// ---------- recursive descent ----------
//
//	expr  := term (('+'|'-') term)*
//	term  := unary (('*'|'/'|implicit) unary)*
//	unary := ('+'|'-') unary | power
//	power := atom (('^'|'**') unary)?
//	atom  := number | name | '(' expr ')'

type parser struct {
	src  string
	opts parseOptions
	toks []token
	i    int
	pos  int
}

func (p *parser) parse() (Value, error) {
	if err := p.checkParens(); err != nil {
		return nil, err
	}
	toks, err := lex(p.src)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			p.pos = pe.Offset
		}
		return nil, err
	}
	p.toks = toks
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tkEOF {
		return nil, p.unsupported(t, "unexpected "+t.kind.String())
	}

	return v, nil
}

// checkParens reports unbalanced parentheses before lexing, so a bad
// character elsewhere never hides a structural error.
func (p *parser) checkParens() error {
	depth, open := 0, -1
	for i := 0; i < len(p.src); i++ {
		switch p.src[i] {
		case '(':
			if depth == 0 {
				open = i
			}
			depth++
		case ')':
			if depth == 0 {
				return p.syntax(i, "unmatched ')'")
			}
			depth--
		}
	}
	if depth > 0 {
		return p.syntax(open, "unclosed '('")
	}

	return nil
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tkEOF {
		p.i++
	}

	return t
}

func (p *parser) syntax(pos int, reason string) error {
	p.pos = pos
	return &ParseError{Offset: pos, Reason: reason, Err: ErrSyntax}
}

func (p *parser) unsupported(t token, reason string) error {
	p.pos = t.pos
	return &ParseError{Offset: t.pos, Reason: reason, Err: ErrUnsupported}
}

// bounded simplifies an intermediate result and rejects it once it holds
// more than MaxTerms terms, so repeated products of sums stay small.
func (p *parser) bounded(at token, v Value) (Value, error) {
	v = Simplify(v)
	if TermCount(v) > MaxTerms {
		return nil, p.unsupported(at, "expansion too large")
	}

	return v, nil
}

func (p *parser) expr() (Value, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		var combine func(a, b Value) Value
		switch t.kind {
		case tkPlus:
			combine = Add
		case tkMinus:
			combine = Sub
		default:
			return left, nil
		}
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if left, err = p.bounded(t, combine(left, right)); err != nil {
			return nil, err
		}
	}
}

func (p *parser) term() (Value, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		switch t.kind {
		case tkStar, tkSlash:
			p.next()
		case tkIdent, tkLParen:
			// implicit product: 2a, 2(a+b), (a)(b), a b
		default:
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if t.kind == tkSlash {
			q, err := Quo(left, right)
			if err != nil {
				if errors.Is(err, ErrNotPolynomial) {
					return nil, p.unsupported(t, "division by a symbolic value")
				}
				p.pos = t.pos
				return nil, err
			}
			left = q
			continue
		}
		if left, err = p.bounded(t, Mul(left, right)); err != nil {
			return nil, err
		}
	}
}

func (p *parser) unary() (Value, error) {
	switch p.peek().kind {
	case tkPlus:
		p.next()
		return p.unary()
	case tkMinus:
		p.next()
		v, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Neg(v), nil
	default:
		return p.power()
	}
}

func (p *parser) power() (Value, error) {
	base, err := p.atom()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind != tkCaret {
		return base, nil
	}
	p.next()
	expV, err := p.unary()
	if err != nil {
		return nil, err
	}
	r, ok := Rat(Simplify(expV))
	if !ok || !r.IsInt() {
		return nil, p.unsupported(t, "exponent must be an integer")
	}
	if !r.Num().IsInt64() {
		return nil, p.unsupported(t, "exponent out of range")
	}
	n := r.Num().Int64()
	if n > int64(p.opts.maxExponent) || -n > int64(p.opts.maxExponent) {
		return nil, p.unsupported(t, "exponent out of range")
	}
	v, err := Pow(base, int(n))
	if err != nil {
		if errors.Is(err, ErrNotPolynomial) {
			return nil, p.unsupported(t, "negative power of a symbolic value")
		}
		if errors.Is(err, ErrTooLarge) {
			return nil, p.unsupported(t, "expansion too large")
		}
		p.pos = t.pos
		return nil, err
	}

	return v, nil
}

func (p *parser) atom() (Value, error) {
	t := p.next()
	switch t.kind {
	case tkNumber:
		return parseDecimal(t.text), nil
	case tkIdent:
		return NewSymbol(t.text), nil
	case tkLParen:
		if p.peek().kind == tkRParen {
			return nil, p.syntax(t.pos, "empty parentheses")
		}
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tkRParen {
			return nil, p.syntax(c.pos, "expected ')'")
		}
		return v, nil
	case tkEOF:
		return nil, p.syntax(t.pos, "missing operand at end of input")
	default:
		return nil, p.syntax(t.pos, "missing operand before "+t.text)
	}
}
