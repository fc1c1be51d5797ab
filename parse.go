package calc

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// expression = term { ('+' | '-') term }
// term       = unary { ('*' | '/') unary }
// unary      = { '+' | '-' } primary
// primary    = '(' expression ')' | number
// number     = digit { digit } [ '.' digit { digit } ]

// Eval evaluates an arithmetic expression. The given options are applied in
// order. If the expression is invalid or its value is not finite, the result
// is 0 and the error is an *Error describing the failure.
func Eval(expr string, opts ...EvalOption) (float64, error) {
	e := evalctx{maxlen: DefaultMaxLen}
	for _, opt := range opts {
		e = opt.evalOption(e)
	}
	if e.maxlen > 0 && len(expr) > e.maxlen {
		// Counting runes is linear in the input, so only do it when the byte
		// length could exceed the limit.
		if n := utf8.RuneCountInString(expr); n > e.maxlen {
			return 0, &Error{Kind: TooLong, Limit: e.maxlen}
		}
	}
	c := scan(expr)
	v, err := c.expression()
	if err != nil {
		return 0, err
	}
	if r, sz, col := c.next(); sz != 0 {
		return 0, c.error(UnexpectedToken, col, string(r))
	}
	if !finite(v) {
		return 0, &Error{Kind: NotFinite, Col: c.col}
	}
	return v, nil
}

// EvalString evaluates an expression and formats the result with Format.
func EvalString(expr string, opts ...EvalOption) (string, error) {
	v, err := Eval(expr, opts...)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// EvalValue evaluates v as an expression if it is a string. Any other type,
// including nil and []byte, fails with InvalidType. This is for callers
// holding loosely typed data, e.g. decoded JSON.
func EvalValue(v any, opts ...EvalOption) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, &Error{Kind: InvalidType}
	}
	return Eval(s, opts...)
}

// expression parses a sum of terms.
func (c *cursor) expression() (float64, error) {
	v, err := c.term()
	if err != nil {
		return 0, err
	}
	for {
		_, _, col := c.next()
		op := c.accept("+-")
		if op == 0 {
			return v, nil
		}
		rhs, err := c.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			v += rhs
		} else {
			v -= rhs
		}
		if !finite(v) {
			return 0, c.error(NotFinite, col, string(op))
		}
	}
}

// term parses a product of unary expressions.
func (c *cursor) term() (float64, error) {
	v, err := c.unary()
	if err != nil {
		return 0, err
	}
	for {
		_, _, col := c.next()
		op := c.accept("*/")
		if op == 0 {
			return v, nil
		}
		rhs, err := c.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, c.error(DivideByZero, col, "/")
			}
			v /= rhs
		}
		if !finite(v) {
			return 0, c.error(NotFinite, col, string(op))
		}
	}
}

// unary parses any number of sign operators followed by a primary.
func (c *cursor) unary() (float64, error) {
	_, _, col := c.next()
	op := c.accept("+-")
	if op == 0 {
		return c.primary()
	}
	if err := c.nest(col, op); err != nil {
		return 0, err
	}
	v, err := c.unary()
	c.depth--
	if err != nil {
		return 0, err
	}
	if op == '-' {
		v = -v
	}
	return v, nil
}

// primary parses a parenthesized expression or a number literal.
func (c *cursor) primary() (float64, error) {
	_, _, col := c.next()
	if c.accept("(") == 0 {
		return c.number()
	}
	if err := c.nest(col, '('); err != nil {
		return 0, err
	}
	v, err := c.expression()
	c.depth--
	if err != nil {
		return 0, err
	}
	if c.accept(")") == 0 {
		return 0, c.error(MissingCloseParen, col, "(")
	}
	return v, nil
}

// number parses a number literal.
func (c *cursor) number() (float64, error) {
	_, _, col := c.next()
	lit, err := c.scanNum()
	if err != nil {
		return 0, err
	}
	// The literal is syntactically valid by construction, so the only
	// possible failure is strconv.ErrRange with an infinite result.
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || !finite(v) {
		return 0, c.error(InvalidNumber, col, lit)
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
