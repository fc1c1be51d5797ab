package calc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the reason an expression could not be evaluated.
type ErrorKind int

const (
	// KindNone is the kind of a nil error or an error not produced by this
	// package.
	KindNone ErrorKind = iota
	// InvalidType means the input was not a string.
	InvalidType
	// TooLong means the input exceeded the maximum length, or signs and
	// parentheses were nested deeper than MaxDepth.
	TooLong
	// ExpectedNumber means a number literal was required but the input ended
	// or the literal had no digits where they were required, e.g. "1." or ".".
	ExpectedNumber
	// InvalidNumber means a number literal was too large to represent.
	InvalidNumber
	// DivideByZero means a division had a zero divisor.
	DivideByZero
	// MissingCloseParen means an open parenthesis was never closed.
	MissingCloseParen
	// UnexpectedToken means a rune appeared where it cannot, including any
	// input left over after a complete expression.
	UnexpectedToken
	// NotFinite means a computed value overflowed to infinity or became NaN.
	NotFinite
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind -trimprefix=Kind
//go:generate go mod tidy

// Message returns the user-facing message for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case TooLong:
		return "Expression too long"
	case InvalidNumber, NotFinite:
		return "Number overflow"
	case DivideByZero:
		return "Division by zero"
	default:
		return "Invalid expression"
	}
}

// Error is an error resulting from evaluating an expression. It implements
// InputError.
type Error struct {
	// Kind is the reason for the error.
	Kind ErrorKind
	// Col is the 1-based rune column at which the error was detected. It is
	// 0 for errors detected before any parsing.
	Col int
	// Text is the offending token or literal. It may be empty.
	Text string
	// Limit is the limit that was exceeded for TooLong errors: the maximum
	// length if Text is empty, or else the maximum nesting depth.
	Limit int
}

func (err *Error) Error() string {
	var msg string
	switch err.Kind {
	case InvalidType:
		return "expression is not a string"
	case TooLong:
		if err.Text == "" {
			return "expression longer than " + strconv.Itoa(err.Limit) + " characters"
		}
		msg = "nesting deeper than " + strconv.Itoa(err.Limit) + " levels at " + strconv.Quote(err.Text)
	case ExpectedNumber:
		if err.Text == "" {
			msg = "expected a number"
		} else {
			msg = "expected a number at " + strconv.Quote(err.Text)
		}
	case InvalidNumber:
		msg = "invalid number " + truncate(err.Text)
	case DivideByZero:
		msg = "division by zero"
	case MissingCloseParen:
		msg = "open parenthesis with no close parenthesis"
	case UnexpectedToken:
		msg = "unexpected " + strconv.Quote(err.Text)
	case NotFinite:
		msg = "result is not finite"
	default:
		msg = "invalid expression"
	}
	return errpos(err.Col, msg)
}

func (err *Error) Pos() int {
	return err.Col
}

// truncate shortens long number literals for error messages.
func truncate(lit string) string {
	const n = 24
	if len(lit) <= n {
		return lit
	}
	return lit[:n] + "... (" + strconv.Itoa(len(lit)) + " characters)"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)

// Classify returns the kind of an error returned from Eval or EvalValue, even
// if it has since been wrapped. The result is KindNone for nil and for errors
// that did not come from this package.
func Classify(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// Message returns the user-facing message for an error returned from Eval or
// EvalValue. Errors that did not come from this package are reported as
// invalid expressions. The message for a nil error is empty.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return Classify(err).Message()
}
