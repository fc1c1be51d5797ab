// Package calc implements a calculator for arithmetic on float64 values.
//
// Expressions are made of decimal numbers, the operators + - * /, unary signs,
// and parentheses, with the usual precedence: "2 + 3 * 4" is 14, and
// "--5" is 5. Whitespace may appear between any tokens. There are no
// variables, functions, exponents, or implicit multiplications, so "2(3)" and
// "1e5" are both errors.
//
// Eval parses and evaluates in a single pass without building a tree. Every
// failure is an *Error with a Kind, and Message gives the short text to show
// to a user for any error. Format renders results canonically.
//
package calc
