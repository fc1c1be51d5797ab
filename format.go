package calc

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a finite value canonically. Magnitudes of at least 1e12 or
// less than 1e-10 use scientific notation with up to 10 fractional mantissa
// digits; anything else uses fixed notation with up to 12 fractional digits.
// Trailing fractional zeros and bare decimal points are removed, and negative
// zero is "0".
//
// Fixed notation results can be evaluated again by Eval. Scientific notation
// is for display only, since expressions have no exponent syntax.
func Format(v float64) string {
	if v == 0 {
		// Includes negative zero.
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e12 || a < 1e-10 {
		s := strconv.FormatFloat(v, 'e', 10, 64)
		k := strings.IndexByte(s, 'e')
		if k < 0 {
			// Not finite.
			return s
		}
		return trimfrac(s[:k]) + s[k:]
	}
	return trimfrac(strconv.FormatFloat(v, 'f', 12, 64))
}

// trimfrac removes trailing zeros from the fractional part of a decimal
// number, then the decimal point itself if nothing remains after it.
func trimfrac(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
