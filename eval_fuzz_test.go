package calc_test

import (
	"math"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("(2 + 3) * 4")
	f.Add("2++*3")
	f.Add("1/0")
	f.Add("--5.5")
	f.Add("((1)")
	f.Add("1 + 1")
	f.Fuzz(func(t *testing.T, s string) {
		v, err := calc.Eval(s)
		if err != nil {
			switch k := calc.Classify(err); k {
			case calc.KindNone, calc.InvalidType:
				t.Fatalf("unexpected kind %v for %q: %v", k, s, err)
			}
			return
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("non-finite result %g for %q", v, s)
		}
		out := calc.Format(v)
		if again := calc.Format(v); again != out {
			t.Fatalf("formatting %g is unstable: %q then %q", v, out, again)
		}
		if strings.Contains(out, "e") {
			return
		}
		r, err := calc.Eval(out)
		if err != nil {
			t.Fatalf("couldn't eval formatted %q from %q: %v", out, s, err)
		}
		if d := math.Abs(r - v); d > 5e-13+math.Abs(v)*1e-15 {
			t.Fatalf("round trip of %g through %q gave %g", v, out, r)
		}
	})
}
