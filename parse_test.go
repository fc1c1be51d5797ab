package calc

import "testing"

func TestProductions(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rule func(*cursor) (float64, error)
		v    float64
		off  int
	}{
		{"number", "12.5 + 1", (*cursor).number, 12.5, 4},
		{"number-space", "  7)", (*cursor).number, 7, 3},
		{"primary-number", "3 * 4", (*cursor).primary, 3, 1},
		{"primary-parens", "(1 + 2) rest", (*cursor).primary, 3, 7},
		{"primary-nested", "((4)) * 2", (*cursor).primary, 4, 5},
		{"unary-plain", "5 - 1", (*cursor).unary, 5, 1},
		{"unary-neg", "-(1+2)*4", (*cursor).unary, -3, 6},
		{"unary-stacked", "--+-5", (*cursor).unary, -5, 5},
		{"term-stops-at-add", "2*3+1", (*cursor).term, 6, 3},
		{"term-left-assoc", "8 / 4 / 2", (*cursor).term, 1, 9},
		{"term-stops-at-paren", "2 * 3)", (*cursor).term, 6, 5},
		{"expression-left-assoc", "1 - 2 - 3", (*cursor).expression, -4, 9},
		{"expression-precedence", "1 + 2 * 3 - 4", (*cursor).expression, 3, 13},
		{"expression-stops-at-close", "1 + 2) * 3", (*cursor).expression, 3, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := scan(c.src)
			v, err := c.rule(s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != c.v {
				t.Errorf("wrong value: want %g, got %g", c.v, v)
			}
			if s.off != c.off {
				t.Errorf("wrong offset: want %d, got %d", c.off, s.off)
			}
		})
	}
}

func TestProductionErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rule func(*cursor) (float64, error)
		kind ErrorKind
		col  int
	}{
		{"number-empty", "", (*cursor).number, ExpectedNumber, 1},
		{"number-operator", " *", (*cursor).number, UnexpectedToken, 2},
		{"primary-unclosed", "(1", (*cursor).primary, MissingCloseParen, 1},
		{"primary-wrong-close", " (1 2)", (*cursor).primary, MissingCloseParen, 2},
		{"primary-empty", "()", (*cursor).primary, UnexpectedToken, 2},
		{"unary-dangling", "--", (*cursor).unary, ExpectedNumber, 3},
		{"term-divide-zero", "4 / 0", (*cursor).term, DivideByZero, 3},
		{"term-divide-negative-zero", "4 / -0", (*cursor).term, DivideByZero, 3},
		{"expression-dangling", "1 +", (*cursor).expression, ExpectedNumber, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.rule(scan(c.src))
			if err == nil {
				t.Fatal("no error")
			}
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("wrong error type %T: %v", err, err)
			}
			if e.Kind != c.kind {
				t.Errorf("wrong kind: want %v, got %v", c.kind, e.Kind)
			}
			if e.Col != c.col {
				t.Errorf("wrong column: want %d, got %d", c.col, e.Col)
			}
		})
	}
}
