package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEval() {
	v, err := calc.Eval("2 + 3 * 4")
	fmt.Println(v, err)

	_, err = calc.Eval("1 / (3 - 3)")
	fmt.Println(err)
	fmt.Println(calc.Classify(err), "-", calc.Message(err))

	// Output:
	// 14 <nil>
	// 3: division by zero
	// DivideByZero - Division by zero
}

func ExampleFormat() {
	fmt.Println(calc.Format(12.34))
	fmt.Println(calc.Format(1.0 / 3))
	fmt.Println(calc.Format(2e15))
	fmt.Println(calc.Format(0.00000025))

	// Output:
	// 12.34
	// 0.333333333333
	// 2e+15
	// 0.00000025
}

func ExampleEvalValue() {
	_, err := calc.EvalValue(42)
	fmt.Println(calc.Classify(err), "-", calc.Message(err))

	// Output:
	// InvalidType - Invalid expression
}
