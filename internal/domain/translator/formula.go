package translator

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// Formula compiles an arithmetic expression in x, such as "x" for a
// controller configured in Celsius or "(x - 32) / 1.8".
func Formula(expr string) (Converter, error) {
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("parse formula %q: %w", expr, err)
	}
	for _, v := range expression.Vars() {
		if v != "x" {
			return nil, fmt.Errorf("formula %q: unknown variable %q", expr, v)
		}
	}

	return func(x float64) (float64, error) {
		result, err := expression.Evaluate(map[string]interface{}{"x": x})
		if err != nil {
			return 0, err
		}
		val, ok := result.(float64)
		if !ok {
			return 0, fmt.Errorf("formula %q returned %T", expr, result)
		}
		return val, nil
	}, nil
}
