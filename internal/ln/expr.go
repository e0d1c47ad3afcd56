package ln

import (
	"math"

	"github.com/Knetic/govaluate"
)

// exprFunctions is the fixed library of named functions available to a
// Function shape's expression, beyond the x/y parameters and the
// operators govaluate already understands.
var exprFunctions = map[string]govaluate.ExpressionFunction{
	"sin":  mathFn1(math.Sin),
	"cos":  mathFn1(math.Cos),
	"tan":  mathFn1(math.Tan),
	"sqrt": mathFn1(math.Sqrt),
	"exp":  mathFn1(math.Exp),
	"log":  mathFn1(math.Log),
	"abs":  mathFn1(math.Abs),
	"min": func(args ...interface{}) (interface{}, error) {
		a, b, err := floats2(args)
		if err != nil {
			return nil, err
		}
		return math.Min(a, b), nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		a, b, err := floats2(args)
		if err != nil {
			return nil, err
		}
		return math.Max(a, b), nil
	},
	"div_euclid": func(args ...interface{}) (interface{}, error) {
		a, b, err := floats2(args)
		if err != nil {
			return nil, err
		}
		q := math.Floor(a / b)
		if a-q*b < 0 {
			if b > 0 {
				q -= 1
			} else {
				q += 1
			}
		}
		return q, nil
	},
	"rem_euclid": func(args ...interface{}) (interface{}, error) {
		a, b, err := floats2(args)
		if err != nil {
			return nil, err
		}
		r := math.Mod(a, b)
		if r < 0 {
			r += math.Abs(b)
		}
		return r, nil
	},
}

func mathFn1(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, configErrorf("expected 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, configErrorf("expected numeric argument")
		}
		return f(x), nil
	}
}

func floats2(args []interface{}) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, configErrorf("expected 2 arguments, got %d", len(args))
	}
	a, ok := args[0].(float64)
	b, ok2 := args[1].(float64)
	if !ok || !ok2 {
		return 0, 0, configErrorf("expected numeric arguments")
	}
	return a, b, nil
}

// compiledExpr wraps a parsed govaluate.EvaluableExpression so Function
// can evaluate it at arbitrary (x,y) without reparsing. It is a height
// field z = f(x,y), never an implicit F(x,y,z)=0 — the engine itself
// subtracts the sample's z from the evaluated height.
type compiledExpr struct {
	expr *govaluate.EvaluableExpression
}

// compileExpr parses expr's source text once, surfacing any syntax or
// unknown-symbol error as a ConfigError.
func compileExpr(source string) (*compiledExpr, error) {
	e, err := govaluate.NewEvaluableExpressionWithFunctions(source, exprFunctions)
	if err != nil {
		return nil, configErrorf("invalid function expression %q: %v", source, err)
	}
	return &compiledExpr{expr: e}, nil
}

// Eval evaluates the expression's height at (x,y), returning a float64
// result. A non-numeric result or evaluation error is a ConfigError —
// it indicates a malformed expression rather than an out-of-domain
// sample, since x and y are always defined.
func (c *compiledExpr) Eval(x, y Real) (Real, error) {
	params := map[string]interface{}{"x": float64(x), "y": float64(y)}
	result, err := c.expr.Evaluate(params)
	if err != nil {
		return 0, configErrorf("function expression evaluation failed: %v", err)
	}
	f, ok := result.(float64)
	if !ok {
		return 0, configErrorf("function expression must evaluate to a number, got %T", result)
	}
	return f, nil
}
