package stdlib

import (
	"math"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// Math builds the `math` native module over stdlib math, the way the
// teacher's numeric builtins wrap Go's math package directly rather than
// reimplementing it.
func Math() Module {
	d1 := []types.Type{types.Double{}}
	d2 := []types.Type{types.Double{}, types.Double{}}
	i2 := []types.Type{types.Integer{}, types.Integer{}}

	sqrtT, sqrtV := fn("sqrt", d1, types.Double{}, mathUnary(math.Sqrt))
	absT, absV := fn("abs", d1, types.Double{}, mathUnary(math.Abs))
	floorT, floorV := fn("floor", d1, types.Double{}, mathUnary(math.Floor))
	ceilT, ceilV := fn("ceil", d1, types.Double{}, mathUnary(math.Ceil))
	roundT, roundV := fn("round", d1, types.Double{}, mathUnary(math.Round))
	powT, powV := fn("pow", d2, types.Double{}, mathBinary(math.Pow))
	minT, minV := fn("min", i2, types.Integer{}, mathIntMin)
	maxT, maxV := fn("max", i2, types.Integer{}, mathIntMax)

	return Module{
		Name: "math",
		Types: map[string]types.Type{
			"sqrt": sqrtT, "abs": absT, "floor": floorT, "ceil": ceilT,
			"round": roundT, "pow": powT, "min": minT, "max": maxT,
			"pi": types.Double{}, "e": types.Double{},
		},
		Values: map[string]evaluator.Value{
			"sqrt": sqrtV, "abs": absV, "floor": floorV, "ceil": ceilV,
			"round": roundV, "pow": powV, "min": minV, "max": maxV,
			"pi": evaluator.Double{Value: math.Pi}, "e": evaluator.Double{Value: math.E},
		},
	}
}

func asDouble(v evaluator.Value) (float64, bool) {
	switch x := v.(type) {
	case evaluator.Double:
		return x.Value, true
	case evaluator.Integer:
		return float64(x.Value), true
	default:
		return 0, false
	}
}

func mathUnary(f func(float64) float64) evaluator.BuiltinFn {
	return func(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
		x, ok := asDouble(args[0])
		if !ok {
			return evaluator.NewError("expected a numeric argument, got %s", args[0].Kind())
		}
		return evaluator.Double{Value: f(x)}
	}
}

func mathBinary(f func(float64, float64) float64) evaluator.BuiltinFn {
	return func(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
		x, xok := asDouble(args[0])
		y, yok := asDouble(args[1])
		if !xok || !yok {
			return evaluator.NewError("expected numeric arguments")
		}
		return evaluator.Double{Value: f(x, y)}
	}
}

func mathIntMin(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	a, aok := args[0].(evaluator.Integer)
	b, bok := args[1].(evaluator.Integer)
	if !aok || !bok {
		return evaluator.NewError("min requires Integer arguments")
	}
	if a.Value < b.Value {
		return a
	}
	return b
}

func mathIntMax(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	a, aok := args[0].(evaluator.Integer)
	b, bok := args[1].(evaluator.Integer)
	if !aok || !bok {
		return evaluator.NewError("max requires Integer arguments")
	}
	if a.Value > b.Value {
		return a
	}
	return b
}
