package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func callBuiltin(t *testing.T, mod stdlib.Module, name string, args ...evaluator.Value) evaluator.Value {
	t.Helper()
	v, ok := mod.Values[name]
	require.True(t, ok, "module %q has no value %q", mod.Name, name)
	b, ok := v.(*evaluator.Builtin)
	require.True(t, ok, "value %q is not a builtin", name)
	return b.Fn(nil, args)
}

func TestMathUnaryFunctions(t *testing.T) {
	m := stdlib.Math()

	require.Equal(t, evaluator.Double{Value: 4}, callBuiltin(t, m, "sqrt", evaluator.Double{Value: 16}))
	require.Equal(t, evaluator.Double{Value: 3}, callBuiltin(t, m, "abs", evaluator.Double{Value: -3}))
	require.Equal(t, evaluator.Double{Value: 2}, callBuiltin(t, m, "floor", evaluator.Double{Value: 2.9}))
	require.Equal(t, evaluator.Double{Value: 3}, callBuiltin(t, m, "ceil", evaluator.Double{Value: 2.1}))
	require.Equal(t, evaluator.Double{Value: 3}, callBuiltin(t, m, "round", evaluator.Double{Value: 2.6}))
}

func TestMathPow(t *testing.T) {
	m := stdlib.Math()
	require.Equal(t, evaluator.Double{Value: 8}, callBuiltin(t, m, "pow", evaluator.Double{Value: 2}, evaluator.Double{Value: 3}))
}

func TestMathIntMinMax(t *testing.T) {
	m := stdlib.Math()
	require.Equal(t, evaluator.Integer{Value: 2}, callBuiltin(t, m, "min", evaluator.Integer{Value: 2}, evaluator.Integer{Value: 5}))
	require.Equal(t, evaluator.Integer{Value: 5}, callBuiltin(t, m, "max", evaluator.Integer{Value: 2}, evaluator.Integer{Value: 5}))
}

func TestMathConstants(t *testing.T) {
	m := stdlib.Math()
	pi, ok := m.Values["pi"].(evaluator.Double)
	require.True(t, ok)
	require.InDelta(t, 3.14159265, pi.Value, 1e-6)

	e, ok := m.Values["e"].(evaluator.Double)
	require.True(t, ok)
	require.InDelta(t, 2.71828182, e.Value, 1e-6)
}

func TestMathUnaryRejectsNonNumeric(t *testing.T) {
	m := stdlib.Math()
	result := callBuiltin(t, m, "sqrt", evaluator.String{Value: "nope"})
	require.True(t, evaluator.IsError(result))
}

func TestMathAcceptsIntegerWidenedToDouble(t *testing.T) {
	m := stdlib.Math()
	require.Equal(t, evaluator.Double{Value: 5}, callBuiltin(t, m, "abs", evaluator.Integer{Value: -5}))
}
