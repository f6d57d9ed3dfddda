package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestYAMLParseMapping(t *testing.T) {
	m := stdlib.YAML()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: "name: rex\nage: 3\n"})

	sum, ok := result.(*evaluator.SumInstance)
	require.True(t, ok)
	require.Equal(t, "Ok", sum.VariantName)

	hash, ok := sum.Payload[0].(*evaluator.Hash)
	require.True(t, ok)

	nameKey, ok := evaluator.HashKey(evaluator.String{Value: "name"})
	require.True(t, ok)
	pair, ok := hash.Pairs[nameKey]
	require.True(t, ok)
	require.Equal(t, evaluator.String{Value: "rex"}, pair.Value)
}

func TestYAMLParseSequence(t *testing.T) {
	m := stdlib.YAML()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: "- a\n- b\n- c\n"})

	sum := result.(*evaluator.SumInstance)
	require.Equal(t, "Ok", sum.VariantName)
	arr, ok := sum.Payload[0].(*evaluator.Array)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)
}

func TestYAMLParseInvalidReturnsErr(t *testing.T) {
	m := stdlib.YAML()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: "key: [unterminated"})

	sum, ok := result.(*evaluator.SumInstance)
	require.True(t, ok)
	require.Equal(t, "Err", sum.VariantName)
}

func TestYAMLStringifyArray(t *testing.T) {
	m := stdlib.YAML()
	arr := &evaluator.Array{Elements: []evaluator.Value{
		evaluator.Integer{Value: 1},
		evaluator.Integer{Value: 2},
	}}
	result := callBuiltin(t, m, "stringify", arr)
	str, ok := result.(evaluator.String)
	require.True(t, ok)
	require.Contains(t, str.Value, "- 1")
	require.Contains(t, str.Value, "- 2")
}
