package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestJSONParseObject(t *testing.T) {
	m := stdlib.JSON()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: `{"name": "rex", "age": 3}`})

	sum, ok := result.(*evaluator.SumInstance)
	require.True(t, ok)
	require.Equal(t, "Result", sum.SumName)
	require.Equal(t, "Ok", sum.VariantName)
	require.Len(t, sum.Payload, 1)

	hash, ok := sum.Payload[0].(*evaluator.Hash)
	require.True(t, ok)
	require.Len(t, hash.Pairs, 2)

	nameKey, ok := evaluator.HashKey(evaluator.String{Value: "name"})
	require.True(t, ok)
	pair, ok := hash.Pairs[nameKey]
	require.True(t, ok)
	require.Equal(t, evaluator.String{Value: "rex"}, pair.Value)

	ageKey, ok := evaluator.HashKey(evaluator.String{Value: "age"})
	require.True(t, ok)
	agePair, ok := hash.Pairs[ageKey]
	require.True(t, ok)
	require.Equal(t, evaluator.Integer{Value: 3}, agePair.Value)
}

func TestJSONParseArray(t *testing.T) {
	m := stdlib.JSON()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: `[1, 2, 3]`})

	sum := result.(*evaluator.SumInstance)
	require.Equal(t, "Ok", sum.VariantName)

	arr, ok := sum.Payload[0].(*evaluator.Array)
	require.True(t, ok)
	require.Equal(t, []evaluator.Value{
		evaluator.Integer{Value: 1},
		evaluator.Integer{Value: 2},
		evaluator.Integer{Value: 3},
	}, arr.Elements)
}

func TestJSONParseInvalidReturnsErr(t *testing.T) {
	m := stdlib.JSON()
	result := callBuiltin(t, m, "parse", evaluator.String{Value: `{not valid`})

	sum, ok := result.(*evaluator.SumInstance)
	require.True(t, ok)
	require.Equal(t, "Err", sum.VariantName)
	require.Len(t, sum.Payload, 1)
	_, ok = sum.Payload[0].(evaluator.String)
	require.True(t, ok)
}

func TestJSONParseRejectsNonStringArgument(t *testing.T) {
	m := stdlib.JSON()
	result := callBuiltin(t, m, "parse", evaluator.Integer{Value: 1})

	sum, ok := result.(*evaluator.SumInstance)
	require.True(t, ok)
	require.Equal(t, "Err", sum.VariantName)
}

func TestJSONStringifyRoundTrip(t *testing.T) {
	m := stdlib.JSON()

	arr := &evaluator.Array{Elements: []evaluator.Value{
		evaluator.Integer{Value: 1},
		evaluator.String{Value: "two"},
		evaluator.Boolean{Value: true},
	}}
	result := callBuiltin(t, m, "stringify", arr)
	str, ok := result.(evaluator.String)
	require.True(t, ok)
	require.Equal(t, `[1,"two",true]`, str.Value)

	parsed := callBuiltin(t, m, "parse", str)
	sum := parsed.(*evaluator.SumInstance)
	require.Equal(t, "Ok", sum.VariantName)
	parsedArr, ok := sum.Payload[0].(*evaluator.Array)
	require.True(t, ok)
	require.Len(t, parsedArr.Elements, 3)
}

func TestJSONStringifyRecord(t *testing.T) {
	m := stdlib.JSON()

	rec := &evaluator.Record{
		FieldOrder: []string{"name", "age"},
		Fields: map[string]evaluator.Value{
			"name": evaluator.String{Value: "rex"},
			"age":  evaluator.Integer{Value: 3},
		},
	}
	result := callBuiltin(t, m, "stringify", rec)
	str, ok := result.(evaluator.String)
	require.True(t, ok)
	require.Contains(t, str.Value, `"name":"rex"`)
	require.Contains(t, str.Value, `"age":3`)
}
