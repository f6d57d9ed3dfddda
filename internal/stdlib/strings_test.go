package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/stdlib"
)

func TestStringsUpperLowerTitleTrim(t *testing.T) {
	m := stdlib.Strings()

	require.Equal(t, evaluator.String{Value: "HELLO"}, callBuiltin(t, m, "upper", evaluator.String{Value: "Hello"}))
	require.Equal(t, evaluator.String{Value: "hello"}, callBuiltin(t, m, "lower", evaluator.String{Value: "Hello"}))
	require.Equal(t, evaluator.String{Value: "Hello World"}, callBuiltin(t, m, "title", evaluator.String{Value: "hello world"}))
	require.Equal(t, evaluator.String{Value: "hello"}, callBuiltin(t, m, "trim", evaluator.String{Value: "  hello  "}))
}

func TestStringsContains(t *testing.T) {
	m := stdlib.Strings()
	require.Equal(t, evaluator.Boolean{Value: true}, callBuiltin(t, m, "contains", evaluator.String{Value: "hello world"}, evaluator.String{Value: "world"}))
	require.Equal(t, evaluator.Boolean{Value: false}, callBuiltin(t, m, "contains", evaluator.String{Value: "hello world"}, evaluator.String{Value: "xyz"}))
}

func TestStringsSplitAndJoin(t *testing.T) {
	m := stdlib.Strings()

	split := callBuiltin(t, m, "split", evaluator.String{Value: "a,b,c"}, evaluator.String{Value: ","})
	arr, ok := split.(*evaluator.Array)
	require.True(t, ok)
	require.Equal(t, []evaluator.Value{
		evaluator.String{Value: "a"},
		evaluator.String{Value: "b"},
		evaluator.String{Value: "c"},
	}, arr.Elements)

	joined := callBuiltin(t, m, "join", arr, evaluator.String{Value: "-"})
	require.Equal(t, evaluator.String{Value: "a-b-c"}, joined)
}

func TestStringsReplace(t *testing.T) {
	m := stdlib.Strings()
	result := callBuiltin(t, m, "replace", evaluator.String{Value: "foo bar foo"}, evaluator.String{Value: "foo"}, evaluator.String{Value: "baz"})
	require.Equal(t, evaluator.String{Value: "baz bar baz"}, result)
}

func TestStringsJoinRejectsNonStringElement(t *testing.T) {
	m := stdlib.Strings()
	arr := &evaluator.Array{Elements: []evaluator.Value{evaluator.String{Value: "a"}, evaluator.Integer{Value: 1}}}
	result := callBuiltin(t, m, "join", arr, evaluator.String{Value: ","})
	require.True(t, evaluator.IsError(result))
}
