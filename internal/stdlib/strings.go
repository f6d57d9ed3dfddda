package stdlib

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

var titleCaser = cases.Title(language.English)

// Strings builds the `string` native module. Grounded on the teacher's
// string builtins; golang.org/x/text/cases is added per SPEC_FULL.md's
// "enrich from the rest of the pack" directive for locale-aware casing,
// since stdlib strings.Title is deprecated and ASCII-only.
func Strings() Module {
	s1 := []types.Type{types.String{}}
	s2 := []types.Type{types.String{}, types.String{}}
	arrStr := &types.Array{Elem: types.String{}}

	upperT, upperV := fn("upper", s1, types.String{}, strUnary(strings.ToUpper))
	lowerT, lowerV := fn("lower", s1, types.String{}, strUnary(strings.ToLower))
	titleT, titleV := fn("title", s1, types.String{}, strUnary(titleCaser.String))
	trimT, trimV := fn("trim", s1, types.String{}, strUnary(strings.TrimSpace))
	containsT, containsV := fn("contains", s2, types.Boolean{}, strContains)
	splitT, splitV := fn("split", s2, arrStr, strSplit)
	joinT, joinV := fn("join", []types.Type{arrStr, types.String{}}, types.String{}, strJoin)
	replaceT, replaceV := fn("replace", []types.Type{types.String{}, types.String{}, types.String{}}, types.String{}, strReplace)

	return Module{
		Name: "string",
		Types: map[string]types.Type{
			"upper": upperT, "lower": lowerT, "title": titleT, "trim": trimT,
			"contains": containsT, "split": splitT, "join": joinT, "replace": replaceT,
		},
		Values: map[string]evaluator.Value{
			"upper": upperV, "lower": lowerV, "title": titleV, "trim": trimV,
			"contains": containsV, "split": splitV, "join": joinV, "replace": replaceV,
		},
	}
}

func strUnary(f func(string) string) evaluator.BuiltinFn {
	return func(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
		s, ok := args[0].(evaluator.String)
		if !ok {
			return evaluator.NewError("expected a String argument, got %s", args[0].Kind())
		}
		return evaluator.String{Value: f(s.Value)}
	}
}

func strContains(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, sok := args[0].(evaluator.String)
	sub, subok := args[1].(evaluator.String)
	if !sok || !subok {
		return evaluator.NewError("contains requires two String arguments")
	}
	return evaluator.Boolean{Value: strings.Contains(s.Value, sub.Value)}
}

func strSplit(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, sok := args[0].(evaluator.String)
	sep, sepok := args[1].(evaluator.String)
	if !sok || !sepok {
		return evaluator.NewError("split requires two String arguments")
	}
	parts := strings.Split(s.Value, sep.Value)
	out := make([]evaluator.Value, len(parts))
	for i, p := range parts {
		out[i] = evaluator.String{Value: p}
	}
	return &evaluator.Array{Elements: out}
}

func strJoin(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	arr, ok := args[0].(*evaluator.Array)
	if !ok {
		return evaluator.NewError("join requires an Array of String as its first argument")
	}
	sep, ok := args[1].(evaluator.String)
	if !ok {
		return evaluator.NewError("join requires a String separator")
	}
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		s, ok := e.(evaluator.String)
		if !ok {
			return evaluator.NewError("join requires an Array of String, found %s", e.Kind())
		}
		parts[i] = s.Value
	}
	return evaluator.String{Value: strings.Join(parts, sep.Value)}
}

func strReplace(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, sok := args[0].(evaluator.String)
	old, oldok := args[1].(evaluator.String)
	new_, newok := args[2].(evaluator.String)
	if !sok || !oldok || !newok {
		return evaluator.NewError("replace requires three String arguments")
	}
	return evaluator.String{Value: strings.ReplaceAll(s.Value, old.Value, new_.Value)}
}
