package checker

import "github.com/lumen-lang/lumen/internal/types"

// SeedBuiltins installs the hardwired builtin signatures spec.md §4.4
// requires: len, toString, writeln, write, strFormat, map, filter, reduce,
// first, rest, prepend, and the NULL constant. Generic builtins carry their
// own TypeParams so each call site instantiates them independently.
func SeedBuiltins(env *Env) {
	any := types.Any{}
	env.Define("len", &types.Function{Params: []types.Type{any}, Return: types.Integer{}}, false)
	env.Define("toString", &types.Function{Params: []types.Type{any}, Return: types.String{}}, false)
	env.Define("writeln", &types.Function{Params: []types.Type{any}, Return: types.Null{}}, false)
	env.Define("write", &types.Function{Params: []types.Type{any}, Return: types.Null{}}, false)
	env.Define("strFormat", &types.Function{Params: []types.Type{types.String{}, any}, Return: types.String{}}, false)

	tVar := &types.TypeVariable{Name: "T"}
	uVar := &types.TypeVariable{Name: "U"}

	env.Define("map", &types.Function{
		Params:     []types.Type{&types.Array{Elem: tVar}, &types.Function{Params: []types.Type{tVar}, Return: uVar}},
		Return:     &types.Array{Elem: uVar},
		TypeParams: []string{"T", "U"},
	}, false)

	env.Define("filter", &types.Function{
		Params:     []types.Type{&types.Array{Elem: tVar}, &types.Function{Params: []types.Type{tVar}, Return: types.Boolean{}}},
		Return:     &types.Array{Elem: tVar},
		TypeParams: []string{"T"},
	}, false)

	env.Define("reduce", &types.Function{
		Params:     []types.Type{&types.Array{Elem: tVar}, uVar, &types.Function{Params: []types.Type{uVar, tVar}, Return: uVar}},
		Return:     uVar,
		TypeParams: []string{"T", "U"},
	}, false)

	env.Define("first", &types.Function{
		Params:     []types.Type{&types.Array{Elem: tVar}},
		Return:     tVar,
		TypeParams: []string{"T"},
	}, false)

	env.Define("rest", &types.Function{
		Params:     []types.Type{&types.Array{Elem: tVar}},
		Return:     &types.Array{Elem: tVar},
		TypeParams: []string{"T"},
	}, false)

	env.Define("prepend", &types.Function{
		Params:     []types.Type{tVar, &types.Array{Elem: tVar}},
		Return:     &types.Array{Elem: tVar},
		TypeParams: []string{"T"},
	}, false)

	env.Define("NULL", types.Null{}, false)
}
