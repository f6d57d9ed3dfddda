// Package stdlib implements Lumen's native (host-backed) modules: fs,
// net.http, json, yaml, math, string, hash, io, datetime, and sqlite. Each
// module returns a pair of name->type and name->value tables per spec.md
// §6's "Standard-library contract" — the loader consumes only these two
// tables, exactly the way the teacher's virtual packages
// (internal/modules/virtual_packages*.go) expose a fixed set of names
// without ever going through the lexer/parser.
package stdlib

import (
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// Module is one native package: its exported types and values, keyed by
// unqualified name exactly as the loader's `use` binding forms expect.
type Module struct {
	Name   string
	Types  map[string]types.Type
	Values map[string]evaluator.Value
}

// fn is a small helper for building the common "host function" shape: a
// types.Function signature paired with an evaluator.Builtin wrapping it.
func fn(name string, params []types.Type, ret types.Type, impl evaluator.BuiltinFn) (types.Type, evaluator.Value) {
	return &types.Function{Params: params, Return: ret}, &evaluator.Builtin{Name: name, Fn: impl}
}

func resultOf(ok, errT types.Type) *types.Sum {
	return &types.Sum{
		Name:   "Result",
		Order:  []string{"Ok", "Err"},
		Variants: map[string]*types.Variant{
			"Ok":  {Name: "Ok", Params: []types.Type{ok}},
			"Err": {Name: "Err", Params: []types.Type{errT}},
		},
	}
}

func okResult(v evaluator.Value) evaluator.Value {
	return &evaluator.SumInstance{SumName: "Result", VariantName: "Ok", Payload: []evaluator.Value{v}}
}

func errResult(msg string) evaluator.Value {
	return &evaluator.SumInstance{SumName: "Result", VariantName: "Err", Payload: []evaluator.Value{evaluator.String{Value: msg}}}
}

// Registry maps spec.md §4.5's fixed native-module names to their builder.
var Registry = map[string]func() Module{
	"fs":       FS,
	"net.http": HTTP,
	"json":     JSON,
	"yaml":     YAML,
	"math":     Math,
	"string":   Strings,
	"hash":     Hash,
	"io":       IO,
	"datetime": Datetime,
	"sqlite":   SQLite,
}

// Lookup resolves a native module by name, building it fresh each call —
// native modules are stateless tables, so there's nothing to cache beyond
// what the loader itself caches per spec.md §4.5 step 4.
func Lookup(name string) (Module, bool) {
	build, ok := Registry[name]
	if !ok {
		return Module{}, false
	}
	return build(), true
}
