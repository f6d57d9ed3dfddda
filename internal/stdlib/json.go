package stdlib

import (
	"encoding/json"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// JSON builds the `json` native module using stdlib encoding/json — the
// pack carries no third-party JSON library, so this one module is a
// documented standard-library exception (see DESIGN.md); everything else
// in this package reaches for a pack-grounded dependency.
func JSON() Module {
	parseResult := resultOf(types.Any{}, types.String{})

	parseT, parseV := fn("parse", []types.Type{types.String{}}, parseResult, jsonParse)
	stringifyT, stringifyV := fn("stringify", []types.Type{types.Any{}}, types.String{}, jsonStringify)

	return Module{
		Name: "json",
		Types: map[string]types.Type{
			"parse":     parseT,
			"stringify": stringifyT,
		},
		Values: map[string]evaluator.Value{
			"parse":     parseV,
			"stringify": stringifyV,
		},
	}
}

func jsonParse(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("parse requires a String argument")
	}
	var decoded any
	if err := json.Unmarshal([]byte(s.Value), &decoded); err != nil {
		return errResult(err.Error())
	}
	return okResult(fromGo(decoded))
}

func jsonStringify(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	encoded, err := json.Marshal(toGo(args[0]))
	if err != nil {
		return evaluator.NewError("stringify: %s", err.Error())
	}
	return evaluator.String{Value: string(encoded)}
}

// fromGo converts a decoded encoding/json value (map[string]any, []any,
// string, float64, bool, nil) into Lumen's runtime Value set.
func fromGo(v any) evaluator.Value {
	switch x := v.(type) {
	case nil:
		return evaluator.Null{}
	case bool:
		return evaluator.Boolean{Value: x}
	case float64:
		if x == float64(int64(x)) {
			return evaluator.Integer{Value: int64(x)}
		}
		return evaluator.Double{Value: x}
	case string:
		return evaluator.String{Value: x}
	case []any:
		elems := make([]evaluator.Value, len(x))
		for i, e := range x {
			elems[i] = fromGo(e)
		}
		return &evaluator.Array{Elements: elems}
	case map[string]any:
		h := evaluator.NewHash()
		for k, val := range x {
			key := evaluator.String{Value: k}
			hk, _ := evaluator.HashKey(key)
			h.Pairs[hk] = evaluator.HashPair{Key: key, Value: fromGo(val)}
		}
		return h
	default:
		return evaluator.Null{}
	}
}

// toGo converts a Lumen runtime Value back into a plain Go value that
// encoding/json knows how to marshal.
func toGo(v evaluator.Value) any {
	switch x := v.(type) {
	case evaluator.Null:
		return nil
	case evaluator.Boolean:
		return x.Value
	case evaluator.Integer:
		return x.Value
	case evaluator.Double:
		return x.Value
	case evaluator.String:
		return x.Value
	case *evaluator.Array:
		out := make([]any, len(x.Elements))
		for i, e := range x.Elements {
			out[i] = toGo(e)
		}
		return out
	case *evaluator.Hash:
		out := make(map[string]any, len(x.Pairs))
		for _, p := range x.Pairs {
			key, ok := p.Key.(evaluator.String)
			if !ok {
				continue
			}
			out[key.Value] = toGo(p.Value)
		}
		return out
	case *evaluator.Record:
		out := make(map[string]any, len(x.FieldOrder))
		for _, name := range x.FieldOrder {
			out[name] = toGo(x.Fields[name])
		}
		return out
	default:
		return x.Inspect()
	}
}
