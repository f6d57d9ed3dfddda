package stdlib

import (
	"gopkg.in/yaml.v3"

	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/types"
)

// YAML builds the `yaml` native module — a natural sibling of `json` given
// the pack's gopkg.in/yaml.v3 dependency (spec.md is silent on a `yaml`
// module; this is a pack-grounded supplement, see DESIGN.md).
func YAML() Module {
	parseResult := resultOf(types.Any{}, types.String{})

	parseT, parseV := fn("parse", []types.Type{types.String{}}, parseResult, yamlParse)
	stringifyT, stringifyV := fn("stringify", []types.Type{types.Any{}}, types.String{}, yamlStringify)

	return Module{
		Name: "yaml",
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

func yamlParse(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	s, ok := args[0].(evaluator.String)
	if !ok {
		return errResult("parse requires a String argument")
	}
	var decoded any
	if err := yaml.Unmarshal([]byte(s.Value), &decoded); err != nil {
		return errResult(err.Error())
	}
	return okResult(fromGoYAML(decoded))
}

func yamlStringify(ev *evaluator.Evaluator, args []evaluator.Value) evaluator.Value {
	encoded, err := yaml.Marshal(toGo(args[0]))
	if err != nil {
		return evaluator.NewError("stringify: %s", err.Error())
	}
	return evaluator.String{Value: string(encoded)}
}

// fromGoYAML mirrors json.go's fromGo but also accepts yaml.v3's
// map[string]interface{} keys (yaml.v3 decodes mappings with string keys
// into any when the target is `any`, unlike v2's map[interface{}]interface{}).
func fromGoYAML(v any) evaluator.Value {
	switch x := v.(type) {
	case map[string]any:
		h := evaluator.NewHash()
		for k, val := range x {
			key := evaluator.String{Value: k}
			hk, _ := evaluator.HashKey(key)
			h.Pairs[hk] = evaluator.HashPair{Key: key, Value: fromGoYAML(val)}
		}
		return h
	case []any:
		elems := make([]evaluator.Value, len(x))
		for i, e := range x {
			elems[i] = fromGoYAML(e)
		}
		return &evaluator.Array{Elements: elems}
	default:
		return fromGo(v)
	}
}
