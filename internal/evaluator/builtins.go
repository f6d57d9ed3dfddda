package evaluator

import "strings"

// SeedPrelude installs the Result/Option variant-to-sum mapping, their
// constructors, and the hardwired builtin functions into env — the value
// side of checker.SeedPrelude, run once per loader instance (spec.md §4.5
// step 8).
func SeedPrelude(env *Environment) {
	env.DefineVariant("Ok", "Result")
	env.DefineVariant("Err", "Result")
	env.Define("Ok", &Function{Name: "Ok", RecordName: "Result", RecordFields: []string{"_"}}, false)
	env.Define("Err", &Function{Name: "Err", RecordName: "Result", RecordFields: []string{"_"}}, false)

	env.DefineVariant("Some", "Option")
	env.DefineVariant("None", "Option")
	env.Define("Some", &Function{Name: "Some", RecordName: "Option", RecordFields: []string{"_"}}, false)
	env.Define("None", &Function{Name: "None", RecordName: "Option", RecordFields: nil}, false)

	SeedBuiltins(env)
}

func SeedBuiltins(env *Environment) {
	env.Define("NULL", Null{}, false)

	env.Define("len", &Builtin{Name: "len", Fn: builtinLen}, false)
	env.Define("toString", &Builtin{Name: "toString", Fn: builtinToString}, false)
	env.Define("writeln", &Builtin{Name: "writeln", Fn: builtinWriteln}, false)
	env.Define("write", &Builtin{Name: "write", Fn: builtinWrite}, false)
	env.Define("strFormat", &Builtin{Name: "strFormat", Fn: builtinStrFormat}, false)
	env.Define("map", &Builtin{Name: "map", Fn: builtinMap}, false)
	env.Define("filter", &Builtin{Name: "filter", Fn: builtinFilter}, false)
	env.Define("reduce", &Builtin{Name: "reduce", Fn: builtinReduce}, false)
	env.Define("first", &Builtin{Name: "first", Fn: builtinFirst}, false)
	env.Define("rest", &Builtin{Name: "rest", Fn: builtinRest}, false)
	env.Define("prepend", &Builtin{Name: "prepend", Fn: builtinPrepend}, false)
}

func builtinLen(ev *Evaluator, args []Value) Value {
	if len(args) != 1 {
		return NewError("len expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *Array:
		return Integer{Value: int64(len(v.Elements))}
	case String:
		return Integer{Value: int64(len(v.Value))}
	case *Hash:
		return Integer{Value: int64(len(v.Pairs))}
	case *Tuple:
		return Integer{Value: int64(len(v.Elements))}
	default:
		return NewError("len is not supported for %s", v.Kind())
	}
}

func builtinToString(ev *Evaluator, args []Value) Value {
	if len(args) != 1 {
		return NewError("toString expects 1 argument, got %d", len(args))
	}
	return String{Value: args[0].Inspect()}
}

func builtinWriteln(ev *Evaluator, args []Value) Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Stringify(a)
	}
	if ev.Out != nil {
		ev.Out.WriteString(strings.Join(parts, " ") + "\n")
	}
	return Null{}
}

func builtinWrite(ev *Evaluator, args []Value) Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = Stringify(a)
	}
	if ev.Out != nil {
		ev.Out.WriteString(strings.Join(parts, ""))
	}
	return Null{}
}

// builtinStrFormat replaces each "{?}" placeholder in order with the
// stringified form of the corresponding trailing argument.
func builtinStrFormat(ev *Evaluator, args []Value) Value {
	if len(args) == 0 {
		return NewError("strFormat requires a format string argument")
	}
	format, ok := args[0].(String)
	if !ok {
		return NewError("strFormat's first argument must be a String, got %s", args[0].Kind())
	}
	rest := args[1:]
	var b strings.Builder
	idx := 0
	s := format.Value
	for {
		pos := strings.Index(s, "{?}")
		if pos == -1 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:pos])
		if idx < len(rest) {
			b.WriteString(Stringify(rest[idx]))
			idx++
		}
		s = s[pos+3:]
	}
	return String{Value: b.String()}
}

func builtinMap(ev *Evaluator, args []Value) Value {
	if len(args) != 2 {
		return NewError("map expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("map's first argument must be an Array, got %s", args[0].Kind())
	}
	out := make([]Value, len(arr.Elements))
	for i, el := range arr.Elements {
		v := ev.applyFunctionValue(args[1], []Value{el}, nil)
		if IsError(v) {
			return v
		}
		out[i] = v
	}
	return &Array{Elements: out}
}

func builtinFilter(ev *Evaluator, args []Value) Value {
	if len(args) != 2 {
		return NewError("filter expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("filter's first argument must be an Array, got %s", args[0].Kind())
	}
	var out []Value
	for _, el := range arr.Elements {
		keep := ev.applyFunctionValue(args[1], []Value{el}, nil)
		if IsError(keep) {
			return keep
		}
		if Truthy(keep) {
			out = append(out, el)
		}
	}
	if out == nil {
		out = []Value{}
	}
	return &Array{Elements: out}
}

func builtinReduce(ev *Evaluator, args []Value) Value {
	if len(args) != 3 {
		return NewError("reduce expects 3 arguments, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return NewError("reduce's first argument must be an Array, got %s", args[0].Kind())
	}
	acc := args[1]
	for _, el := range arr.Elements {
		acc = ev.applyFunctionValue(args[2], []Value{acc, el}, nil)
		if IsError(acc) {
			return acc
		}
	}
	return acc
}

func builtinFirst(ev *Evaluator, args []Value) Value {
	if len(args) != 1 {
		return NewError("first expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok || len(arr.Elements) == 0 {
		return NewError("first requires a non-empty Array")
	}
	return arr.Elements[0]
}

func builtinRest(ev *Evaluator, args []Value) Value {
	if len(args) != 1 {
		return NewError("rest expects 1 argument, got %d", len(args))
	}
	arr, ok := args[0].(*Array)
	if !ok || len(arr.Elements) == 0 {
		return NewError("rest requires a non-empty Array")
	}
	return &Array{Elements: append([]Value{}, arr.Elements[1:]...)}
}

func builtinPrepend(ev *Evaluator, args []Value) Value {
	if len(args) != 2 {
		return NewError("prepend expects 2 arguments, got %d", len(args))
	}
	arr, ok := args[1].(*Array)
	if !ok {
		return NewError("prepend's second argument must be an Array, got %s", args[1].Kind())
	}
	out := make([]Value, 0, len(arr.Elements)+1)
	out = append(out, args[0])
	out = append(out, arr.Elements...)
	return &Array{Elements: out}
}
