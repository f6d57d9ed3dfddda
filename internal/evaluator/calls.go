package evaluator

import "github.com/lumen-lang/lumen/internal/ast"

func (ev *Evaluator) evalCallExpr(e *ast.CallExpr, env *Environment) Value {
	fnVal := ev.Eval(e.Function, env)
	if IsError(fnVal) {
		return fnVal
	}
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v := ev.Eval(a, env)
		if IsError(v) {
			return v
		}
		args[i] = v
	}
	return ev.applyFunctionValue(fnVal, args, e.Function)
}

// applyFunctionValue dispatches on what fnVal actually is: a variant
// constructor builds a SumInstance, a record constructor builds a Record,
// an ordinary closure binds a fresh child environment and evaluates its
// body, and a Builtin receives the evaluator plus the argument vector —
// exactly the four-way split spec.md §4.3/§4.4 describe at the type and
// value layers respectively.
func (ev *Evaluator) applyFunctionValue(fnVal Value, args []Value, site ast.Node) Value {
	switch fn := fnVal.(type) {
	case *Builtin:
		return fn.Fn(ev, args)
	case *Function:
		switch {
		case fn.IsRecordConstructor:
			return ev.buildRecord(fn, args)
		case fn.Body == nil:
			return ev.buildVariant(fn, args)
		default:
			return ev.callClosure(fn, args)
		}
	default:
		return NewError("cannot call a value of kind %s", fnVal.Kind())
	}
}

func (ev *Evaluator) buildRecord(fn *Function, args []Value) Value {
	if len(args) != len(fn.RecordFields) {
		return NewError("%s expects %d argument(s), got %d", fn.RecordName, len(fn.RecordFields), len(args))
	}
	fields := make(map[string]Value, len(args))
	for i, name := range fn.RecordFields {
		fields[name] = args[i]
	}
	return &Record{Name: fn.RecordName, FieldOrder: append([]string{}, fn.RecordFields...), Fields: fields}
}

func (ev *Evaluator) buildVariant(fn *Function, args []Value) Value {
	return &SumInstance{SumName: fn.RecordName, VariantName: fn.Name, Payload: args}
}

func (ev *Evaluator) callClosure(fn *Function, args []Value) Value {
	if len(args) != len(fn.Params) {
		return NewError("%s expects %d argument(s), got %d", callName(fn), len(fn.Params), len(args))
	}
	callEnv := NewEnvironment(fn.Env)
	for i, p := range fn.Params {
		callEnv.Define(p.Name, args[i], false)
	}
	result := ev.Eval(fn.Body, callEnv)
	if rv, ok := result.(*ReturnValue); ok {
		return rv.Value
	}
	return result
}

func callName(fn *Function) string {
	if fn.Name != "" {
		return fn.Name
	}
	return "<anonymous function>"
}

func (ev *Evaluator) evalFunctionLiteral(e *ast.FunctionLiteral, env *Environment) Value {
	fn := &Function{Name: e.Name, Params: e.Params, Body: e.Body, Env: env}
	if e.Name != "" {
		selfEnv := NewEnvironment(env)
		selfEnv.Define(e.Name, fn, false)
		fn.Env = selfEnv
	}
	return fn
}
