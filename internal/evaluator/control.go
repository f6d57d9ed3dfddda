package evaluator

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
)

func (ev *Evaluator) evalIfExpr(e *ast.IfExpr, env *Environment) Value {
	cond := ev.Eval(e.Condition, env)
	if IsError(cond) {
		return cond
	}
	if Truthy(cond) {
		return ev.Eval(e.Consequence, env)
	}
	if e.Alternative != nil {
		return ev.Eval(e.Alternative, env)
	}
	return Null{}
}

func (ev *Evaluator) evalTryExpr(e *ast.TryExpr, env *Environment) Value {
	v := ev.Eval(e.Operand, env)
	if IsError(v) {
		return v
	}
	sum, ok := v.(*SumInstance)
	if !ok || sum.SumName != "Result" {
		return NewError("? requires a Result value, got %s", v.Inspect())
	}
	switch sum.VariantName {
	case "Ok":
		if len(sum.Payload) == 1 {
			return sum.Payload[0]
		}
		return Null{}
	case "Err":
		return &ReturnValue{Value: sum}
	default:
		return NewError("? encountered an unrecognized Result variant %q", sum.VariantName)
	}
}

func (ev *Evaluator) evalMatchExpr(e *ast.MatchExpr, env *Environment) Value {
	scrutinees := make([]Value, len(e.Scrutinees))
	for i, s := range e.Scrutinees {
		v := ev.Eval(s, env)
		if IsError(v) {
			return v
		}
		scrutinees[i] = v
	}
arms:
	for _, arm := range e.Arms {
		if len(arm.Patterns) != len(scrutinees) {
			continue
		}
		armEnv := NewEnvironment(env)
		for i, pat := range arm.Patterns {
			if !ev.matchPattern(pat, scrutinees[i], armEnv) {
				continue arms
			}
		}
		return ev.Eval(arm.Body, armEnv)
	}
	descs := make([]string, len(scrutinees))
	for i, v := range scrutinees {
		descs[i] = v.Inspect()
	}
	return NewError("match failed to find a covering arm for %s", strings.Join(descs, ", "))
}

func (ev *Evaluator) evalWhenExpr(e *ast.WhenExpr, env *Environment) Value {
	var subject Value
	if e.Subject != nil {
		subject = ev.Eval(e.Subject, env)
		if IsError(subject) {
			return subject
		}
	}
	for _, arm := range e.Arms {
		for _, cond := range arm.Conditions {
			condVal := ev.Eval(cond, env)
			if IsError(condVal) {
				return condVal
			}
			if subject == nil {
				if Truthy(condVal) {
					return ev.Eval(arm.Body, env)
				}
				continue
			}
			if b, isBool := condVal.(Boolean); isBool {
				if b.Value {
					return ev.Eval(arm.Body, env)
				}
				continue
			}
			if valuesEqual(subject, condVal) {
				return ev.Eval(arm.Body, env)
			}
		}
	}
	return ev.Eval(e.Else, env)
}

// matchPattern mirrors checker.checkPattern at the value layer, binding
// names it introduces directly into env.
func (ev *Evaluator) matchPattern(pat ast.Pattern, v Value, env *Environment) bool {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return true
	case *ast.IdentPattern:
		env.Define(p.Name, v, false)
		return true
	case *ast.LiteralPattern:
		lit := ev.Eval(p.Value, env)
		return valuesEqual(lit, v)
	case *ast.TuplePattern:
		tup, ok := v.(*Tuple)
		if !ok || len(tup.Elements) != len(p.Elements) {
			return false
		}
		for i, sub := range p.Elements {
			if !ev.matchPattern(sub, tup.Elements[i], env) {
				return false
			}
		}
		return true
	case *ast.ArrayPattern:
		arr, ok := v.(*Array)
		if !ok || len(arr.Elements) < len(p.Elements) {
			return false
		}
		if p.Rest == nil && len(arr.Elements) != len(p.Elements) {
			return false
		}
		for i, sub := range p.Elements {
			if !ev.matchPattern(sub, arr.Elements[i], env) {
				return false
			}
		}
		if p.Rest != nil {
			env.Define(*p.Rest, &Array{Elements: append([]Value{}, arr.Elements[len(p.Elements):]...)}, false)
		}
		return true
	case *ast.VariantPattern:
		return ev.matchVariantPattern(p, v, env)
	default:
		return false
	}
}

func (ev *Evaluator) matchVariantPattern(p *ast.VariantPattern, v Value, env *Environment) bool {
	if dispatcher, ok := env.LookupActivePatternCase(p.Name); ok {
		return ev.matchActivePattern(p, dispatcher, v, env)
	}
	sum, ok := v.(*SumInstance)
	if !ok || sum.VariantName != p.Name {
		return false
	}
	if len(sum.Payload) != len(p.Args) {
		return false
	}
	for i, sub := range p.Args {
		if !ev.matchPattern(sub, sum.Payload[i], env) {
			return false
		}
	}
	return true
}

func (ev *Evaluator) matchActivePattern(p *ast.VariantPattern, dispatcher Value, scrutinee Value, env *Environment) bool {
	result := ev.applyFunctionValue(dispatcher, []Value{scrutinee}, p)
	if IsError(result) {
		return false
	}
	sum, ok := result.(*SumInstance)
	if !ok || sum.VariantName != p.Name {
		return false
	}
	if len(sum.Payload) != len(p.Args) {
		return false
	}
	for i, sub := range p.Args {
		if !ev.matchPattern(sub, sum.Payload[i], env) {
			return false
		}
	}
	return true
}
