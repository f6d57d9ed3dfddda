package evaluator

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
)

func (ev *Evaluator) evalInterpString(e *ast.InterpStringLiteral, env *Environment) Value {
	var b strings.Builder
	for _, seg := range e.Segments {
		if seg.Expr == nil {
			b.WriteString(seg.Text)
			continue
		}
		v := ev.Eval(seg.Expr, env)
		if IsError(v) {
			return v
		}
		b.WriteString(Stringify(v))
	}
	return String{Value: b.String()}
}

func (ev *Evaluator) evalArrayLiteral(e *ast.ArrayLiteral, env *Environment) Value {
	elems := make([]Value, len(e.Elements))
	for i, el := range e.Elements {
		v := ev.Eval(el, env)
		if IsError(v) {
			return v
		}
		elems[i] = v
	}
	return &Array{Elements: elems}
}

func (ev *Evaluator) evalHashLiteral(e *ast.HashLiteral, env *Environment) Value {
	h := NewHash()
	for i := range e.Keys {
		k := ev.Eval(e.Keys[i], env)
		if IsError(k) {
			return k
		}
		v := ev.Eval(e.Values[i], env)
		if IsError(v) {
			return v
		}
		key, ok := HashKey(k)
		if !ok {
			return NewError("unusable as hash key: %s", k.Inspect())
		}
		h.Pairs[key] = HashPair{Key: k, Value: v}
	}
	return h
}

func (ev *Evaluator) evalTupleLiteral(e *ast.TupleLiteral, env *Environment) Value {
	elems := make([]Value, len(e.Elements))
	for i, el := range e.Elements {
		v := ev.Eval(el, env)
		if IsError(v) {
			return v
		}
		elems[i] = v
	}
	return &Tuple{Elements: elems}
}

func (ev *Evaluator) evalIdentifier(e *ast.Identifier, env *Environment) Value {
	if v, ok := env.Get(e.Name); ok {
		return v
	}
	return NewError("undefined name %q", e.Name)
}

func (ev *Evaluator) evalPrefixExpr(e *ast.PrefixExpr, env *Environment) Value {
	right := ev.Eval(e.Right, env)
	if IsError(right) {
		return right
	}
	switch e.Operator {
	case "-":
		switch r := right.(type) {
		case Integer:
			return Integer{Value: -r.Value}
		case Double:
			return Double{Value: -r.Value}
		}
		return NewError("unary - requires a numeric operand, got %s", right.Kind())
	case "!":
		b, ok := right.(Boolean)
		if !ok {
			return NewError("unary ! requires a Boolean operand, got %s", right.Kind())
		}
		return Boolean{Value: !b.Value}
	default:
		return NewError("unknown prefix operator %q", e.Operator)
	}
}

func (ev *Evaluator) evalInfixExpr(e *ast.InfixExpr, env *Environment) Value {
	switch e.Operator {
	case "&&":
		left := ev.Eval(e.Left, env)
		if IsError(left) {
			return left
		}
		if !Truthy(left) {
			return left
		}
		return ev.Eval(e.Right, env)
	case "||":
		left := ev.Eval(e.Left, env)
		if IsError(left) {
			return left
		}
		if Truthy(left) {
			return left
		}
		return ev.Eval(e.Right, env)
	}

	left := ev.Eval(e.Left, env)
	if IsError(left) {
		return left
	}
	right := ev.Eval(e.Right, env)
	if IsError(right) {
		return right
	}

	switch e.Operator {
	case "+":
		if ls, ok := left.(String); ok {
			rs, ok := right.(String)
			if !ok {
				return NewError("cannot concatenate String with %s", right.Kind())
			}
			return String{Value: ls.Value + rs.Value}
		}
		return evalArithmetic(e.Operator, left, right)
	case "-", "*", "/":
		return evalArithmetic(e.Operator, left, right)
	case "%":
		li, lok := left.(Integer)
		ri, rok := right.(Integer)
		if !lok || !rok {
			return NewError("%% requires Integer operands")
		}
		if ri.Value == 0 {
			return NewError("modulo by zero")
		}
		return Integer{Value: li.Value % ri.Value}
	case "==":
		return Boolean{Value: valuesEqual(left, right)}
	case "!=":
		return Boolean{Value: !valuesEqual(left, right)}
	case "<", ">", "<=", ">=":
		return evalComparison(e.Operator, left, right)
	default:
		return NewError("unknown infix operator %q", e.Operator)
	}
}

func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Integer:
		return float64(x.Value), true
	case Double:
		return x.Value, true
	default:
		return 0, false
	}
}

func evalArithmetic(op string, left, right Value) Value {
	li, lok := left.(Integer)
	ri, rok := right.(Integer)
	if lok && rok {
		switch op {
		case "+":
			return Integer{Value: li.Value + ri.Value}
		case "-":
			return Integer{Value: li.Value - ri.Value}
		case "*":
			return Integer{Value: li.Value * ri.Value}
		case "/":
			if ri.Value == 0 {
				return NewError("division by zero")
			}
			return Integer{Value: li.Value / ri.Value}
		}
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return NewError("%s requires numeric operands, got %s and %s", op, left.Kind(), right.Kind())
	}
	switch op {
	case "+":
		return Double{Value: lf + rf}
	case "-":
		return Double{Value: lf - rf}
	case "*":
		return Double{Value: lf * rf}
	case "/":
		if rf == 0 {
			return NewError("division by zero")
		}
		return Double{Value: lf / rf}
	default:
		return NewError("unknown arithmetic operator %q", op)
	}
}

func evalComparison(op string, left, right Value) Value {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return NewError("comparison requires numeric operands, got %s and %s", left.Kind(), right.Kind())
	}
	switch op {
	case "<":
		return Boolean{Value: lf < rf}
	case ">":
		return Boolean{Value: lf > rf}
	case "<=":
		return Boolean{Value: lf <= rf}
	case ">=":
		return Boolean{Value: lf >= rf}
	default:
		return NewError("unknown comparison operator %q", op)
	}
}

func valuesEqual(a, b Value) bool {
	if _, aNull := a.(Null); aNull {
		_, bNull := b.(Null)
		return bNull
	}
	if _, bNull := b.(Null); bNull {
		return false
	}
	switch x := a.(type) {
	case Integer:
		if y, ok := b.(Integer); ok {
			return x.Value == y.Value
		}
		if y, ok := b.(Double); ok {
			return float64(x.Value) == y.Value
		}
		return false
	case Double:
		if y, ok := b.(Double); ok {
			return x.Value == y.Value
		}
		if y, ok := b.(Integer); ok {
			return x.Value == float64(y.Value)
		}
		return false
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x.Value == y.Value
	case String:
		y, ok := b.(String)
		return ok && x.Value == y.Value
	case *SumInstance:
		y, ok := b.(*SumInstance)
		if !ok || x.VariantName != y.VariantName || len(x.Payload) != len(y.Payload) {
			return false
		}
		for i := range x.Payload {
			if !valuesEqual(x.Payload[i], y.Payload[i]) {
				return false
			}
		}
		return true
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !valuesEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !valuesEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (ev *Evaluator) evalAssignExpr(e *ast.AssignExpr, env *Environment) Value {
	switch target := e.Target.(type) {
	case *ast.Identifier:
		val := ev.Eval(e.Value, env)
		if IsError(val) {
			return val
		}
		if e.Operator == "+=" {
			cur, ok := env.Get(target.Name)
			if !ok {
				return NewError("undefined name %q", target.Name)
			}
			val = evalArithmetic("+", cur, val)
			if IsError(val) {
				return val
			}
		}
		env.Assign(target.Name, val)
		return val
	case *ast.IndexExpr:
		leftVal := ev.Eval(target.Left, env)
		if IsError(leftVal) {
			return leftVal
		}
		h, ok := leftVal.(*Hash)
		if !ok {
			return NewError("index-assignment target must be a Hash, got %s", leftVal.Kind())
		}
		idxVal := ev.Eval(target.Index, env)
		if IsError(idxVal) {
			return idxVal
		}
		key, ok := HashKey(idxVal)
		if !ok {
			return NewError("unusable as hash key: %s", idxVal.Inspect())
		}
		val := ev.Eval(e.Value, env)
		if IsError(val) {
			return val
		}
		if e.Operator == "+=" {
			existing, ok := h.Pairs[key]
			if !ok {
				return NewError("key %s not present for +=", idxVal.Inspect())
			}
			val = evalArithmetic("+", existing.Value, val)
			if IsError(val) {
				return val
			}
		}
		h.Pairs[key] = HashPair{Key: idxVal, Value: val}
		return val
	default:
		return NewError("invalid assignment target")
	}
}

func (ev *Evaluator) evalIndexExpr(e *ast.IndexExpr, env *Environment) Value {
	left := ev.Eval(e.Left, env)
	if IsError(left) {
		return left
	}
	idx := ev.Eval(e.Index, env)
	if IsError(idx) {
		return idx
	}
	switch l := left.(type) {
	case *Array:
		i, ok := idx.(Integer)
		if !ok {
			return NewError("array index must be Integer, got %s", idx.Kind())
		}
		if i.Value < 0 || int(i.Value) >= len(l.Elements) {
			return NewError("array index %d out of range (length %d)", i.Value, len(l.Elements))
		}
		return l.Elements[i.Value]
	case *Hash:
		key, ok := HashKey(idx)
		if !ok {
			return NewError("unusable as hash key: %s", idx.Inspect())
		}
		pair, ok := l.Pairs[key]
		if !ok {
			return Null{}
		}
		return pair.Value
	default:
		return NewError("cannot index into %s", left.Kind())
	}
}

func (ev *Evaluator) evalMemberExpr(e *ast.MemberExpr, env *Environment) Value {
	left := ev.Eval(e.Left, env)
	if IsError(left) {
		return left
	}
	switch l := left.(type) {
	case *Record:
		if v, ok := l.Fields[e.Property]; ok {
			return v
		}
		return ev.dispatchMethod(e, "Record:"+l.Name, left, env)
	case *Hash:
		key, ok := HashKey(String{Value: e.Property})
		if !ok {
			return Null{}
		}
		pair, ok := l.Pairs[key]
		if !ok {
			return Null{}
		}
		return pair.Value
	case *Module:
		if v, ok := l.Env.Get(e.Property); ok {
			return v
		}
		return NewError("module %s has no exported name %q", l.Name, e.Property)
	case *SumInstance:
		return ev.dispatchMethod(e, l.SumName, left, env)
	default:
		return ev.dispatchMethod(e, left.Kind(), left, env)
	}
}

// dispatchMethod resolves a trait method by base-type name. A "Record:"
// prefix on baseName is stripped before the impl lookup, so impls are
// found by the bare name (matching the checker's BaseTypeName keys) and
// the prefix only shows in the not-found error message.
func (ev *Evaluator) dispatchMethod(e *ast.MemberExpr, baseName string, self Value, env *Environment) Value {
	base := strings.TrimPrefix(baseName, "Record:")
	for _, impl := range env.Implementations(base) {
		if m, ok := impl.Methods[e.Property]; ok {
			return ev.bindMethod(m, self)
		}
	}
	return NewError("no method %q found for %s", e.Property, strconv.Quote(baseName))
}

// bindMethod returns a closure-like Function with `self` pre-bound into a
// child environment, so a later call only needs to bind the remaining
// parameters.
func (ev *Evaluator) bindMethod(m *Function, self Value) *Function {
	childEnv := NewEnvironment(m.Env)
	childEnv.Define("self", self, false)
	params := m.Params
	if len(params) > 0 && params[0].Name == "self" {
		params = params[1:]
	}
	return &Function{Name: m.Name, Params: params, Body: m.Body, Env: childEnv}
}

// Stringify renders v the way toString/interpolation present it: no outer
// quotes on strings, recursive Inspect otherwise.
func Stringify(v Value) string {
	if s, ok := v.(String); ok {
		return s.Value
	}
	return v.Inspect()
}
