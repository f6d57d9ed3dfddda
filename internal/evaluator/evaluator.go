package evaluator

import (
	"github.com/lumen-lang/lumen/internal/ast"
)

// Evaluator tree-walks a checked program. It carries no process-wide
// mutable state (spec.md §5): everything it needs lives in the value
// Environment it is handed.
type Evaluator struct {
	Out Writer
}

// Writer abstracts the destination writeln/write send to, so the REPL,
// CLI, and tests can each supply their own sink.
type Writer interface {
	WriteString(s string) (int, error)
}

func New(out Writer) *Evaluator {
	return &Evaluator{Out: out}
}

// EvalProgram evaluates every top-level statement in order, returning the
// value of the final expression statement (used by the REPL) or Null.
func (ev *Evaluator) EvalProgram(prog *ast.Program, env *Environment) Value {
	var result Value = Null{}
	for _, stmt := range prog.Statements {
		result = ev.Eval(stmt, env)
		if IsError(result) {
			return result
		}
		if rv, ok := result.(*ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}

// Eval dispatches over every Statement and Expression kind.
func (ev *Evaluator) Eval(node ast.Node, env *Environment) Value {
	switch n := node.(type) {
	case *ast.LetStatement:
		return ev.evalLetStatement(n, env)
	case *ast.ActivePatternDecl:
		return ev.evalActivePatternDecl(n, env)
	case *ast.ReturnStatement:
		return ev.evalReturnStatement(n, env)
	case *ast.ExpressionStatement:
		return ev.Eval(n.Expression, env)
	case *ast.TypeDeclaration:
		return ev.evalTypeDeclaration(n, env)
	case *ast.RecordDeclaration:
		return ev.evalRecordDeclaration(n, env)
	case *ast.TraitDeclaration:
		return Null{}
	case *ast.ImplDeclaration:
		return ev.evalImplDeclaration(n, env)
	case *ast.ModuleHeader, *ast.UseStatement:
		return Null{}

	case *ast.IntegerLiteral:
		return Integer{Value: n.Value}
	case *ast.DoubleLiteral:
		return Double{Value: n.Value}
	case *ast.BooleanLiteral:
		return Boolean{Value: n.Value}
	case *ast.StringLiteral:
		return String{Value: n.Value}
	case *ast.InterpStringLiteral:
		return ev.evalInterpString(n, env)
	case *ast.ArrayLiteral:
		return ev.evalArrayLiteral(n, env)
	case *ast.HashLiteral:
		return ev.evalHashLiteral(n, env)
	case *ast.TupleLiteral:
		return ev.evalTupleLiteral(n, env)
	case *ast.Identifier:
		return ev.evalIdentifier(n, env)
	case *ast.PrefixExpr:
		return ev.evalPrefixExpr(n, env)
	case *ast.InfixExpr:
		return ev.evalInfixExpr(n, env)
	case *ast.AssignExpr:
		return ev.evalAssignExpr(n, env)
	case *ast.CallExpr:
		return ev.evalCallExpr(n, env)
	case *ast.IndexExpr:
		return ev.evalIndexExpr(n, env)
	case *ast.MemberExpr:
		return ev.evalMemberExpr(n, env)
	case *ast.IfExpr:
		return ev.evalIfExpr(n, env)
	case *ast.MatchExpr:
		return ev.evalMatchExpr(n, env)
	case *ast.WhenExpr:
		return ev.evalWhenExpr(n, env)
	case *ast.TryExpr:
		return ev.evalTryExpr(n, env)
	case *ast.FunctionLiteral:
		return ev.evalFunctionLiteral(n, env)
	case *ast.BlockExpr:
		return ev.evalBlockExpr(n, env)
	default:
		return NewError("evaluator: unknown node kind %T", node)
	}
}

func (ev *Evaluator) evalLetStatement(s *ast.LetStatement, env *Environment) Value {
	val := ev.Eval(s.Value, env)
	if IsError(val) {
		return val
	}
	if !ev.bindPattern(s.Pattern, val, env, s.Mutable) {
		return NewError("pattern does not match value %s", val.Inspect())
	}
	return Null{}
}

func (ev *Evaluator) bindPattern(pat ast.Pattern, v Value, env *Environment, mutable bool) bool {
	switch p := pat.(type) {
	case *ast.IdentPattern:
		env.Define(p.Name, v, mutable)
		return true
	case *ast.TuplePattern:
		tup, ok := v.(*Tuple)
		if !ok || len(tup.Elements) != len(p.Elements) {
			return false
		}
		for i, sub := range p.Elements {
			if !ev.bindPattern(sub, tup.Elements[i], env, mutable) {
				return false
			}
		}
		return true
	case *ast.ArrayPattern:
		arr, ok := v.(*Array)
		if !ok || len(arr.Elements) < len(p.Elements) {
			return false
		}
		for i, sub := range p.Elements {
			if !ev.bindPattern(sub, arr.Elements[i], env, mutable) {
				return false
			}
		}
		if p.Rest != nil {
			env.Define(*p.Rest, &Array{Elements: append([]Value{}, arr.Elements[len(p.Elements):]...)}, mutable)
		}
		return true
	default:
		return false
	}
}

func (ev *Evaluator) evalReturnStatement(s *ast.ReturnStatement, env *Environment) Value {
	if s.Value == nil {
		return &ReturnValue{Value: Null{}}
	}
	v := ev.Eval(s.Value, env)
	if IsError(v) {
		return v
	}
	return &ReturnValue{Value: v}
}

func (ev *Evaluator) evalBlockExpr(e *ast.BlockExpr, env *Environment) Value {
	blockEnv := NewEnvironment(env)
	var result Value = Null{}
	for _, stmt := range e.Statements {
		result = ev.Eval(stmt, blockEnv)
		if IsError(result) {
			return result
		}
		if _, ok := result.(*ReturnValue); ok {
			return result
		}
	}
	return result
}
