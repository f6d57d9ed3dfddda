package checker

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/diagnostics"
	"github.com/lumen-lang/lumen/internal/token"
	"github.com/lumen-lang/lumen/internal/types"
)

// Checker walks an AST producing semantic types over a type Env, per
// spec.md §4.3. It accumulates diagnostics rather than halting on the
// first one: an Error type halts checking only of the current statement
// chain, exactly as spec.md prescribes.
type Checker struct {
	File   string
	Errors []*diagnostics.Error
}

func New(file string) *Checker {
	return &Checker{File: file}
}

func (c *Checker) errorAt(tok token.Token, node ast.Node, format string, args ...any) *types.Error {
	msg := fmt.Sprintf(format, args...)
	c.Errors = append(c.Errors, &diagnostics.Error{Category: diagnostics.Semantic, Token: tok, Message: msg, File: c.File})
	return &types.Error{Message: msg, Node: node}
}

func isError(t types.Type) (*types.Error, bool) {
	e, ok := t.(*types.Error)
	return e, ok
}

// CheckProgram type-checks every top-level statement in order, returning
// true iff no semantic error was recorded. Module-header and use-statement
// handling is left to the loader, which drives imports before calling this
// on the remaining body.
func (c *Checker) CheckProgram(prog *ast.Program, env *Env) bool {
	for _, stmt := range prog.Statements {
		c.CheckStatement(stmt, env)
	}
	return len(c.Errors) == 0
}

// CheckStatement type-checks one statement, returning the type of its
// value where that is meaningful (expression-statements, let, return) and
// types.Null otherwise.
func (c *Checker) CheckStatement(stmt ast.Statement, env *Env) types.Type {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return c.checkLetStatement(s, env)
	case *ast.ActivePatternDecl:
		return c.checkActivePatternDecl(s, env)
	case *ast.ReturnStatement:
		return c.checkReturnStatement(s, env)
	case *ast.ExpressionStatement:
		return c.CheckExpression(s.Expression, env, nil)
	case *ast.TypeDeclaration:
		return c.checkTypeDeclaration(s, env)
	case *ast.RecordDeclaration:
		return c.checkRecordDeclaration(s, env)
	case *ast.TraitDeclaration:
		return c.checkTraitDeclaration(s, env)
	case *ast.ImplDeclaration:
		return c.checkImplDeclaration(s, env)
	case *ast.ModuleHeader, *ast.UseStatement:
		// Handled by the module loader before the body is checked.
		return types.Null{}
	default:
		return c.errorAt(stmt.Tok(), stmt, "unknown statement kind %T", stmt)
	}
}

func (c *Checker) checkLetStatement(s *ast.LetStatement, env *Env) types.Type {
	var expected types.Type
	if s.Type != nil {
		expected = c.resolveTypeNode(s.Type, env)
	}

	if _, isIdent := s.Pattern.(*ast.IdentPattern); !isIdent && s.Type != nil {
		return c.errorAt(s.Token, s, "type annotation is not allowed on a destructuring pattern")
	}

	valType := c.CheckExpression(s.Value, env, expected)
	if _, bad := isError(valType); bad {
		return valType
	}
	if expected != nil {
		sigma := types.Subst{}
		if _, ok := types.Unify(expected, valType, sigma); !ok {
			return c.errorAt(s.Token, s, "cannot assign value of type %s to binding declared as %s", valType, expected)
		}
		valType = types.Substitute(expected, sigma)
	}

	if !c.bindPattern(s.Pattern, valType, env, s.Mutable) {
		return c.errorAt(s.Token, s, "pattern does not match type %s", valType)
	}
	return types.Null{}
}

// bindPattern binds a let-destructuring pattern's names into env; only
// IdentPattern, TuplePattern, and ArrayPattern are legal here (spec.md
// §4.2), enforced by the parser's parseBindingPattern.
func (c *Checker) bindPattern(pat ast.Pattern, t types.Type, env *Env, mutable bool) bool {
	switch p := pat.(type) {
	case *ast.IdentPattern:
		env.Define(p.Name, t, mutable)
		return true
	case *ast.TuplePattern:
		tup, ok := t.(*types.Tuple)
		if !ok || len(tup.Elements) != len(p.Elements) {
			return false
		}
		for i, elemPat := range p.Elements {
			if !c.bindPattern(elemPat, tup.Elements[i], env, mutable) {
				return false
			}
		}
		return true
	case *ast.ArrayPattern:
		arr, ok := t.(*types.Array)
		if !ok {
			return false
		}
		for _, elemPat := range p.Elements {
			if !c.bindPattern(elemPat, arr.Elem, env, mutable) {
				return false
			}
		}
		if p.Rest != nil {
			env.Define(*p.Rest, &types.Array{Elem: arr.Elem}, mutable)
		}
		return true
	default:
		return false
	}
}

// checkActivePatternDecl checks the dispatcher function and registers it
// under its case names so match arms can name any of them as a pattern.
func (c *Checker) checkActivePatternDecl(s *ast.ActivePatternDecl, env *Env) types.Type {
	fnType := c.CheckExpression(s.Value, env, nil)
	if _, bad := isError(fnType); bad {
		return fnType
	}
	fn, ok := fnType.(*types.Function)
	if !ok {
		return c.errorAt(s.Token, s, "active pattern %q must be bound to a function", s.Name)
	}
	env.Define(s.Name, fn, false)
	env.DefineActivePattern(s.Name, &ActivePattern{Cases: s.Cases, FuncType: fn})
	return types.Null{}
}

func (c *Checker) checkReturnStatement(s *ast.ReturnStatement, env *Env) types.Type {
	if s.Value == nil {
		return types.Null{}
	}
	return c.CheckExpression(s.Value, env, nil)
}
