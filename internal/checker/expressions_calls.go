package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// checkCallExpr distinguishes the three callees spec.md §4.3 names: variant
// constructor, record constructor, and ordinary function (which also
// covers builtins, since they're installed as plain Function bindings).
func (c *Checker) checkCallExpr(e *ast.CallExpr, env *Env, expected types.Type) types.Type {
	if ident, ok := e.Function.(*ast.Identifier); ok {
		if ctorType, ok := env.LookupConstructor(ident.Name); ok {
			fn := ctorType.(*types.Function)
			return c.checkConstructorCall(e, ident.Name, fn, env, expected)
		}
		switch ident.Name {
		case "writeln", "write":
			return c.checkVariadicAny(e, env, types.Null{})
		case "strFormat":
			return c.checkStrFormat(e, env)
		}
	}

	fnType := c.CheckExpression(e.Function, env, nil)
	if _, bad := isError(fnType); bad {
		return fnType
	}
	fn, ok := fnType.(*types.Function)
	if !ok {
		return c.errorAt(e.Token, e, "cannot call a value of type %s", fnType)
	}
	return c.checkOrdinaryCall(e, fn, env)
}

func (c *Checker) checkVariadicAny(e *ast.CallExpr, env *Env, ret types.Type) types.Type {
	for _, a := range e.Args {
		t := c.CheckExpression(a, env, nil)
		if _, bad := isError(t); bad {
			return t
		}
	}
	return ret
}

func (c *Checker) checkStrFormat(e *ast.CallExpr, env *Env) types.Type {
	if len(e.Args) == 0 {
		return c.errorAt(e.Token, e, "strFormat requires a format string argument")
	}
	fmtType := c.CheckExpression(e.Args[0], env, types.String{})
	if _, ok := fmtType.(types.String); !ok {
		return c.errorAt(e.Args[0].Tok(), e.Args[0], "strFormat's first argument must be String, got %s", fmtType)
	}
	for _, a := range e.Args[1:] {
		t := c.CheckExpression(a, env, nil)
		if _, bad := isError(t); bad {
			return t
		}
	}
	return types.String{}
}

func (c *Checker) checkConstructorCall(e *ast.CallExpr, name string, fn *types.Function, env *Env, expected types.Type) types.Type {
	if len(e.Args) != len(fn.Params) {
		return c.errorAt(e.Token, e, "%s expects %d argument(s), got %d", name, len(fn.Params), len(e.Args))
	}
	sigma := types.Subst{}
	if expSum, ok := expected.(*types.Sum); ok {
		if retSum, ok := fn.Return.(*types.Sum); ok && retSum.Name == expSum.Name {
			types.Unify(fn.Return, expSum, sigma)
		}
	}
	if expRec, ok := expected.(*types.Record); ok {
		if retRec, ok := fn.Return.(*types.Record); ok && retRec.Name == expRec.Name {
			types.Unify(fn.Return, expRec, sigma)
		}
	}
	for i, arg := range e.Args {
		paramType := types.Substitute(fn.Params[i], sigma)
		argType := c.CheckExpression(arg, env, paramType)
		if _, bad := isError(argType); bad {
			return argType
		}
		var ok bool
		sigma, ok = types.Unify(paramType, argType, sigma)
		if !ok {
			return c.errorAt(arg.Tok(), arg, "%s argument %d: cannot unify %s with %s", name, i+1, argType, paramType)
		}
	}
	return types.Substitute(fn.Return, sigma)
}

func (c *Checker) checkOrdinaryCall(e *ast.CallExpr, fn *types.Function, env *Env) types.Type {
	if len(e.Args) != len(fn.Params) {
		return c.errorAt(e.Token, e, "function expects %d argument(s), got %d", len(fn.Params), len(e.Args))
	}
	sigma := types.Subst{}
	for i, arg := range e.Args {
		paramType := types.Substitute(fn.Params[i], sigma)
		argType := c.CheckExpression(arg, env, paramType)
		if _, bad := isError(argType); bad {
			return argType
		}
		var ok bool
		sigma, ok = types.Unify(paramType, argType, sigma)
		if !ok {
			return c.errorAt(arg.Tok(), arg, "argument %d: cannot unify %s with %s", i+1, argType, paramType)
		}
	}

	// Remaining bound type variables are checked against their trait
	// bounds using the implementation table.
	for _, tp := range fn.TypeParams {
		bounds := fn.TypeParamBounds[tp]
		if len(bounds) == 0 {
			continue
		}
		tv := &types.TypeVariable{Name: tp}
		resolved := types.Substitute(tv, sigma)
		if _, stillVar := resolved.(*types.TypeVariable); stillVar {
			continue
		}
		baseName := types.BaseTypeName(resolved)
		for _, trait := range bounds {
			if !hasImplementation(env, baseName, trait) {
				return c.errorAt(e.Token, e, "type %s does not implement %s (required for type parameter %s)", resolved, trait, tp)
			}
		}
	}

	ret := fn.Return
	if ret == nil {
		return types.Null{}
	}
	return types.Substitute(ret, sigma)
}

func (c *Checker) checkIndexExpr(e *ast.IndexExpr, env *Env) types.Type {
	left := c.CheckExpression(e.Left, env, nil)
	if _, bad := isError(left); bad {
		return left
	}
	switch lt := left.(type) {
	case *types.Array:
		idx := c.CheckExpression(e.Index, env, types.Integer{})
		if !isInteger(idx) {
			return c.errorAt(e.Index.Tok(), e.Index, "array index must be Integer, got %s", idx)
		}
		return lt.Elem
	case *types.Hash:
		idx := c.CheckExpression(e.Index, env, lt.Key)
		sigma := types.Subst{}
		if _, ok := types.Unify(lt.Key, idx, sigma); !ok {
			return c.errorAt(e.Index.Tok(), e.Index, "hash key must be %s, got %s", lt.Key, idx)
		}
		return lt.Value
	default:
		return c.errorAt(e.Token, e, "cannot index into %s", left)
	}
}

// checkMemberExpr covers record field access, String-keyed Hash dot access,
// module-qualified access, and trait method dispatch, in that order.
func (c *Checker) checkMemberExpr(e *ast.MemberExpr, env *Env) types.Type {
	left := c.CheckExpression(e.Left, env, nil)
	if _, bad := isError(left); bad {
		return left
	}
	switch lt := left.(type) {
	case *types.Record:
		if ft, ok := lt.FieldTypes[e.Property]; ok {
			return ft
		}
		return c.methodLookup(e, lt, left, env)
	case *types.Hash:
		if _, ok := lt.Key.(types.String); !ok {
			return c.errorAt(e.Token, e, "dot access on Hash requires String keys")
		}
		return lt.Value
	case *types.Module:
		if t, ok := lt.Env.Lookup(e.Property); ok {
			return t
		}
		return c.errorAt(e.Token, e, "module %s has no exported name %q", lt.Name, e.Property)
	default:
		return c.methodLookup(e, left, left, env)
	}
}

func (c *Checker) methodLookup(e *ast.MemberExpr, baseForName types.Type, receiver types.Type, env *Env) types.Type {
	if tv, ok := receiver.(*types.TypeVariable); ok {
		for _, bound := range tv.Bounds {
			if decl, ok := env.LookupType(bound); ok {
				if tr, ok := decl.(*types.Trait); ok {
					if sig, ok := tr.Methods[e.Property]; ok {
						return &types.Function{Params: sig.Params, Return: sig.Return}
					}
				}
			}
		}
	}
	baseName := types.BaseTypeName(baseForName)
	for _, impl := range env.Implementations(baseName) {
		for _, m := range impl.Node.Methods {
			if m.Name != e.Property {
				continue
			}
			sig := methodSignatureFromDecl(m, impl, env)
			sigma := types.Subst{}
			if _, ok := types.Unify(sig.Self, receiver, sigma); !ok {
				continue
			}
			params := sig.Params
			if sig.HasSelf && len(params) > 0 {
				params = params[1:]
			} else if sig.HasSelf {
				params = nil
			}
			return &types.Function{Params: params, Return: sig.Return}
		}
	}
	return c.errorAt(e.Token, e, "no method %q found for type %s", e.Property, baseForName)
}

// hasImplementation reports whether some impl registered under baseName
// implements trait.
func hasImplementation(env *Env, baseName, trait string) bool {
	for _, impl := range env.Implementations(baseName) {
		if impl.Node.TraitName == trait {
			return true
		}
	}
	return false
}

// methodSig is the resolved signature of one impl method: its receiver
// type and a Function carrying the remaining parameters.
type methodSig struct {
	Self    types.Type
	HasSelf bool
	Params  []types.Type
	Return  types.Type
}

func methodSignatureFromDecl(m *ast.FunctionLiteral, impl Impl, env *Env) methodSig {
	hasSelf := len(m.Params) > 0 && m.Params[0].Name == "self"
	checker := New("")
	self := checker.resolveTypeNode(impl.Node.TargetType, impl.DefEnv)
	params := make([]types.Type, 0, len(m.Params))
	for i, p := range m.Params {
		if i == 0 && hasSelf {
			params = append(params, self)
			continue
		}
		if p.Type != nil {
			params = append(params, checker.resolveTypeNode(p.Type, impl.DefEnv))
		} else {
			params = append(params, types.Any{})
		}
	}
	var ret types.Type = types.Null{}
	if m.ReturnType != nil {
		ret = checker.resolveTypeNode(m.ReturnType, impl.DefEnv)
	}
	return methodSig{Self: self, HasSelf: hasSelf, Params: params, Return: ret}
}
