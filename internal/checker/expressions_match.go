package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// checkMatchExpr: each arm supplies one pattern per scrutinee, checked
// positionally against that scrutinee's type. For a single Sum scrutinee,
// every non-wildcard arm must name one of its variants (or a registered
// active pattern), and the set of covered variants must be exhaustive
// unless a wildcard arm is present; exhaustiveness analysis across more
// than one scrutinee's sum types at once is cartesian-product pattern
// analysis, which spec.md's Non-goals exclude, so multi-scrutinee matches
// skip the exhaustiveness check and rely on the runtime no-pattern-matched
// error for uncovered combinations. Arm bodies unify to one common type.
func (c *Checker) checkMatchExpr(e *ast.MatchExpr, env *Env, expected types.Type) types.Type {
	if len(e.Scrutinees) == 0 {
		return c.errorAt(e.Token, e, "match requires at least one scrutinee")
	}
	scrutTypes := make([]types.Type, len(e.Scrutinees))
	for i, s := range e.Scrutinees {
		st := c.CheckExpression(s, env, nil)
		if _, bad := isError(st); bad {
			return st
		}
		scrutTypes[i] = st
	}

	covered := map[string]bool{}
	hasWildcard := false
	var result types.Type

	for _, arm := range e.Arms {
		if len(arm.Patterns) != len(scrutTypes) {
			return c.errorAt(e.Token, e, "match arm has %d pattern(s), expected %d (one per scrutinee)", len(arm.Patterns), len(scrutTypes))
		}
		armEnv := NewEnv(env)
		for i, pat := range arm.Patterns {
			if len(scrutTypes) == 1 {
				if _, ok := pat.(*ast.WildcardPattern); ok {
					hasWildcard = true
				}
				if vp, ok := pat.(*ast.VariantPattern); ok {
					covered[vp.Name] = true
				}
			}
			if !c.checkPattern(pat, scrutTypes[i], armEnv) {
				return c.errorAt(pat.Tok(), pat, "pattern does not match scrutinee type %s", scrutTypes[i])
			}
		}
		bodyType := c.CheckExpression(arm.Body, armEnv, expected)
		if _, bad := isError(bodyType); bad {
			return bodyType
		}
		if result == nil {
			result = bodyType
			continue
		}
		sigma := types.Subst{}
		if _, ok := types.Unify(result, bodyType, sigma); !ok {
			return c.errorAt(arm.Body.Tok(), arm.Body, "match arms have incompatible types: %s and %s", result, bodyType)
		}
		result = types.Substitute(result, sigma)
	}

	if len(scrutTypes) == 1 && !hasWildcard {
		if sum, ok := scrutTypes[0].(*types.Sum); ok {
			for _, variantName := range sum.Order {
				if !covered[variantName] {
					return c.errorAt(e.Token, e, "match is not exhaustive: missing case for %s.%s", sum.Name, variantName)
				}
			}
		}
	}

	if result == nil {
		return types.Null{}
	}
	return result
}

// checkWhenExpr: with a subject, each condition compares by equality or
// applies as a boolean predicate; without one, every condition is itself a
// boolean expression. All branch bodies and the else body unify.
func (c *Checker) checkWhenExpr(e *ast.WhenExpr, env *Env, expected types.Type) types.Type {
	var subjType types.Type
	if e.Subject != nil {
		subjType = c.CheckExpression(e.Subject, env, nil)
		if _, bad := isError(subjType); bad {
			return subjType
		}
	}

	var result types.Type
	for _, arm := range e.Arms {
		for _, cond := range arm.Conditions {
			condType := c.CheckExpression(cond, env, subjType)
			if _, bad := isError(condType); bad {
				return condType
			}
			if e.Subject == nil {
				if _, ok := condType.(types.Boolean); !ok {
					return c.errorAt(cond.Tok(), cond, "when condition must be Boolean, got %s", condType)
				}
			} else {
				if _, isBool := condType.(types.Boolean); isBool {
					continue
				}
				sigma := types.Subst{}
				if _, ok := types.Unify(subjType, condType, sigma); !ok {
					return c.errorAt(cond.Tok(), cond, "when condition type %s does not match subject type %s", condType, subjType)
				}
			}
		}
		bodyType := c.CheckExpression(arm.Body, env, expected)
		if _, bad := isError(bodyType); bad {
			return bodyType
		}
		if result == nil {
			result = bodyType
		} else {
			sigma := types.Subst{}
			if _, ok := types.Unify(result, bodyType, sigma); !ok {
				return c.errorAt(arm.Body.Tok(), arm.Body, "when branches have incompatible types: %s and %s", result, bodyType)
			}
		}
	}

	elseType := c.CheckExpression(e.Else, env, expected)
	if _, bad := isError(elseType); bad {
		return elseType
	}
	if result == nil {
		return elseType
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(result, elseType, sigma); !ok {
		return c.errorAt(e.Else.Tok(), e.Else, "when else branch has incompatible type: %s vs %s", elseType, result)
	}
	return types.Substitute(result, sigma)
}

// checkFunctionLiteral: a fully-annotated signature (every parameter typed,
// return type declared) is established before the body is checked, which
// enables recursive self-reference; otherwise parameter types come from
// the expected function type and the return type is inferred from the
// body.
func (c *Checker) checkFunctionLiteral(e *ast.FunctionLiteral, env *Env, expected types.Type) types.Type {
	typeParamEnv := NewEnv(env)
	defineFunctionTypeParamScope(e.TypeParams, typeParamEnv)
	fnEnv := NewEnv(typeParamEnv)

	allAnnotated := true
	for _, p := range e.Params {
		if p.Type == nil {
			allAnnotated = false
			break
		}
	}

	expFn, hasExpected := expected.(*types.Function)

	paramTypes := make([]types.Type, len(e.Params))
	for i, p := range e.Params {
		switch {
		case p.Type != nil:
			paramTypes[i] = c.resolveTypeNode(p.Type, typeParamEnv)
		case hasExpected && i < len(expFn.Params):
			paramTypes[i] = expFn.Params[i]
		default:
			paramTypes[i] = types.Any{}
		}
	}
	for i, p := range e.Params {
		fnEnv.Define(p.Name, paramTypes[i], false)
	}

	var declaredRet types.Type
	if e.ReturnType != nil {
		declaredRet = c.resolveTypeNode(e.ReturnType, typeParamEnv)
	} else if hasExpected {
		declaredRet = expFn.Return
	}

	typeParamNames := make([]string, len(e.TypeParams))
	typeParamBounds := make(map[string][]string, len(e.TypeParams))
	for i, tp := range e.TypeParams {
		typeParamNames[i] = tp.Name
		if len(tp.Bounds) > 0 {
			typeParamBounds[tp.Name] = tp.Bounds
		}
	}
	makeFnType := func(ret types.Type) *types.Function {
		return &types.Function{Params: paramTypes, Return: ret, TypeParams: typeParamNames, TypeParamBounds: typeParamBounds}
	}

	if e.Name != "" && allAnnotated && declaredRet != nil {
		fnEnv.Define(e.Name, makeFnType(declaredRet), false)
	}

	bodyEnv := fnEnv.WithReturnType(declaredRet)
	bodyType := c.CheckExpression(e.Body, bodyEnv, declaredRet)
	if _, bad := isError(bodyType); bad {
		return bodyType
	}

	if declaredRet != nil {
		sigma := types.Subst{}
		if _, ok := types.Unify(declaredRet, bodyType, sigma); !ok {
			return c.errorAt(e.Token, e, "function body returns %s, expected %s", bodyType, declaredRet)
		}
		return makeFnType(declaredRet)
	}
	return makeFnType(bodyType)
}
