package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// checkPattern checks pat against scrutType, binding any names it
// introduces into env, and reports whether the match is well-typed.
func (c *Checker) checkPattern(pat ast.Pattern, scrutType types.Type, env *Env) bool {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return true
	case *ast.IdentPattern:
		env.Define(p.Name, scrutType, false)
		return true
	case *ast.LiteralPattern:
		lit := c.CheckExpression(p.Value, env, scrutType)
		if _, bad := isError(lit); bad {
			return false
		}
		sigma := types.Subst{}
		_, ok := types.Unify(scrutType, lit, sigma)
		return ok
	case *ast.TuplePattern:
		tup, ok := scrutType.(*types.Tuple)
		if !ok || len(tup.Elements) != len(p.Elements) {
			return false
		}
		for i, sub := range p.Elements {
			if !c.checkPattern(sub, tup.Elements[i], env) {
				return false
			}
		}
		return true
	case *ast.ArrayPattern:
		arr, ok := scrutType.(*types.Array)
		if !ok {
			return false
		}
		for _, sub := range p.Elements {
			if !c.checkPattern(sub, arr.Elem, env) {
				return false
			}
		}
		if p.Rest != nil {
			env.Define(*p.Rest, &types.Array{Elem: arr.Elem}, false)
		}
		return true
	case *ast.VariantPattern:
		return c.checkVariantPattern(p, scrutType, env)
	default:
		return false
	}
}

func (c *Checker) checkVariantPattern(p *ast.VariantPattern, scrutType types.Type, env *Env) bool {
	if ap, ok := env.LookupActivePattern(p.Name); ok {
		return c.checkActivePatternMatch(p, ap, scrutType, env)
	}
	sum, ok := scrutType.(*types.Sum)
	if !ok {
		c.errorAt(p.Token, p, "pattern %q used against non-sum type %s", p.Name, scrutType)
		return false
	}
	variant, ok := sum.Variants[p.Name]
	if !ok {
		c.errorAt(p.Token, p, "%q is not a variant of %s", p.Name, sum.Name)
		return false
	}
	payload := types.SubstituteVariant(variant, sum.TypeArgs)
	if len(payload) != len(p.Args) {
		c.errorAt(p.Token, p, "%s expects %d argument(s), got %d", p.Name, len(payload), len(p.Args))
		return false
	}
	for i, sub := range p.Args {
		if !c.checkPattern(sub, payload[i], env) {
			return false
		}
	}
	return true
}

// checkActivePatternMatch binds the scrutinee through the active pattern's
// dispatcher function type and destructures its chosen case's payload
// against p's sub-patterns, per SPEC_FULL.md's active-pattern design.
func (c *Checker) checkActivePatternMatch(p *ast.VariantPattern, ap *ActivePattern, scrutType types.Type, env *Env) bool {
	if len(ap.FuncType.Params) != 1 {
		c.errorAt(p.Token, p, "active pattern dispatcher must take exactly one argument")
		return false
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(ap.FuncType.Params[0], scrutType, sigma); !ok {
		c.errorAt(p.Token, p, "active pattern %q does not accept scrutinee type %s", p.Name, scrutType)
		return false
	}
	resultType := types.Substitute(ap.FuncType.Return, sigma)
	sum, ok := resultType.(*types.Sum)
	if !ok {
		c.errorAt(p.Token, p, "active pattern %q must return a sum type, got %s", p.Name, resultType)
		return false
	}
	variant, ok := sum.Variants[p.Name]
	if !ok {
		c.errorAt(p.Token, p, "%q names no case of active pattern's return type %s", p.Name, sum.Name)
		return false
	}
	payload := types.SubstituteVariant(variant, sum.TypeArgs)
	if len(payload) != len(p.Args) {
		c.errorAt(p.Token, p, "%s expects %d argument(s), got %d", p.Name, len(payload), len(p.Args))
		return false
	}
	for i, sub := range p.Args {
		if !c.checkPattern(sub, payload[i], env) {
			return false
		}
	}
	return true
}
