package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// resolveTypeNode turns a parsed type annotation into a semantic Type.
// Builtin primitive and container names are recognized first; anything
// else is looked up as a declared record/sum/trait, instantiated fresh
// with its own type parameters turned into type variables so call-site
// unification can bind them independently per spec.md §4.3.
func (c *Checker) resolveTypeNode(tn ast.TypeNode, env *Env) types.Type {
	switch t := tn.(type) {
	case *ast.IdentType:
		switch t.Name {
		case "Int", "Integer":
			return types.Integer{}
		case "Double", "Float":
			return types.Double{}
		case "Bool", "Boolean":
			return types.Boolean{}
		case "String":
			return types.String{}
		case "Null", "Unit", "Void":
			return types.Null{}
		case "Any":
			return types.Any{}
		}
		if decl, ok := env.LookupType(t.Name); ok {
			return instantiate(decl, nil)
		}
		if tv, ok := lookupTypeParam(t.Name, env); ok {
			return tv
		}
		return c.errorAt(t.Token, t, "undefined type %q", t.Name)
	case *ast.PathType:
		last := t.Parts[len(t.Parts)-1]
		if decl, ok := env.LookupType(last); ok {
			return instantiate(decl, nil)
		}
		return c.errorAt(t.Token, t, "undefined type %q", last)
	case *ast.GenericType:
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.resolveTypeNode(a, env)
		}
		switch t.Name {
		case "Array":
			if len(args) != 1 {
				return c.errorAt(t.Token, t, "Array takes exactly one type argument")
			}
			return &types.Array{Elem: args[0]}
		case "Hash":
			if len(args) != 2 {
				return c.errorAt(t.Token, t, "Hash takes exactly two type arguments")
			}
			return &types.Hash{Key: args[0], Value: args[1]}
		}
		decl, ok := env.LookupType(t.Name)
		if !ok {
			return c.errorAt(t.Token, t, "undefined type %q", t.Name)
		}
		return instantiate(decl, args)
	case *ast.FuncType:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = c.resolveTypeNode(p, env)
		}
		var ret types.Type = types.Null{}
		if t.Return != nil {
			ret = c.resolveTypeNode(t.Return, env)
		}
		return &types.Function{Params: params, Return: ret}
	case *ast.TupleType:
		elems := make([]types.Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = c.resolveTypeNode(e, env)
		}
		return &types.Tuple{Elements: elems}
	default:
		return c.errorAt(tn.Tok(), tn, "unknown type annotation %T", tn)
	}
}

// lookupTypeParam resolves name to the TypeVariable registered for it by
// defineTypeParamScope/defineFunctionTypeParamScope, preserving any trait
// bounds attached at the declaration site rather than minting a bare
// bounds-less variable.
func lookupTypeParam(name string, env *Env) (*types.TypeVariable, bool) {
	b, ok := env.LookupBinding("$typeparam$" + name)
	if !ok {
		return nil, false
	}
	tv, ok := b.Type.(*types.TypeVariable)
	if !ok {
		return nil, false
	}
	return tv, true
}

// instantiate produces a fresh copy of a declared type template with
// TypeArgs set either from explicit args, or to fresh type variables (one
// per declared parameter) when args is nil.
func instantiate(decl types.Type, args []types.Type) types.Type {
	switch d := decl.(type) {
	case *types.Record:
		ta := args
		if ta == nil {
			ta = freshVars(d.TypeParams)
		}
		return &types.Record{Name: d.Name, FieldNames: d.FieldNames, FieldTypes: d.FieldTypes, TypeParams: d.TypeParams, TypeArgs: ta}
	case *types.Sum:
		ta := args
		if ta == nil {
			ta = freshVars(d.TypeParams)
		}
		return &types.Sum{Name: d.Name, Variants: d.Variants, Order: d.Order, TypeParams: d.TypeParams, TypeArgs: ta}
	case *types.Trait:
		ta := args
		if ta == nil {
			ta = freshVars(d.TypeParams)
		}
		return &types.Trait{Name: d.Name, Methods: d.Methods, Order: d.Order, TypeParams: d.TypeParams, TypeArgs: ta}
	default:
		return decl
	}
}

func freshVars(names []string) []types.Type {
	out := make([]types.Type, len(names))
	for i, n := range names {
		out[i] = &types.TypeVariable{Name: n}
	}
	return out
}

// checkTypeDeclaration registers a sum type and synthesizes a constructor
// function per variant, per spec.md §4.1's "each variant is also a callable
// constructor" rule.
func (c *Checker) checkTypeDeclaration(s *ast.TypeDeclaration, env *Env) types.Type {
	sum := &types.Sum{
		Name:       s.Name,
		Variants:   map[string]*types.Variant{},
		TypeParams: s.TypeParams,
	}
	env.DefineType(s.Name, sum)
	defineTypeParamScope(s.TypeParams, env)

	for _, vd := range s.Variants {
		params := make([]types.Type, len(vd.Params))
		for i, p := range vd.Params {
			params[i] = c.resolveTypeNode(p, env)
		}
		v := &types.Variant{Name: vd.Name, Params: params, Parent: sum}
		sum.Variants[vd.Name] = v
		sum.Order = append(sum.Order, vd.Name)

		ctorType := &types.Function{Params: params, Return: sum, TypeParams: s.TypeParams}
		env.DefineConstructor(vd.Name, ctorType)
	}
	return types.Null{}
}

// checkRecordDeclaration registers a record type and its synthesized
// positional constructor function.
func (c *Checker) checkRecordDeclaration(s *ast.RecordDeclaration, env *Env) types.Type {
	rec := &types.Record{
		Name:       s.Name,
		FieldTypes: map[string]types.Type{},
		TypeParams: s.TypeParams,
	}
	env.DefineType(s.Name, rec)
	defineTypeParamScope(s.TypeParams, env)

	fieldTypes := make([]types.Type, len(s.Fields))
	for i, f := range s.Fields {
		ft := c.resolveTypeNode(f.Type, env)
		rec.FieldNames = append(rec.FieldNames, f.Name)
		rec.FieldTypes[f.Name] = ft
		fieldTypes[i] = ft
	}

	ctorType := &types.Function{Params: fieldTypes, Return: rec, TypeParams: s.TypeParams}
	env.DefineConstructor(s.Name, ctorType)
	return types.Null{}
}

func (c *Checker) checkTraitDeclaration(s *ast.TraitDeclaration, env *Env) types.Type {
	tr := &types.Trait{
		Name:       s.Name,
		Methods:    map[string]*types.Function{},
		TypeParams: s.TypeParams,
	}
	env.DefineType(s.Name, tr)
	defineTypeParamScope(s.TypeParams, env)

	for _, m := range s.Methods {
		params := make([]types.Type, len(m.Params))
		for i, p := range m.Params {
			params[i] = c.resolveTypeNode(p.Type, env)
		}
		var ret types.Type = types.Null{}
		if m.ReturnType != nil {
			ret = c.resolveTypeNode(m.ReturnType, env)
		}
		fn := &types.Function{Params: params, Return: ret}
		tr.Methods[m.Name] = fn
		tr.Order = append(tr.Order, m.Name)
	}
	return types.Null{}
}

// checkImplDeclaration checks an `impl Trait for Target { ... }` block: each
// method body is checked against the trait's declared signature (with the
// target type substituted for the trait's own TypeParams where applicable),
// then the whole block is registered under the target's base type name.
func (c *Checker) checkImplDeclaration(s *ast.ImplDeclaration, env *Env) types.Type {
	implEnv := NewEnv(env)
	defineTypeParamScope(s.TypeParams, implEnv)

	traitDecl, ok := env.LookupType(s.TraitName)
	if !ok {
		return c.errorAt(s.Token, s, "undefined trait %q", s.TraitName)
	}
	trait, ok := traitDecl.(*types.Trait)
	if !ok {
		return c.errorAt(s.Token, s, "%q is not a trait", s.TraitName)
	}

	target := c.resolveTypeNode(s.TargetType, implEnv)
	if _, bad := isError(target); bad {
		return target
	}

	implemented := map[string]bool{}
	for _, m := range s.Methods {
		sig, ok := trait.Methods[m.Name]
		if !ok {
			c.errorAt(m.Tok(), m, "%q is not a method of trait %s", m.Name, s.TraitName)
			continue
		}
		implemented[m.Name] = true
		c.checkMethodBody(m, sig, target, implEnv)
	}

	for _, name := range trait.Order {
		if !implemented[name] {
			c.errorAt(s.Token, s, "missing trait method %q for impl %s for %s", name, s.TraitName, target)
		}
	}

	baseName := types.BaseTypeName(target)
	env.AddImplementation(baseName, s, implEnv)
	return types.Null{}
}

func (c *Checker) checkMethodBody(m *ast.FunctionLiteral, sig *types.Function, target types.Type, env *Env) {
	methodEnv := NewEnv(env)
	if len(m.Params) > 0 && m.Params[0].Name == "self" {
		methodEnv.Define("self", target, false)
		m = shiftSelfParam(m)
	}
	if len(m.Params) != len(sig.Params) {
		c.errorAt(m.Tok(), m, "method %s signature mismatch: trait declares %d parameter(s), impl has %d", m.Name, len(sig.Params), len(m.Params))
		return
	}
	for i, p := range m.Params {
		pt := sig.Params[i]
		if p.Type != nil {
			pt = c.resolveTypeNode(p.Type, env)
		}
		methodEnv.Define(p.Name, pt, false)
	}
	ret := sig.Return
	if m.ReturnType != nil {
		ret = c.resolveTypeNode(m.ReturnType, env)
	}
	bodyEnv := methodEnv.WithReturnType(ret)
	bodyType := c.CheckExpression(m.Body, bodyEnv, ret)
	if _, bad := isError(bodyType); bad {
		return
	}
	sigma := types.Subst{}
	if _, ok := types.Unify(ret, bodyType, sigma); !ok {
		c.errorAt(m.Tok(), m, "method %s returns %s, expected %s", m.Name, bodyType, ret)
	}
}

// shiftSelfParam drops a leading `self` parameter from the literal's params
// so later positional checks (param i against sig.Params[i]) line up; self
// itself is bound separately since it has no corresponding declared param
// on the trait signature's Params slice.
func shiftSelfParam(m *ast.FunctionLiteral) *ast.FunctionLiteral {
	clone := *m
	clone.Params = m.Params[1:]
	return &clone
}

// defineTypeParamScope records a declaration's type parameters so
// resolveTypeNode's IdentType branch recognizes them as type variables
// rather than undefined-type errors.
func defineTypeParamScope(params []string, env *Env) {
	for _, p := range params {
		env.Define("$typeparam$"+p, &types.TypeVariable{Name: p}, false)
	}
}

// defineFunctionTypeParamScope is defineTypeParamScope's counterpart for a
// function's own generic parameters, carrying each one's trait bounds onto
// the TypeVariable so resolveTypeNode (via lookupTypeParam) hands the
// bounds through to every parameter/return-type annotation that names it.
func defineFunctionTypeParamScope(params []ast.TypeParam, env *Env) {
	for _, p := range params {
		env.Define("$typeparam$"+p.Name, &types.TypeVariable{Name: p.Name, Bounds: p.Bounds}, false)
	}
}
