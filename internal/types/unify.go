package types

// Subst is a finite map from type-variable names to the types they have
// been bound to during unification.
type Subst map[string]Type

// Clone returns a shallow copy, used when a caller wants to try a
// unification speculatively without mutating the caller's substitution.
func (s Subst) Clone() Subst {
	out := make(Subst, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// resolve follows a TypeVariable's binding chain in sigma until it reaches
// a non-variable or an unbound variable, guarding against cycles.
func resolve(t Type, sigma Subst) Type {
	seen := map[string]bool{}
	for {
		tv, ok := t.(*TypeVariable)
		if !ok {
			return t
		}
		if seen[tv.Name] {
			return t
		}
		seen[tv.Name] = true
		next, ok := sigma[tv.Name]
		if !ok {
			return t
		}
		t = next
	}
}

// Unify attempts to make a and b structurally equal by extending sigma,
// per spec.md §4.3's unification law:
//   - Any or an unresolved variable on either side binds to the other side.
//   - Matching kinds unify component-wise (Array element; Hash key+value;
//     Tuple elements; Function params+return with identical arity;
//     Sum/Record/Trait by matching name and unified type-argument lists).
//   - Integer unifies with Double in one direction (Double accepts Integer).
//   - Otherwise kinds must already be equal.
func Unify(a, b Type, sigma Subst) (Subst, bool) {
	a = resolve(a, sigma)
	b = resolve(b, sigma)

	if _, ok := a.(Any); ok {
		return sigma, true
	}
	if _, ok := b.(Any); ok {
		return sigma, true
	}
	if av, ok := a.(*TypeVariable); ok {
		return bind(av, b, sigma)
	}
	if bv, ok := b.(*TypeVariable); ok {
		return bind(bv, a, sigma)
	}

	switch x := a.(type) {
	case Integer:
		if _, ok := b.(Integer); ok {
			return sigma, true
		}
		return sigma, false
	case Double:
		switch b.(type) {
		case Double, Integer:
			return sigma, true
		}
		return sigma, false
	case Boolean:
		_, ok := b.(Boolean)
		return sigma, ok
	case String:
		_, ok := b.(String)
		return sigma, ok
	case Null:
		_, ok := b.(Null)
		return sigma, ok
	case *Array:
		y, ok := b.(*Array)
		if !ok {
			return sigma, false
		}
		return Unify(x.Elem, y.Elem, sigma)
	case *Hash:
		y, ok := b.(*Hash)
		if !ok {
			return sigma, false
		}
		sigma, ok = Unify(x.Key, y.Key, sigma)
		if !ok {
			return sigma, false
		}
		return Unify(x.Value, y.Value, sigma)
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Elements) != len(y.Elements) {
			return sigma, false
		}
		for i := range x.Elements {
			sigma, ok = Unify(x.Elements[i], y.Elements[i], sigma)
			if !ok {
				return sigma, false
			}
		}
		return sigma, true
	case *Function:
		y, ok := b.(*Function)
		if !ok || len(x.Params) != len(y.Params) {
			return sigma, false
		}
		for i := range x.Params {
			sigma, ok = Unify(x.Params[i], y.Params[i], sigma)
			if !ok {
				return sigma, false
			}
		}
		return Unify(x.Return, y.Return, sigma)
	case *Record:
		y, ok := b.(*Record)
		if !ok || x.Name != y.Name || len(x.TypeArgs) != len(y.TypeArgs) {
			return sigma, false
		}
		return unifyArgs(x.TypeArgs, y.TypeArgs, sigma)
	case *Sum:
		y, ok := b.(*Sum)
		if !ok || x.Name != y.Name || len(x.TypeArgs) != len(y.TypeArgs) {
			return sigma, false
		}
		return unifyArgs(x.TypeArgs, y.TypeArgs, sigma)
	case *Variant:
		y, ok := b.(*Variant)
		return sigma, ok && x.Name == y.Name
	case *Trait:
		y, ok := b.(*Trait)
		if !ok || x.Name != y.Name || len(x.TypeArgs) != len(y.TypeArgs) {
			return sigma, false
		}
		return unifyArgs(x.TypeArgs, y.TypeArgs, sigma)
	case *Module:
		y, ok := b.(*Module)
		return sigma, ok && x.Name == y.Name
	case *Error:
		return sigma, true // an Error has already been reported; don't cascade
	default:
		return sigma, false
	}
}

func unifyArgs(a, b []Type, sigma Subst) (Subst, bool) {
	for i := range a {
		var ok bool
		sigma, ok = Unify(a[i], b[i], sigma)
		if !ok {
			return sigma, false
		}
	}
	return sigma, true
}

func bind(v *TypeVariable, t Type, sigma Subst) (Subst, bool) {
	if other, ok := t.(*TypeVariable); ok && other.Name == v.Name {
		return sigma, true
	}
	sigma[v.Name] = t
	return sigma, true
}

// Substitute replaces every free TypeVariable in t with its image under
// sigma, following chains. Named generics (Record/Sum/Trait/Function) are
// substituted shallowly over their TypeArgs/Params/Return only — their
// Variants/FieldTypes templates are shared, declaration-time structure, so
// this never needs to walk into a Sum's own Variants and cannot loop on
// self-referential sum types (e.g. `Cons(T, List<T>) | Nil`).
func Substitute(t Type, sigma Subst) Type {
	if len(sigma) == 0 {
		return t
	}
	switch x := t.(type) {
	case *TypeVariable:
		resolved := resolve(x, sigma)
		if resolved == Type(x) {
			return x
		}
		return Substitute(resolved, sigma)
	case *Array:
		return &Array{Elem: Substitute(x.Elem, sigma)}
	case *Hash:
		return &Hash{Key: Substitute(x.Key, sigma), Value: Substitute(x.Value, sigma)}
	case *Tuple:
		elems := make([]Type, len(x.Elements))
		for i, e := range x.Elements {
			elems[i] = Substitute(e, sigma)
		}
		return &Tuple{Elements: elems}
	case *Function:
		params := make([]Type, len(x.Params))
		for i, p := range x.Params {
			params[i] = Substitute(p, sigma)
		}
		var ret Type
		if x.Return != nil {
			ret = Substitute(x.Return, sigma)
		}
		return &Function{Params: params, Return: ret, TypeParams: x.TypeParams}
	case *Record:
		if len(x.TypeArgs) == 0 {
			return x
		}
		args := make([]Type, len(x.TypeArgs))
		for i, a := range x.TypeArgs {
			args[i] = Substitute(a, sigma)
		}
		return &Record{Name: x.Name, FieldNames: x.FieldNames, FieldTypes: x.FieldTypes, TypeParams: x.TypeParams, TypeArgs: args}
	case *Sum:
		if len(x.TypeArgs) == 0 {
			return x
		}
		args := make([]Type, len(x.TypeArgs))
		for i, a := range x.TypeArgs {
			args[i] = Substitute(a, sigma)
		}
		return &Sum{Name: x.Name, Variants: x.Variants, Order: x.Order, TypeParams: x.TypeParams, TypeArgs: args}
	case *Trait:
		if len(x.TypeArgs) == 0 {
			return x
		}
		args := make([]Type, len(x.TypeArgs))
		for i, a := range x.TypeArgs {
			args[i] = Substitute(a, sigma)
		}
		return &Trait{Name: x.Name, Methods: x.Methods, Order: x.Order, TypeParams: x.TypeParams, TypeArgs: args}
	default:
		return t
	}
}

// SubstituteVariant substitutes a variant's payload parameter types using
// its parent Sum's already-substituted type arguments, mapping the Sum's
// declared TypeParams positionally onto TypeArgs.
func SubstituteVariant(v *Variant, parentArgs []Type) []Type {
	if v.Parent == nil || len(v.Parent.TypeParams) == 0 || len(parentArgs) == 0 {
		return v.Params
	}
	sigma := Subst{}
	for i, name := range v.Parent.TypeParams {
		if i < len(parentArgs) {
			sigma[name] = parentArgs[i]
		}
	}
	out := make([]Type, len(v.Params))
	for i, p := range v.Params {
		out[i] = Substitute(p, sigma)
	}
	return out
}
