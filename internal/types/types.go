// Package types defines Lumen's closed semantic type variant set and the
// unification/substitution machinery the checker drives over it. Grounded
// on the teacher's internal/typesystem package (a Type interface with
// String/Apply/FreeTypeVariables, a Subst map, structural unify), simplified
// from the teacher's Hindley-Milner generalization down to spec.md's flatter
// "unify against declared or expected type" discipline — Lumen has no
// let-generalization, only explicit type parameters on declarations.
package types

import (
	"fmt"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
)

// Type is implemented by every member of the closed semantic type set.
type Type interface {
	String() string
	typeNode()
}

type Integer struct{}
type Double struct{}
type Boolean struct{}
type String struct{}
type Null struct{}
type Any struct{}

func (Integer) String() string { return "Integer" }
func (Double) String() string  { return "Double" }
func (Boolean) String() string { return "Boolean" }
func (String) String() string  { return "String" }
func (Null) String() string    { return "Null" }
func (Any) String() string     { return "Any" }

func (Integer) typeNode() {}
func (Double) typeNode()  {}
func (Boolean) typeNode() {}
func (String) typeNode()  {}
func (Null) typeNode()    {}
func (Any) typeNode()     {}

type Array struct{ Elem Type }

func (a *Array) String() string { return "Array<" + a.Elem.String() + ">" }
func (*Array) typeNode()        {}

type Hash struct{ Key, Value Type }

func (h *Hash) String() string { return "Hash<" + h.Key.String() + ", " + h.Value.String() + ">" }
func (*Hash) typeNode()        {}

type Tuple struct{ Elements []Type }

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (*Tuple) typeNode() {}

// Function carries its own bound type parameters (for generic
// declarations); instantiation substitutes these away at call sites.
// TypeParamBounds, when non-nil, maps a TypeParams entry to the trait names
// it must satisfy once resolved — checked at call sites against the
// implementation table (spec.md §4.3).
type Function struct {
	Params          []Type
	Return          Type
	TypeParams      []string
	TypeParamBounds map[string][]string
}

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "Null"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
func (*Function) typeNode() {}

// Record is a named product type. FieldNames preserves declaration order;
// FieldTypes is keyed by field name.
type Record struct {
	Name       string
	FieldNames []string
	FieldTypes map[string]Type
	TypeParams []string
	TypeArgs   []Type // set once instantiated; len(TypeArgs) == len(TypeParams)
}

func (r *Record) String() string { return r.Name + typeArgsString(r.TypeArgs) }
func (*Record) typeNode()        {}

// Sum is a named tagged union. Variant co-owns no storage outside of this
// Sum's Variants map; each Variant.Parent points back here, forming the
// one deliberate cycle in the type model (see DESIGN.md).
type Sum struct {
	Name       string
	Variants   map[string]*Variant
	Order      []string // variant names in declaration order, for exhaustiveness messages
	TypeParams []string
	TypeArgs   []Type
}

func (s *Sum) String() string { return s.Name + typeArgsString(s.TypeArgs) }
func (*Sum) typeNode()        {}

type Variant struct {
	Name   string
	Params []Type
	Parent *Sum
}

func (v *Variant) String() string {
	parts := make([]string, len(v.Params))
	for i, p := range v.Params {
		parts[i] = p.String()
	}
	if len(parts) == 0 {
		return v.Name
	}
	return v.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (*Variant) typeNode() {}

type Trait struct {
	Name       string
	Methods    map[string]*Function
	Order      []string
	TypeParams []string
	TypeArgs   []Type
}

func (t *Trait) String() string { return t.Name + typeArgsString(t.TypeArgs) }
func (*Trait) typeNode()        {}

// TypeVariable is an unresolved type, either a declared generic parameter
// or one freshly minted during inference. Bounds names the traits it must
// satisfy once resolved.
type TypeVariable struct {
	Name   string
	Bounds []string
}

func (t *TypeVariable) String() string { return t.Name }
func (*TypeVariable) typeNode()        {}

type Module struct {
	Name string
	Env  Environment
}

func (m *Module) String() string { return "module " + m.Name }
func (*Module) typeNode()        {}

// Error is both a semantic-checking failure and a first-class Type: once
// produced it short-circuits further unification (Unify treats any Error
// operand as already-resolved, propagating it rather than failing twice).
type Error struct {
	Message string
	Node    ast.Node
}

func (e *Error) String() string { return fmt.Sprintf("<error: %s>", e.Message) }
func (*Error) typeNode()        {}

// Environment is implemented by *checker.Env; declared here (rather than
// imported) to break the import cycle between types and checker, since
// Module must embed an environment and checker must import types.
type Environment interface {
	Lookup(name string) (Type, bool)
}

func typeArgsString(args []Type) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// Equal reports structural equality, per spec.md's invariant (d): arrays,
// hashes, tuples, and functions compare component-wise; named types compare
// by name and type-argument list.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case Integer:
		_, ok := b.(Integer)
		return ok
	case Double:
		_, ok := b.(Double)
		return ok
	case Boolean:
		_, ok := b.(Boolean)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Null:
		_, ok := b.(Null)
		return ok
	case Any:
		_, ok := b.(Any)
		return ok
	case *Array:
		y, ok := b.(*Array)
		return ok && Equal(x.Elem, y.Elem)
	case *Hash:
		y, ok := b.(*Hash)
		return ok && Equal(x.Key, y.Key) && Equal(x.Value, y.Value)
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equal(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		y, ok := b.(*Function)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !Equal(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return Equal(x.Return, y.Return)
	case *Record:
		y, ok := b.(*Record)
		return ok && x.Name == y.Name && equalArgs(x.TypeArgs, y.TypeArgs)
	case *Sum:
		y, ok := b.(*Sum)
		return ok && x.Name == y.Name && equalArgs(x.TypeArgs, y.TypeArgs)
	case *Variant:
		y, ok := b.(*Variant)
		return ok && x.Name == y.Name
	case *Trait:
		y, ok := b.(*Trait)
		return ok && x.Name == y.Name && equalArgs(x.TypeArgs, y.TypeArgs)
	case *TypeVariable:
		y, ok := b.(*TypeVariable)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

func equalArgs(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether t is Integer or Double.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case Integer, Double:
		return true
	default:
		return false
	}
}

// BaseTypeName returns the name used to key the implementation table for
// t: a Record or Sum's declared name, the literal "Hash" for hash types,
// or the stringified form for anything else (spec.md §4.3's impl-target
// resolution rule).
func BaseTypeName(t Type) string {
	switch x := t.(type) {
	case *Record:
		return x.Name
	case *Sum:
		return x.Name
	case *Hash:
		return "Hash"
	case *Array:
		return "Array"
	case Integer:
		return "Integer"
	case Double:
		return "Double"
	case Boolean:
		return "Boolean"
	case String:
		return "String"
	default:
		return t.String()
	}
}
