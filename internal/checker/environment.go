// Package checker implements Lumen's constraint/substitution-based type
// checker: a scoped type environment with named bindings, data
// constructors, trait implementations, and type-variable substitutions,
// walking the AST to produce semantic types. Grounded on the teacher's
// internal/symbols (scoped SymbolTable, implementations table keyed by base
// type name) and internal/typesystem (unification), simplified from the
// teacher's HM generalization + dictionary-passing down to spec.md's flat
// nominal-impl-table discipline.
package checker

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/types"
)

// Binding pairs a type with its mutability, per spec.md §3's environment
// model ("each binding carries {value-or-type, is_mutable}").
type Binding struct {
	Type    types.Type
	Mutable bool
}

// Impl is one registered trait implementation: the AST node (for method
// bodies and location) and the environment in effect at the `impl` site
// (for resolving names the methods close over).
type Impl struct {
	Node   *ast.ImplDeclaration
	DefEnv *Env
}

// Env is a type environment: a scoped chain of maps to its enclosing
// scope, plus the constructor table, implementation table, and exposed-name
// set spec.md §3 describes.
type Env struct {
	outer *Env

	store        map[string]Binding
	constructors map[string]types.Type
	impls        map[string][]Impl
	typeDecls    map[string]types.Type
	activePats   map[string]*ActivePattern

	exposed    map[string]bool
	hasExposed bool

	// currentReturnType is the declared return type of the function whose
	// body is currently being checked; used by the `?` operator. Unset
	// (nil) outside any function body.
	currentReturnType types.Type
}

func NewEnv(outer *Env) *Env {
	return &Env{
		outer:        outer,
		store:        map[string]Binding{},
		constructors: map[string]types.Type{},
		impls:        map[string][]Impl{},
		typeDecls:    map[string]types.Type{},
		activePats:   map[string]*ActivePattern{},
	}
}

// ActivePattern is a registered `let (|Case1|Case2|) name = fn` dispatcher:
// fn consumes a scrutinee and returns a value of a sum type whose variant
// names are the case names; the variant tag selects which case matched.
// Grounded on the teacher's
// extensible-dispatch instance registry (symbol_table_dispatch.go).
type ActivePattern struct {
	Cases    []string
	FuncType *types.Function
}

// LookupActivePattern resolves a case name to its registering dispatcher,
// walking outward through the scope chain.
func (e *Env) LookupActivePattern(caseName string) (*ActivePattern, bool) {
	for _, ap := range e.activePats {
		for _, c := range ap.Cases {
			if c == caseName {
				return ap, true
			}
		}
	}
	if e.outer != nil {
		return e.outer.LookupActivePattern(caseName)
	}
	return nil, false
}

func (e *Env) DefineActivePattern(name string, ap *ActivePattern) {
	e.activePats[name] = ap
}

// LookupType resolves a declared type name (record, sum, or trait) to its
// un-instantiated template, walking outward through the scope chain.
func (e *Env) LookupType(name string) (types.Type, bool) {
	if t, ok := e.typeDecls[name]; ok {
		return t, true
	}
	if e.outer != nil {
		return e.outer.LookupType(name)
	}
	return nil, false
}

func (e *Env) DefineType(name string, t types.Type) {
	e.typeDecls[name] = t
}

// Lookup implements types.Environment and spec.md's ordinary variable
// resolution: walk the scope chain outward.
func (e *Env) Lookup(name string) (types.Type, bool) {
	b, ok := e.LookupBinding(name)
	if !ok {
		return nil, false
	}
	return b.Type, true
}

func (e *Env) LookupBinding(name string) (Binding, bool) {
	if b, ok := e.store[name]; ok {
		return b, true
	}
	if e.outer != nil {
		return e.outer.LookupBinding(name)
	}
	return Binding{}, false
}

// DefiningEnv returns the Env frame in the chain that actually owns name,
// or nil if unbound.
func (e *Env) DefiningEnv(name string) *Env {
	if _, ok := e.store[name]; ok {
		return e
	}
	if e.outer != nil {
		return e.outer.DefiningEnv(name)
	}
	return nil
}

func (e *Env) Define(name string, t types.Type, mutable bool) {
	e.store[name] = Binding{Type: t, Mutable: mutable}
}

// LookupConstructor resolves a data-constructor name; constructors shadow
// ordinary variables of the same name per spec.md §4.3.
func (e *Env) LookupConstructor(name string) (types.Type, bool) {
	if t, ok := e.constructors[name]; ok {
		return t, true
	}
	if e.outer != nil {
		return e.outer.LookupConstructor(name)
	}
	return nil, false
}

func (e *Env) DefineConstructor(name string, t types.Type) {
	e.constructors[name] = t
}

// AddImplementation registers an impl block under the target's base type
// name, in the environment where the `impl` statement appears.
func (e *Env) AddImplementation(baseName string, node *ast.ImplDeclaration, defEnv *Env) {
	e.impls[baseName] = append(e.impls[baseName], Impl{Node: node, DefEnv: defEnv})
}

// Implementations collects every impl registered for baseName anywhere in
// the scope chain — a module sees both its own impls and the prelude's.
func (e *Env) Implementations(baseName string) []Impl {
	var out []Impl
	for env := e; env != nil; env = env.outer {
		out = append(out, env.impls[baseName]...)
	}
	return out
}

// OwnImplementations returns the impls registered directly in this frame
// (not inherited from outer) — used by the loader to merge one module's
// trait implementations into an importer's table on `use`, per spec.md
// §4.5's "trait implementations are always merged" rule.
func (e *Env) OwnImplementations() map[string][]Impl {
	out := make(map[string][]Impl, len(e.impls))
	for k, v := range e.impls {
		out[k] = append([]Impl{}, v...)
	}
	return out
}

// SetExposed restricts this environment's publicly reachable names; an
// unset exposed set (the zero value) means "everything is exposed", per
// spec.md §4.5.
func (e *Env) SetExposed(names []string) {
	e.hasExposed = true
	e.exposed = make(map[string]bool, len(names))
	for _, n := range names {
		e.exposed[n] = true
	}
}

func (e *Env) IsExposed(name string) bool {
	if !e.hasExposed {
		return true
	}
	return e.exposed[name]
}

func (e *Env) WithReturnType(t types.Type) *Env {
	child := NewEnv(e)
	child.currentReturnType = t
	return child
}

// CurrentReturnType walks outward to find the nearest enclosing function's
// declared return type, used by the `?` operator.
func (e *Env) CurrentReturnType() (types.Type, bool) {
	for env := e; env != nil; env = env.outer {
		if env.currentReturnType != nil {
			return env.currentReturnType, true
		}
	}
	return nil, false
}
