package evaluator

import "sync"

// Environment is the value-side counterpart of checker.Env: a scoped chain
// of binding frames, each frame guarded by its own RWMutex so an embedder running
// multiple evaluators concurrently (spec.md §5) can serialize access
// externally without the environment itself racing. Grounded on the
// teacher's internal/evaluator/environment.go.
type Environment struct {
	mu      sync.RWMutex
	outer   *Environment
	store   map[string]binding
	impls   map[string][]ImplBinding
	variant map[string]string // variant name -> parent sum name
	actPats map[string]Value  // case name -> active-pattern dispatcher function

	exposed    map[string]bool
	hasExposed bool
}

type binding struct {
	value   Value
	mutable bool
}

// ImplBinding is the evaluator's mirror of checker.Impl: an impl's methods,
// each Function carrying the environment in effect where `impl` appeared.
type ImplBinding struct {
	Methods map[string]*Function
}

func NewEnvironment(outer *Environment) *Environment {
	return &Environment{
		outer:   outer,
		store:   map[string]binding{},
		impls:   map[string][]ImplBinding{},
		variant: map[string]string{},
		actPats: map[string]Value{},
	}
}

func (e *Environment) DefineActivePatternCase(caseName string, dispatcher Value) {
	e.mu.Lock()
	e.actPats[caseName] = dispatcher
	e.mu.Unlock()
}

func (e *Environment) LookupActivePatternCase(caseName string) (Value, bool) {
	e.mu.RLock()
	v, ok := e.actPats[caseName]
	e.mu.RUnlock()
	if ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.LookupActivePatternCase(caseName)
	}
	return nil, false
}

func (e *Environment) Get(name string) (Value, bool) {
	e.mu.RLock()
	b, ok := e.store[name]
	e.mu.RUnlock()
	if ok {
		return b.value, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

func (e *Environment) Define(name string, v Value, mutable bool) {
	e.mu.Lock()
	e.store[name] = binding{value: v, mutable: mutable}
	e.mu.Unlock()
}

// Assign rebinds name at the frame that actually owns it, per spec.md
// §4.4's "walks up environment chain and rebinds at the defining frame".
// Assigning to an unbound or immutable name silently no-ops — the checker
// rejects both cases ahead of time, so this path is defensive only.
func (e *Environment) Assign(name string, v Value) {
	e.mu.Lock()
	b, ok := e.store[name]
	if ok {
		if b.mutable {
			e.store[name] = binding{value: v, mutable: true}
		}
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	if e.outer != nil {
		e.outer.Assign(name, v)
	}
}

func (e *Environment) DefineVariant(variantName, sumName string) {
	e.mu.Lock()
	e.variant[variantName] = sumName
	e.mu.Unlock()
}

func (e *Environment) LookupVariantSum(variantName string) (string, bool) {
	e.mu.RLock()
	s, ok := e.variant[variantName]
	e.mu.RUnlock()
	if ok {
		return s, true
	}
	if e.outer != nil {
		return e.outer.LookupVariantSum(variantName)
	}
	return "", false
}

func (e *Environment) AddImplementation(baseName string, impl ImplBinding) {
	e.mu.Lock()
	e.impls[baseName] = append(e.impls[baseName], impl)
	e.mu.Unlock()
}

// Implementations aggregates baseName's impls across this frame and every
// enclosing one, innermost first — trait-implementation and variant-to-sum
// maps are read-only during evaluation (populated entirely during loading).
func (e *Environment) Implementations(baseName string) []ImplBinding {
	e.mu.RLock()
	out := append([]ImplBinding{}, e.impls[baseName]...)
	e.mu.RUnlock()
	if e.outer != nil {
		out = append(out, e.outer.Implementations(baseName)...)
	}
	return out
}

// OwnImplementations returns a shallow copy of the impls registered
// directly in this frame (not inherited from outer), so the loader can
// merge one module's trait implementations into an importer's table on
// `use`, per spec.md §4.5's "trait implementations are always merged, not
// gated by exposure" rule.
func (e *Environment) OwnImplementations() map[string][]ImplBinding {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[string][]ImplBinding, len(e.impls))
	for k, v := range e.impls {
		out[k] = append([]ImplBinding{}, v...)
	}
	return out
}

// SetExposed restricts this environment's publicly reachable names for
// `use exposing(...)` resolution; an unset exposed set means everything is
// exposed, mirroring checker.Env.SetExposed/IsExposed.
func (e *Environment) SetExposed(names []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hasExposed = true
	e.exposed = make(map[string]bool, len(names))
	for _, n := range names {
		e.exposed[n] = true
	}
}

func (e *Environment) IsExposed(name string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasExposed {
		return true
	}
	return e.exposed[name]
}
