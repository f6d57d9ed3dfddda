// Package evaluator tree-walks a checked AST over a value environment,
// producing Lumen's closed runtime value set. Grounded on the teacher's
// internal/evaluator package (an Object interface, Environment with
// sync.RWMutex-guarded store chained to outer, builtins receiving the
// evaluator plus an argument vector), generalized to spec.md §3/§4.4's
// simpler value model (no bytecode, no dictionary-passing).
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
)

// Value is implemented by every member of the closed runtime value set.
type Value interface {
	Kind() string
	Inspect() string
}

type Integer struct{ Value int64 }
type Double struct{ Value float64 }
type Boolean struct{ Value bool }
type String struct{ Value string }
type Null struct{}

func (Integer) Kind() string { return "Integer" }
func (Double) Kind() string  { return "Double" }
func (Boolean) Kind() string { return "Boolean" }
func (String) Kind() string  { return "String" }
func (Null) Kind() string    { return "Null" }

func (i Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }
func (d Double) Inspect() string  { return strconv.FormatFloat(d.Value, 'g', -1, 64) }
func (b Boolean) Inspect() string { return strconv.FormatBool(b.Value) }
func (s String) Inspect() string  { return s.Value }
func (Null) Inspect() string      { return "null" }

// Array values are immutable at the language level; array-producing
// builtins always construct a fresh backing slice (spec.md §5).
type Array struct{ Elements []Value }

func (*Array) Kind() string { return "Array" }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type Tuple struct{ Elements []Value }

func (*Tuple) Kind() string { return "Tuple" }
func (t *Tuple) Inspect() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Inspect()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// HashPair preserves the original key Value alongside the stored value,
// since the map itself is keyed by the hashed string form.
type HashPair struct {
	Key   Value
	Value Value
}

// Hash is mutable through index/field assignment and reachable from
// multiple references, so aliasing is observable (spec.md §5). Keys are
// hashed as "KindTag_Value" per spec.md §4.4.
type Hash struct {
	Pairs map[string]HashPair
}

func NewHash() *Hash { return &Hash{Pairs: map[string]HashPair{}} }

func (*Hash) Kind() string { return "Hash" }
func (h *Hash) Inspect() string {
	parts := make([]string, 0, len(h.Pairs))
	for _, p := range h.Pairs {
		parts = append(parts, p.Key.Inspect()+": "+p.Value.Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// HashKey computes the "KindTag_Value" key spec.md §4.4 prescribes; ok is
// false for key kinds that may not be hashed (a runtime error at the call
// site).
func HashKey(v Value) (string, bool) {
	switch x := v.(type) {
	case Integer:
		return "Integer_" + strconv.FormatInt(x.Value, 10), true
	case Double:
		return "Double_" + strconv.FormatFloat(x.Value, 'g', -1, 64), true
	case String:
		return "String_" + x.Value, true
	case Boolean:
		return "Boolean_" + strconv.FormatBool(x.Value), true
	default:
		return "", false
	}
}

// Record is mutable through field assignment (spec.md §5) and reachable
// from multiple references.
type Record struct {
	Name       string
	FieldOrder []string
	Fields     map[string]Value
}

func (*Record) Kind() string { return "Record" }
func (r *Record) Inspect() string {
	parts := make([]string, len(r.FieldOrder))
	for i, name := range r.FieldOrder {
		parts[i] = name + ": " + r.Fields[name].Inspect()
	}
	return r.Name + "(" + strings.Join(parts, ", ") + ")"
}

// SumInstance is one constructed value of a sum type: a variant tag plus
// its ordered payload.
type SumInstance struct {
	SumName     string
	VariantName string
	Payload     []Value
}

func (*SumInstance) Kind() string { return "Sum" }
func (s *SumInstance) Inspect() string {
	if len(s.Payload) == 0 {
		return s.VariantName
	}
	parts := make([]string, len(s.Payload))
	for i, p := range s.Payload {
		parts[i] = p.Inspect()
	}
	return s.VariantName + "(" + strings.Join(parts, ", ") + ")"
}

// Function is a closure: its declared parameters, body, and the
// environment it closes over.
type Function struct {
	Name   string
	Params []ast.Param
	Body   ast.Expression
	Env    *Environment

	IsRecordConstructor bool
	RecordName          string
	RecordFields        []string
}

func (*Function) Kind() string    { return "Function" }
func (f *Function) Inspect() string {
	if f.Name != "" {
		return "fn " + f.Name + "(...)"
	}
	return "fn(...)"
}

// BuiltinFn receives the running evaluator (for calling back into
// user-defined functions, e.g. inside map/filter/reduce) and the already
// evaluated argument vector.
type BuiltinFn func(ev *Evaluator, args []Value) Value

type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (*Builtin) Kind() string      { return "Builtin" }
func (b *Builtin) Inspect() string { return "builtin fn " + b.Name }

// Module is the runtime value of an imported module: its name plus the
// environment holding its evaluated bindings.
type Module struct {
	Name string
	Env  *Environment
}

func (*Module) Kind() string      { return "Module" }
func (m *Module) Inspect() string { return "module " + m.Name }

// ReturnValue wraps a value produced by an explicit `return` or by a
// short-circuiting `?`, unwound by the nearest enclosing function call
// (teacher's evaluator convention).
type ReturnValue struct{ Value Value }

func (*ReturnValue) Kind() string      { return "Return" }
func (r *ReturnValue) Inspect() string { return r.Value.Inspect() }

// RuntimeError is a first-class value that short-circuits further
// evaluation; user code has no way to catch it (spec.md §4.4/§8).
type RuntimeError struct {
	Message string
}

func (*RuntimeError) Kind() string      { return "Error" }
func (e *RuntimeError) Inspect() string { return fmt.Sprintf("runtime error: %s", e.Message) }

func NewError(format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}

func IsError(v Value) bool {
	_, ok := v.(*RuntimeError)
	return ok
}

func Truthy(v Value) bool {
	switch x := v.(type) {
	case Boolean:
		return x.Value
	case Null:
		return false
	default:
		return true
	}
}
