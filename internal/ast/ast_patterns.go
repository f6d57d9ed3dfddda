package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/token"
)

// IdentPattern binds the scrutinee (or a destructured element) to a name.
type IdentPattern struct {
	Token token.Token
	Name  string
}

func (p *IdentPattern) Tok() token.Token { return p.Token }
func (p *IdentPattern) String() string   { return p.Name }
func (*IdentPattern) patternNode()       {}

// WildcardPattern is `_`, matching anything and binding nothing.
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) Tok() token.Token { return p.Token }
func (p *WildcardPattern) String() string   { return "_" }
func (*WildcardPattern) patternNode()       {}

// VariantPattern matches a sum-type variant constructor applied to
// sub-patterns, or a registered active-pattern case name.
type VariantPattern struct {
	Token token.Token
	Name  string
	Args  []Pattern
}

func (p *VariantPattern) Tok() token.Token { return p.Token }
func (p *VariantPattern) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}
func (*VariantPattern) patternNode() {}

// ArrayPattern matches an array by position with an optional rest binding.
type ArrayPattern struct {
	Token    token.Token
	Elements []Pattern
	Rest     *string // nil when there is no ...rest
}

func (p *ArrayPattern) Tok() token.Token { return p.Token }
func (p *ArrayPattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	if p.Rest != nil {
		parts = append(parts, "..."+*p.Rest)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (*ArrayPattern) patternNode() {}

// TuplePattern matches a tuple by position.
type TuplePattern struct {
	Token    token.Token
	Elements []Pattern
}

func (p *TuplePattern) Tok() token.Token { return p.Token }
func (p *TuplePattern) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (*TuplePattern) patternNode() {}

// LiteralPattern matches an exact literal value.
type LiteralPattern struct {
	Token token.Token
	Value Expression // one of the literal Expression kinds
}

func (p *LiteralPattern) Tok() token.Token { return p.Token }
func (p *LiteralPattern) String() string   { return p.Value.String() }
func (*LiteralPattern) patternNode()       {}
