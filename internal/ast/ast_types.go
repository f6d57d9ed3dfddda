package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/token"
)

// IdentType is a bare type name: Int, String, MyRecord.
type IdentType struct {
	Token token.Token
	Name  string
}

func (t *IdentType) Tok() token.Token { return t.Token }
func (t *IdentType) String() string   { return t.Name }
func (*IdentType) typeNode()          {}

// PathType is a module-qualified type name: net.Response.
type PathType struct {
	Token token.Token
	Parts []string
}

func (t *PathType) Tok() token.Token { return t.Token }
func (t *PathType) String() string   { return strings.Join(t.Parts, ".") }
func (*PathType) typeNode()          {}

// GenericType is a type applied to arguments: Array<Int>, Result<T, E>.
type GenericType struct {
	Token token.Token
	Name  string
	Args  []TypeNode
}

func (t *GenericType) Tok() token.Token { return t.Token }
func (t *GenericType) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + "<" + strings.Join(parts, ", ") + ">"
}
func (*GenericType) typeNode() {}

// FuncType is fn(T, U) -> V.
type FuncType struct {
	Token  token.Token
	Params []TypeNode
	Return TypeNode
}

func (t *FuncType) Tok() token.Token { return t.Token }
func (t *FuncType) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	ret := "()"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
func (*FuncType) typeNode() {}

// TupleType is (T, U).
type TupleType struct {
	Token    token.Token
	Elements []TypeNode
}

func (t *TupleType) Tok() token.Token { return t.Token }
func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (*TupleType) typeNode() {}
