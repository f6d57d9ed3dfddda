package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/token"
)

type LetStatement struct {
	Token   token.Token
	Mutable bool
	Pattern Pattern // IdentPattern, TuplePattern, or ArrayPattern
	Type    TypeNode // nil when absent; only legal when Pattern is IdentPattern
	Value   Expression
}

func (s *LetStatement) Tok() token.Token { return s.Token }
func (s *LetStatement) String() string {
	mut := ""
	if s.Mutable {
		mut = "mut "
	}
	ty := ""
	if s.Type != nil {
		ty = ": " + s.Type.String()
	}
	return "let " + mut + s.Pattern.String() + ty + " = " + s.Value.String() + ";"
}
func (*LetStatement) statementNode() {}

type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for bare `return;`
}

// ActivePatternDecl is `let (|Case1|Case2|) name = fn;`, registering a
// function as a dispatchable match-pattern producer under the listed case
// names (spec.md §9's active-pattern extension).
type ActivePatternDecl struct {
	Token token.Token
	Cases []string
	Name  string
	Value Expression
}

func (s *ActivePatternDecl) Tok() token.Token { return s.Token }
func (s *ActivePatternDecl) String() string {
	return "let (|" + strings.Join(s.Cases, "|") + "|) " + s.Name + " = " + s.Value.String() + ";"
}
func (*ActivePatternDecl) statementNode() {}

func (s *ReturnStatement) Tok() token.Token { return s.Token }
func (s *ReturnStatement) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}
func (*ReturnStatement) statementNode() {}

type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (s *ExpressionStatement) Tok() token.Token { return s.Token }
func (s *ExpressionStatement) String() string   { return s.Expression.String() + ";" }
func (*ExpressionStatement) statementNode()     {}

type VariantDecl struct {
	Name   string
	Params []TypeNode
}

type TypeDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []string
	Variants   []VariantDecl
}

func (s *TypeDeclaration) Tok() token.Token { return s.Token }
func (s *TypeDeclaration) String() string {
	parts := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		ps := make([]string, len(v.Params))
		for j, p := range v.Params {
			ps[j] = p.String()
		}
		if len(ps) == 0 {
			parts[i] = v.Name
		} else {
			parts[i] = v.Name + "(" + strings.Join(ps, ", ") + ")"
		}
	}
	return "type " + s.Name + typeParamsString(s.TypeParams) + " = " + strings.Join(parts, " | ") + ";"
}
func (*TypeDeclaration) statementNode() {}

type FieldDecl struct {
	Name string
	Type TypeNode
}

type RecordDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []string
	Fields     []FieldDecl
}

func (s *RecordDeclaration) Tok() token.Token { return s.Token }
func (s *RecordDeclaration) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "record " + s.Name + typeParamsString(s.TypeParams) + "(" + strings.Join(parts, ", ") + ");"
}
func (*RecordDeclaration) statementNode() {}

type MethodSig struct {
	Name       string
	HasSelf    bool
	Params     []Param
	ReturnType TypeNode
}

type TraitDeclaration struct {
	Token      token.Token
	Name       string
	TypeParams []string
	Methods    []MethodSig
}

func (s *TraitDeclaration) Tok() token.Token { return s.Token }
func (s *TraitDeclaration) String() string {
	sigs := make([]string, len(s.Methods))
	for i, m := range s.Methods {
		params := m.Params
		if m.HasSelf {
			params = append([]Param{{Name: "self"}}, params...)
		}
		sigs[i] = "fn " + m.Name + "(" + paramsString(params) + ")"
		if m.ReturnType != nil {
			sigs[i] += " -> " + m.ReturnType.String()
		}
		sigs[i] += ";"
	}
	return "trait " + s.Name + typeParamsString(s.TypeParams) + " { " + strings.Join(sigs, " ") + " }"
}
func (*TraitDeclaration) statementNode() {}

type ImplDeclaration struct {
	Token      token.Token
	TypeParams []string
	TraitName  string
	TraitArgs  []TypeNode
	TargetType TypeNode
	Methods    []*FunctionLiteral
}

func (s *ImplDeclaration) Tok() token.Token { return s.Token }
func (s *ImplDeclaration) String() string {
	methods := make([]string, len(s.Methods))
	for i, m := range s.Methods {
		methods[i] = m.String()
	}
	return "impl " + typeParamsString(s.TypeParams) + s.TraitName + " for " + s.TargetType.String() + " { " + strings.Join(methods, " ") + " }"
}
func (*ImplDeclaration) statementNode() {}

// ModuleHeader is `module Name [exposing (a, b)];`, legal only as the
// first statement of a file.
type ModuleHeader struct {
	Token        token.Token
	Name         string
	HasExposing  bool
	Exposing     []string
}

func (s *ModuleHeader) Tok() token.Token { return s.Token }
func (s *ModuleHeader) String() string {
	if s.HasExposing {
		return "module " + s.Name + " exposing (" + strings.Join(s.Exposing, ", ") + ");"
	}
	return "module " + s.Name + ";"
}
func (*ModuleHeader) statementNode() {}

// UseStatement is `use path [as alias] [exposing (n1, n2)];`.
type UseStatement struct {
	Token       token.Token
	Path        []string
	HasAlias    bool
	Alias       string
	HasExposing bool
	Exposing    []string
}

func (s *UseStatement) Tok() token.Token { return s.Token }
func (s *UseStatement) String() string {
	str := "use " + strings.Join(s.Path, ".")
	if s.HasAlias {
		str += " as " + s.Alias
	}
	if s.HasExposing {
		str += " exposing (" + strings.Join(s.Exposing, ", ") + ")"
	}
	return str + ";"
}
func (*UseStatement) statementNode() {}

func typeParamsString(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}
