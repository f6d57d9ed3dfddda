package ast

import (
	"strings"

	"github.com/lumen-lang/lumen/internal/token"
)

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (e *IntegerLiteral) Tok() token.Token { return e.Token }
func (e *IntegerLiteral) String() string   { return e.Token.Literal }
func (*IntegerLiteral) expressionNode()    {}

type DoubleLiteral struct {
	Token token.Token
	Value float64
}

func (e *DoubleLiteral) Tok() token.Token { return e.Token }
func (e *DoubleLiteral) String() string   { return e.Token.Literal }
func (*DoubleLiteral) expressionNode()    {}

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (e *BooleanLiteral) Tok() token.Token { return e.Token }
func (e *BooleanLiteral) String() string   { return e.Token.Literal }
func (*BooleanLiteral) expressionNode()    {}

type StringLiteral struct {
	Token  token.Token
	Value  string
	Triple bool // triple-quoted raw string
}

func (e *StringLiteral) Tok() token.Token { return e.Token }
func (e *StringLiteral) String() string   { return `"` + e.Value + `"` }
func (*StringLiteral) expressionNode()    {}

// InterpSegment is one piece of an interpolated string: either a literal
// run of text, or an embedded expression.
type InterpSegment struct {
	Text string
	Expr Expression // nil when this segment is a literal text run
}

type InterpStringLiteral struct {
	Token    token.Token
	Segments []InterpSegment
}

func (e *InterpStringLiteral) Tok() token.Token { return e.Token }
func (e *InterpStringLiteral) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, s := range e.Segments {
		if s.Expr != nil {
			b.WriteString("${" + s.Expr.String() + "}")
		} else {
			b.WriteString(s.Text)
		}
	}
	b.WriteByte('"')
	return b.String()
}
func (*InterpStringLiteral) expressionNode() {}

type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *ArrayLiteral) Tok() token.Token { return e.Token }
func (e *ArrayLiteral) String() string   { return "[" + joinExprs(e.Elements) + "]" }
func (*ArrayLiteral) expressionNode()    {}

type HashLiteral struct {
	Token  token.Token
	Keys   []Expression
	Values []Expression
}

func (e *HashLiteral) Tok() token.Token { return e.Token }
func (e *HashLiteral) String() string {
	parts := make([]string, len(e.Keys))
	for i := range e.Keys {
		parts[i] = e.Keys[i].String() + ": " + e.Values[i].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (*HashLiteral) expressionNode() {}

type TupleLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (e *TupleLiteral) Tok() token.Token { return e.Token }
func (e *TupleLiteral) String() string   { return "(" + joinExprs(e.Elements) + ")" }
func (*TupleLiteral) expressionNode()    {}

type Identifier struct {
	Token token.Token
	Name  string
}

func (e *Identifier) Tok() token.Token { return e.Token }
func (e *Identifier) String() string   { return e.Name }
func (*Identifier) expressionNode()    {}

type PrefixExpr struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (e *PrefixExpr) Tok() token.Token { return e.Token }
func (e *PrefixExpr) String() string   { return "(" + e.Operator + e.Right.String() + ")" }
func (*PrefixExpr) expressionNode()    {}

type InfixExpr struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (e *InfixExpr) Tok() token.Token { return e.Token }
func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}
func (*InfixExpr) expressionNode() {}

// AssignExpr covers both `=` and `+=`; the target must be a mutable
// identifier or a hash-index expression (checked, not parsed).
type AssignExpr struct {
	Token    token.Token
	Operator string // "=" or "+="
	Target   Expression
	Value    Expression
}

func (e *AssignExpr) Tok() token.Token { return e.Token }
func (e *AssignExpr) String() string {
	return "(" + e.Target.String() + " " + e.Operator + " " + e.Value.String() + ")"
}
func (*AssignExpr) expressionNode() {}

type CallExpr struct {
	Token    token.Token
	Function Expression
	Args     []Expression
}

func (e *CallExpr) Tok() token.Token { return e.Token }
func (e *CallExpr) String() string   { return e.Function.String() + "(" + joinExprs(e.Args) + ")" }
func (*CallExpr) expressionNode()    {}

type IndexExpr struct {
	Token token.Token
	Left  Expression
	Index Expression
}

func (e *IndexExpr) Tok() token.Token { return e.Token }
func (e *IndexExpr) String() string   { return "(" + e.Left.String() + "[" + e.Index.String() + "])" }
func (*IndexExpr) expressionNode()    {}

// MemberExpr is `.`-access: record field, hash field, method call target,
// or (when Left resolves to a Module) qualified module access.
type MemberExpr struct {
	Token    token.Token
	Left     Expression
	Property string
}

func (e *MemberExpr) Tok() token.Token { return e.Token }
func (e *MemberExpr) String() string   { return e.Left.String() + "." + e.Property }
func (*MemberExpr) expressionNode()    {}

type IfExpr struct {
	Token       token.Token
	Condition   Expression
	Consequence Expression
	Alternative Expression // nil when there is no else branch
}

func (e *IfExpr) Tok() token.Token { return e.Token }
func (e *IfExpr) String() string {
	s := "if " + e.Condition.String() + " " + blockString(e.Consequence)
	if e.Alternative != nil {
		s += " else " + blockString(e.Alternative)
	}
	return s
}
func (*IfExpr) expressionNode() {}

// blockString prints e as a braced body: a BlockExpr already carries its
// own braces, anything else is wrapped in one pair.
func blockString(e Expression) string {
	if b, ok := e.(*BlockExpr); ok {
		return b.String()
	}
	return "{ " + e.String() + " }"
}

type MatchArm struct {
	Patterns []Pattern // one per scrutinee, aligned by position
	Body     Expression
}

type MatchExpr struct {
	Token      token.Token
	Scrutinees []Expression
	Arms       []MatchArm
}

func (e *MatchExpr) Tok() token.Token { return e.Token }
func (e *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString("match (" + joinExprs(e.Scrutinees) + ") { ")
	for i, arm := range e.Arms {
		if i > 0 {
			b.WriteString(", ")
		}
		parts := make([]string, len(arm.Patterns))
		for j, p := range arm.Patterns {
			parts[j] = p.String()
		}
		b.WriteString(strings.Join(parts, ", ") + " => " + arm.Body.String())
	}
	b.WriteString(" }")
	return b.String()
}
func (*MatchExpr) expressionNode() {}

// WhenArm is `| cond1, cond2 => body`; with a subject, each condition is
// either an equality pattern or a boolean predicate expression, without a
// subject every condition must be boolean.
type WhenArm struct {
	Conditions []Expression
	Body       Expression
}

type WhenExpr struct {
	Token   token.Token
	Subject Expression // nil when there is no subject
	Arms    []WhenArm
	Else    Expression
}

func (e *WhenExpr) Tok() token.Token { return e.Token }
func (e *WhenExpr) String() string {
	var b strings.Builder
	b.WriteString("when ")
	if e.Subject != nil {
		b.WriteString("(" + e.Subject.String() + ") ")
	}
	b.WriteString("{ ")
	for _, arm := range e.Arms {
		b.WriteString("| " + joinExprs(arm.Conditions) + " => " + arm.Body.String() + ", ")
	}
	b.WriteString("else => " + e.Else.String() + " }")
	return b.String()
}
func (*WhenExpr) expressionNode() {}

// TryExpr is the postfix `?` operator.
type TryExpr struct {
	Token   token.Token
	Operand Expression
}

func (e *TryExpr) Tok() token.Token { return e.Token }
func (e *TryExpr) String() string   { return "(" + e.Operand.String() + "?)" }
func (*TryExpr) expressionNode()    {}

type Param struct {
	Name string
	Type TypeNode // nil when unannotated
}

// TypeParam is one function-level generic parameter, optionally bounded by
// one or more trait names (`T: Show`, `T: Show + Eq`).
type TypeParam struct {
	Name   string
	Bounds []string
}

func (tp TypeParam) String() string {
	if len(tp.Bounds) == 0 {
		return tp.Name
	}
	return tp.Name + ": " + strings.Join(tp.Bounds, " + ")
}

func functionTypeParamsString(params []TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// FunctionLiteral covers `fn name(...) { ... }`, `fn(...) : expr`,
// `fn(...) => expr`, and bare lambdas `(a, b) => expr`.
type FunctionLiteral struct {
	Token      token.Token
	Name       string // "" for anonymous
	TypeParams []TypeParam
	Params     []Param
	ReturnType TypeNode // nil when not declared
	Body       Expression

	// IsRecordConstructor and RecordName are not set by the parser, the
	// checker or the evaluator; record constructors are evaluator.Function
	// values that carry their own IsRecordConstructor flag.
	IsRecordConstructor bool
	RecordName          string
}

func (e *FunctionLiteral) Tok() token.Token { return e.Token }
func (e *FunctionLiteral) String() string {
	s := "fn " + e.Name + functionTypeParamsString(e.TypeParams) + "(" + paramsString(e.Params) + ")"
	if e.ReturnType != nil {
		s += " -> " + e.ReturnType.String()
	}
	return s + " " + blockString(e.Body)
}
func (*FunctionLiteral) expressionNode() {}

func paramsString(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.Type != nil {
			parts[i] = p.Name + ": " + p.Type.String()
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ", ")
}

// BlockExpr is a `{ ... }` sequence of statements; its value is that of its
// trailing expression statement, or Null if none.
type BlockExpr struct {
	Token      token.Token
	Statements []Statement
}

func (e *BlockExpr) Tok() token.Token { return e.Token }
func (e *BlockExpr) String() string   { return "{ " + stringifyStatements(e.Statements, "; ") + " }" }
func (*BlockExpr) expressionNode()    {}

func joinExprs(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func stringifyStatements(stmts []Statement, sep string) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
