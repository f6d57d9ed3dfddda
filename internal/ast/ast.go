// Package ast defines Lumen's abstract syntax tree: a closed family of
// Statement, Expression, and Pattern nodes, each carrying its originating
// token for diagnostics.
package ast

import "github.com/lumen-lang/lumen/internal/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Tok() token.Token
	String() string
}

// Statement is a top-level or block-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is a node appearing in a let-destructure, match arm, or when arm.
type Pattern interface {
	Node
	patternNode()
}

// TypeNode represents a parsed (not yet checked) type annotation.
type TypeNode interface {
	Node
	typeNode()
}

// Program is the root of every parsed module.
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) Tok() token.Token {
	if len(p.Statements) == 0 {
		return token.Token{}
	}
	return p.Statements[0].Tok()
}
func (p *Program) String() string { return stringifyStatements(p.Statements, "\n") }
