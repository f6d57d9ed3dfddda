// Package parser implements Lumen's Pratt parser: tokens in, AST out,
// recovering operator precedence through prefix/infix parse-function
// tables. Grounded on the teacher's internal/parser package shape (a
// processor driving prefix/infix tables keyed by token kind, splitting
// expression/statement parsing across files by concern).
package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
)

type precedence int

const (
	Lowest precedence = iota
	PipePrec
	AssignPrec
	AnnotatePrec
	LogicalOrPrec
	LogicalAndPrec
	EqualsPrec
	LessGreaterPrec
	SumPrec
	ProductPrec
	PrefixPrec
	CallPrec
	IndexPrec
	MemberPrec
	TryPrec
)

var precedences = map[token.Kind]precedence{
	token.PIPE:        PipePrec,
	token.ASSIGN:      AssignPrec,
	token.PLUS_ASSIGN: AssignPrec,
	token.FAT_ARROW:   AssignPrec,
	token.COLON:       AnnotatePrec,
	token.OR:          LogicalOrPrec,
	token.AND:         LogicalAndPrec,
	token.EQ:          EqualsPrec,
	token.NOT_EQ:      EqualsPrec,
	token.LT:          LessGreaterPrec,
	token.GT:          LessGreaterPrec,
	token.LT_EQ:       LessGreaterPrec,
	token.GT_EQ:       LessGreaterPrec,
	token.PLUS:        SumPrec,
	token.MINUS:       SumPrec,
	token.ASTERISK:    ProductPrec,
	token.SLASH:       ProductPrec,
	token.PERCENT:     ProductPrec,
	token.LPAREN:      CallPrec,
	token.LBRACKET:    IndexPrec,
	token.DOT:         MemberPrec,
	token.QUESTION:    TryPrec,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	errors []string

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixFns = map[token.Kind]prefixParseFn{}
	p.infixFns = map[token.Kind]infixParseFn{}

	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.DOUBLE, p.parseDoubleLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.INTERP_STRING, p.parseInterpStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpr)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.LPAREN, p.parseGroupedOrTupleOrLambda)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)
	p.registerPrefix(token.IF, p.parseIfExpr)
	p.registerPrefix(token.MATCH, p.parseMatchExpr)
	p.registerPrefix(token.WHEN, p.parseWhenExpr)

	p.registerInfix(token.PLUS, p.parseInfixExpr)
	p.registerInfix(token.MINUS, p.parseInfixExpr)
	p.registerInfix(token.ASTERISK, p.parseInfixExpr)
	p.registerInfix(token.SLASH, p.parseInfixExpr)
	p.registerInfix(token.PERCENT, p.parseInfixExpr)
	p.registerInfix(token.EQ, p.parseInfixExpr)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(token.LT, p.parseInfixExpr)
	p.registerInfix(token.GT, p.parseInfixExpr)
	p.registerInfix(token.LT_EQ, p.parseInfixExpr)
	p.registerInfix(token.GT_EQ, p.parseInfixExpr)
	p.registerInfix(token.AND, p.parseInfixExpr)
	p.registerInfix(token.OR, p.parseInfixExpr)
	p.registerInfix(token.PIPE, p.parsePipeExpr)
	p.registerInfix(token.ASSIGN, p.parseAssignExpr)
	p.registerInfix(token.PLUS_ASSIGN, p.parseAssignExpr)
	p.registerInfix(token.FAT_ARROW, p.parseLambdaArrow)
	p.registerInfix(token.LPAREN, p.parseCallExpr)
	p.registerInfix(token.LBRACKET, p.parseIndexExpr)
	p.registerInfix(token.DOT, p.parseMemberExpr)
	p.registerInfix(token.QUESTION, p.parseTryExpr)

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(k token.Kind, fn prefixParseFn) { p.prefixFns[k] = fn }
func (p *Parser) registerInfix(k token.Kind, fn infixParseFn)   { p.infixFns[k] = fn }

func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
	// Comments are already filtered by the lexer; every NEWLINE token is
	// skipped here, so NEWLINE never reaches curTok or peekTok and line
	// breaks never act as statement boundaries.
	for p.peekTok.Kind == token.NEWLINE {
		p.peekTok = p.l.NextToken()
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.curTok.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peekTok.Kind == k }

func (p *Parser) expectPeek(k token.Kind) bool {
	if p.peekIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(k token.Kind) {
	p.errors = append(p.errors, fmt.Sprintf(
		"%d:%d: expected next token to be %s, got %s (%q) instead",
		p.peekTok.Line, p.peekTok.Column, k, p.peekTok.Kind, p.peekTok.Literal))
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf("%d:%d: "+format, append([]any{p.curTok.Line, p.curTok.Column}, args...)...))
}

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peekTok.Kind]; ok {
		return pr
	}
	return Lowest
}

func (p *Parser) curPrecedence() precedence {
	if pr, ok := precedences[p.curTok.Kind]; ok {
		return pr
	}
	return Lowest
}

// ParseProgram parses a whole file into a Program. If any error was
// recorded, the caller must treat the result as invalid (not type-checked
// or evaluated), per spec: a program with parser errors never reaches
// checking or evaluation.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMICOLON) || p.curIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
}
