package parser

import (
	"strconv"
	"strings"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

func (p *Parser) parseExpression(prec precedence) ast.Expression {
	prefix, ok := p.prefixFns[p.curTok.Kind]
	if !ok {
		p.errorf("no prefix parse function for %s found", p.curTok.Kind)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && prec < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekTok.Kind]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curTok, Name: p.curTok.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curTok.Literal, 10, 64)
	if err != nil {
		p.errorf("could not parse %q as integer", p.curTok.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curTok, Value: v}
}

func (p *Parser) parseDoubleLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.curTok.Literal, 64)
	if err != nil {
		p.errorf("could not parse %q as double", p.curTok.Literal)
		return nil
	}
	return &ast.DoubleLiteral{Token: p.curTok, Value: v}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curTok, Value: p.curIs(token.TRUE)}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curTok, Value: p.curTok.Literal}
}

// parseInterpStringLiteral splits an INTERP_STRING literal (which still
// contains raw "${...}" markers, per the lexer) into alternating text and
// expression segments, re-parsing each ${...} body with a fresh Parser.
func (p *Parser) parseInterpStringLiteral() ast.Expression {
	lit := &ast.InterpStringLiteral{Token: p.curTok}
	raw := p.curTok.Literal
	for len(raw) > 0 {
		idx := strings.Index(raw, "${")
		if idx < 0 {
			lit.Segments = append(lit.Segments, ast.InterpSegment{Text: raw})
			break
		}
		if idx > 0 {
			lit.Segments = append(lit.Segments, ast.InterpSegment{Text: raw[:idx]})
		}
		depth := 1
		end := idx + 2
		for end < len(raw) && depth > 0 {
			switch raw[end] {
			case '{':
				depth++
			case '}':
				depth--
			}
			end++
		}
		body := raw[idx+2 : end-1]
		sub := New(newSubLexer(body))
		expr := sub.parseExpression(Lowest)
		if len(sub.errors) > 0 {
			p.errors = append(p.errors, sub.errors...)
		}
		lit.Segments = append(lit.Segments, ast.InterpSegment{Expr: expr})
		raw = raw[end:]
	}
	return lit
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	tok := p.curTok
	op := p.curTok.Literal
	p.nextToken()
	right := p.parseExpression(PrefixPrec)
	return &ast.PrefixExpr{Token: tok, Operator: op, Right: right}
}

func (p *Parser) parseInfixExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	op := p.curTok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.InfixExpr{Token: tok, Operator: op, Left: left, Right: right}
}

// parsePipeExpr desugars `x |> f` to a direct call, and `x |> g(a, b)` to
// `g(x, a, b)`, per spec.md's pipe contract.
func (p *Parser) parsePipeExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	p.nextToken()
	right := p.parseExpression(PipePrec)
	if call, ok := right.(*ast.CallExpr); ok {
		call.Args = append([]ast.Expression{left}, call.Args...)
		return call
	}
	return &ast.CallExpr{Token: tok, Function: right, Args: []ast.Expression{left}}
}
