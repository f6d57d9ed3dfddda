package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseGroupedOrTupleOrLambda parses a parenthesized expression list.
// Empty parens `()` yield the unit tuple; a single expression yields that
// expression (grouping only); two or more comma-separated expressions
// yield a TupleLiteral. The result may subsequently be reinterpreted as a
// lambda parameter list by parseLambdaArrow.
func (p *Parser) parseGroupedOrTupleOrLambda() ast.Expression {
	tok := p.curTok
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return &ast.TupleLiteral{Token: tok}
	}
	p.nextToken()
	first := p.parseExpression(Lowest)
	elems := []ast.Expression{first}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		elems = append(elems, p.parseExpression(Lowest))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleLiteral{Token: tok, Elements: elems}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curTok
	arr := &ast.ArrayLiteral{Token: tok}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(Lowest))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(Lowest))
	}
	if !p.expectPeek(end) {
		return nil
	}
	return list
}

func (p *Parser) parseHashLiteral() ast.Expression {
	h := &ast.HashLiteral{Token: p.curTok}
	for !p.peekIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(AnnotatePrec + 1)
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(Lowest)
		h.Keys = append(h.Keys, key)
		h.Values = append(h.Values, val)
		if p.peekIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return h
}

func (p *Parser) parseCallExpr(fn ast.Expression) ast.Expression {
	tok := p.curTok
	args := p.parseExpressionList(token.RPAREN)
	return &ast.CallExpr{Token: tok, Function: fn, Args: args}
}

func (p *Parser) parseIndexExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	p.nextToken()
	idx := p.parseExpression(Lowest)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpr{Token: tok, Left: left, Index: idx}
}

func (p *Parser) parseMemberExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return &ast.MemberExpr{Token: tok, Left: left, Property: p.curTok.Literal}
}

func (p *Parser) parseTryExpr(left ast.Expression) ast.Expression {
	return &ast.TryExpr{Token: p.curTok, Operand: left}
}

func (p *Parser) parseAssignExpr(left ast.Expression) ast.Expression {
	tok := p.curTok
	op := p.curTok.Literal
	prec := p.curPrecedence()
	p.nextToken()
	val := p.parseExpression(prec)
	return &ast.AssignExpr{Token: tok, Operator: op, Target: left, Value: val}
}
