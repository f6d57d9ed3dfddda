package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseIfExpr parses `if cond { cons } [else { alt } | else if ...]` as well
// as the colon-bodied form `if cond: cons else: alt` used in single-expression
// contexts (see §8 scenario 4).
func (p *Parser) parseIfExpr() ast.Expression {
	tok := p.curTok
	p.nextToken()
	cond := p.parseExpression(Lowest)

	expr := &ast.IfExpr{Token: tok, Condition: cond}

	switch {
	case p.peekIs(token.LBRACE):
		p.nextToken()
		expr.Consequence = p.parseBlockExpr()
	case p.peekIs(token.COLON):
		p.nextToken()
		p.nextToken()
		expr.Consequence = p.parseExpression(AssignPrec)
	default:
		p.errorf("expected '{' or ':' after if condition, got %s", p.peekTok.Kind)
		return nil
	}

	if p.peekIs(token.ELSE) {
		p.nextToken()
		switch {
		case p.peekIs(token.IF):
			p.nextToken()
			expr.Alternative = p.parseIfExpr()
		case p.peekIs(token.LBRACE):
			p.nextToken()
			expr.Alternative = p.parseBlockExpr()
		case p.peekIs(token.COLON):
			p.nextToken()
			p.nextToken()
			expr.Alternative = p.parseExpression(Lowest)
		default:
			p.errorf("expected '{', ':' or 'if' after else, got %s", p.peekTok.Kind)
			return nil
		}
	}
	return expr
}

// parseMatchExpr parses `match (v1[, v2, ...]) { pattern => body, ... }`.
func (p *Parser) parseMatchExpr() ast.Expression {
	tok := p.curTok
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	scrutinees := []ast.Expression{p.parseExpression(Lowest)}
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		scrutinees = append(scrutinees, p.parseExpression(Lowest))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expr := &ast.MatchExpr{Token: tok, Scrutinees: scrutinees}
	for !p.peekIs(token.RBRACE) {
		p.nextToken()
		arm := ast.MatchArm{}
		arm.Patterns = append(arm.Patterns, p.parsePattern())
		// The scrutinee count is already known, so an arm's pattern list
		// needs no lookahead disambiguation: keep consuming ", pattern"
		// until it has one pattern per scrutinee, then the next comma (if
		// any) belongs to the following arm.
		for len(arm.Patterns) < len(scrutinees) {
			if !p.expectPeek(token.COMMA) {
				return nil
			}
			p.nextToken()
			arm.Patterns = append(arm.Patterns, p.parsePattern())
		}
		if !p.expectPeek(token.FAT_ARROW) {
			return nil
		}
		p.nextToken()
		arm.Body = p.parseExpression(Lowest)
		expr.Arms = append(expr.Arms, arm)
		if p.peekIs(token.COMMA) {
			p.nextToken()
		} else {
			break
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return expr
}

// parseWhenExpr parses `when [(subject)] { | p1, p2 => body, ..., else => body }`.
func (p *Parser) parseWhenExpr() ast.Expression {
	tok := p.curTok
	expr := &ast.WhenExpr{Token: tok}

	if p.peekIs(token.LPAREN) {
		p.nextToken()
		p.nextToken()
		expr.Subject = p.parseExpression(Lowest)
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for p.peekIs(token.BAR) {
		p.nextToken() // consume '|'
		p.nextToken()
		arm := ast.WhenArm{}
		arm.Conditions = append(arm.Conditions, p.parseExpression(AnnotatePrec))
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			arm.Conditions = append(arm.Conditions, p.parseExpression(AnnotatePrec))
		}
		if !p.expectPeek(token.FAT_ARROW) {
			return nil
		}
		p.nextToken()
		arm.Body = p.parseExpression(Lowest)
		expr.Arms = append(expr.Arms, arm)
		if p.peekIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.ELSE) {
		p.errorf("when expression requires an else branch")
		return nil
	}
	if !p.expectPeek(token.FAT_ARROW) {
		return nil
	}
	p.nextToken()
	expr.Else = p.parseExpression(Lowest)
	if p.peekIs(token.COMMA) {
		p.nextToken()
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return expr
}
