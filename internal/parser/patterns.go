package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parsePattern parses a pattern in let-destructuring, match-arm, or
// variant-argument position.
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curTok.Kind {
	case token.WILDCARD:
		return &ast.WildcardPattern{Token: p.curTok}
	case token.IDENT:
		if p.peekIs(token.LPAREN) {
			return p.parseVariantPattern()
		}
		return &ast.IdentPattern{Token: p.curTok, Name: p.curTok.Literal}
	case token.LPAREN:
		return p.parseTuplePattern()
	case token.LBRACKET:
		return p.parseArrayPattern()
	case token.INT:
		return &ast.LiteralPattern{Token: p.curTok, Value: p.parseIntegerLiteral()}
	case token.DOUBLE:
		return &ast.LiteralPattern{Token: p.curTok, Value: p.parseDoubleLiteral()}
	case token.STRING:
		return &ast.LiteralPattern{Token: p.curTok, Value: p.parseStringLiteral()}
	case token.TRUE, token.FALSE:
		return &ast.LiteralPattern{Token: p.curTok, Value: p.parseBooleanLiteral()}
	case token.MINUS:
		// Negative integer/double literal pattern, e.g. `-1 => ...`.
		tok := p.curTok
		p.nextToken()
		switch p.curTok.Kind {
		case token.INT:
			lit := p.parseIntegerLiteral().(*ast.IntegerLiteral)
			lit.Value = -lit.Value
			return &ast.LiteralPattern{Token: tok, Value: lit}
		case token.DOUBLE:
			lit := p.parseDoubleLiteral().(*ast.DoubleLiteral)
			lit.Value = -lit.Value
			return &ast.LiteralPattern{Token: tok, Value: lit}
		}
		p.errorf("expected numeric literal after '-' in pattern")
		return nil
	default:
		p.errorf("unexpected token %s in pattern position", p.curTok.Kind)
		return nil
	}
}

func (p *Parser) parseVariantPattern() *ast.VariantPattern {
	vp := &ast.VariantPattern{Token: p.curTok, Name: p.curTok.Literal}
	p.nextToken() // now at '('
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return vp
	}
	p.nextToken()
	vp.Args = append(vp.Args, p.parsePattern())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		vp.Args = append(vp.Args, p.parsePattern())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return vp
}

func (p *Parser) parseTuplePattern() *ast.TuplePattern {
	tp := &ast.TuplePattern{Token: p.curTok}
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return tp
	}
	p.nextToken()
	tp.Elements = append(tp.Elements, p.parsePattern())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		tp.Elements = append(tp.Elements, p.parsePattern())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return tp
}

func (p *Parser) parseArrayPattern() *ast.ArrayPattern {
	ap := &ast.ArrayPattern{Token: p.curTok}
	if p.peekIs(token.RBRACKET) {
		p.nextToken()
		return ap
	}
	p.nextToken()
	for {
		if p.curIs(token.ELLIPSIS) {
			p.nextToken()
			name := p.curTok.Literal
			ap.Rest = &name
			break
		}
		ap.Elements = append(ap.Elements, p.parsePattern())
		if p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return ap
}
