package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseTypeNode parses a type annotation: identifiers, paths (a.b),
// generics (Name<T, U>), function types fn(T) -> U, and tuple types (T, U).
func (p *Parser) parseTypeNode() ast.TypeNode {
	switch p.curTok.Kind {
	case token.FN:
		return p.parseFuncTypeNode()
	case token.LPAREN:
		return p.parseTupleTypeNode()
	case token.IDENT:
		return p.parseIdentOrPathOrGenericType()
	default:
		p.errorf("unexpected token %s in type position", p.curTok.Kind)
		return nil
	}
}

func (p *Parser) parseIdentOrPathOrGenericType() ast.TypeNode {
	tok := p.curTok
	name := p.curTok.Literal
	parts := []string{name}
	for p.peekIs(token.DOT) {
		p.nextToken()
		p.nextToken()
		parts = append(parts, p.curTok.Literal)
	}
	var base ast.TypeNode
	if len(parts) > 1 {
		base = &ast.PathType{Token: tok, Parts: parts}
	} else {
		base = &ast.IdentType{Token: tok, Name: name}
	}
	if p.peekIs(token.LT) {
		p.nextToken()
		args := p.parseTypeArgList()
		gname := name
		if len(parts) > 1 {
			gname = parts[len(parts)-1]
		}
		return &ast.GenericType{Token: tok, Name: gname, Args: args}
	}
	return base
}

func (p *Parser) parseTypeArgList() []ast.TypeNode {
	var args []ast.TypeNode
	p.nextToken()
	args = append(args, p.parseTypeNode())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseTypeNode())
	}
	if !p.expectPeek(token.GT) {
		return nil
	}
	return args
}

// parseTypeParamList parses `<T, U>` for generic declarations, positioned
// with curTok on '<'; returns the bare names.
func (p *Parser) parseTypeParamList() []string {
	var params []string
	p.nextToken()
	params = append(params, p.curTok.Literal)
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.curTok.Literal)
	}
	if !p.expectPeek(token.GT) {
		return nil
	}
	return params
}

// parseFunctionTypeParamList parses `<T, U: Trait1 + Trait2>` for a
// function's own generic parameters, positioned with curTok on '<'. Only
// functions carry trait bounds on their type params; record/sum/trait
// declarations use the bare parseTypeParamList above.
func (p *Parser) parseFunctionTypeParamList() []ast.TypeParam {
	var params []ast.TypeParam
	p.nextToken()
	params = append(params, p.parseOneFunctionTypeParam())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneFunctionTypeParam())
	}
	if !p.expectPeek(token.GT) {
		return nil
	}
	return params
}

func (p *Parser) parseOneFunctionTypeParam() ast.TypeParam {
	tp := ast.TypeParam{Name: p.curTok.Literal}
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		tp.Bounds = append(tp.Bounds, p.curTok.Literal)
		for p.peekIs(token.PLUS) {
			p.nextToken()
			p.nextToken()
			tp.Bounds = append(tp.Bounds, p.curTok.Literal)
		}
	}
	return tp
}

func (p *Parser) parseFuncTypeNode() ast.TypeNode {
	tok := p.curTok
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	ft := &ast.FuncType{Token: tok}
	if !p.peekIs(token.RPAREN) {
		p.nextToken()
		ft.Params = append(ft.Params, p.parseTypeNode())
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			ft.Params = append(ft.Params, p.parseTypeNode())
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		ft.Return = p.parseTypeNode()
	}
	return ft
}

func (p *Parser) parseTupleTypeNode() ast.TypeNode {
	tok := p.curTok
	tt := &ast.TupleType{Token: tok}
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return tt
	}
	p.nextToken()
	tt.Elements = append(tt.Elements, p.parseTypeNode())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		tt.Elements = append(tt.Elements, p.parseTypeNode())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return tt
}
