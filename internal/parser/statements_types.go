package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseTypeDeclaration parses `type Name<T...> = V1(t...) | V2(...);`.
func (p *Parser) parseTypeDeclaration() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.TypeDeclaration{Token: tok, Name: p.curTok.Literal}

	if p.peekIs(token.LT) {
		p.nextToken()
		decl.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	decl.Variants = append(decl.Variants, p.parseVariantDecl())
	for p.peekIs(token.BAR) {
		p.nextToken()
		p.nextToken()
		decl.Variants = append(decl.Variants, p.parseVariantDecl())
	}
	p.skipOptionalSemicolon()
	return decl
}

func (p *Parser) parseVariantDecl() ast.VariantDecl {
	v := ast.VariantDecl{Name: p.curTok.Literal}
	if p.peekIs(token.LPAREN) {
		p.nextToken()
		if !p.peekIs(token.RPAREN) {
			p.nextToken()
			v.Params = append(v.Params, p.parseTypeNode())
			for p.peekIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				v.Params = append(v.Params, p.parseTypeNode())
			}
		}
		p.expectPeek(token.RPAREN)
	}
	return v
}

// parseRecordDeclaration parses `record Name<T...>(f: T, ...);`.
func (p *Parser) parseRecordDeclaration() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.RecordDeclaration{Token: tok, Name: p.curTok.Literal}

	if p.peekIs(token.LT) {
		p.nextToken()
		decl.TypeParams = p.parseTypeParamList()
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	if !p.peekIs(token.RPAREN) {
		p.nextToken()
		decl.Fields = append(decl.Fields, p.parseFieldDecl())
		for p.peekIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			decl.Fields = append(decl.Fields, p.parseFieldDecl())
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.skipOptionalSemicolon()
	return decl
}

func (p *Parser) parseFieldDecl() ast.FieldDecl {
	f := ast.FieldDecl{Name: p.curTok.Literal}
	if p.expectPeek(token.COLON) {
		p.nextToken()
		f.Type = p.parseTypeNode()
	}
	return f
}
