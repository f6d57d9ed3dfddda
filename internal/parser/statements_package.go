package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseModuleHeader parses `module Name [exposing (a, b)];`, legal only as
// the first statement of a file (enforced by the caller/checker, not here).
func (p *Parser) parseModuleHeader() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.ModuleHeader{Token: tok, Name: p.curTok.Literal}
	for p.peekIs(token.DOT) {
		p.nextToken()
		p.nextToken()
		decl.Name += "." + p.curTok.Literal
	}
	if p.peekIs(token.EXPOSING) {
		p.nextToken()
		decl.HasExposing = true
		decl.Exposing = p.parseNameList()
	}
	p.skipOptionalSemicolon()
	return decl
}

// parseUseStatement parses `use path [as alias] [exposing (n1, n2)];`.
func (p *Parser) parseUseStatement() ast.Statement {
	tok := p.curTok
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.UseStatement{Token: tok, Path: []string{p.curTok.Literal}}
	for p.peekIs(token.DOT) {
		p.nextToken()
		p.nextToken()
		decl.Path = append(decl.Path, p.curTok.Literal)
	}
	if p.peekIs(token.AS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		decl.HasAlias = true
		decl.Alias = p.curTok.Literal
	}
	if p.peekIs(token.EXPOSING) {
		p.nextToken()
		decl.HasExposing = true
		decl.Exposing = p.parseNameList()
	}
	p.skipOptionalSemicolon()
	return decl
}

func (p *Parser) parseNameList() []string {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	var names []string
	p.nextToken()
	names = append(names, p.curTok.Literal)
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		names = append(names, p.curTok.Literal)
	}
	p.expectPeek(token.RPAREN)
	return names
}
