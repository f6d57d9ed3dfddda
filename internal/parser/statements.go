package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.curTok.Kind {
	case token.MODULE:
		return p.parseModuleHeader()
	case token.USE:
		return p.parseUseStatement()
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.TYPE:
		return p.parseTypeDeclaration()
	case token.RECORD:
		return p.parseRecordDeclaration()
	case token.TRAIT:
		return p.parseTraitDeclaration()
	case token.IMPL:
		return p.parseImplDeclaration()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curTok
	expr := p.parseExpression(Lowest)
	stmt := &ast.ExpressionStatement{Token: tok, Expression: expr}
	p.skipOptionalSemicolon()
	return stmt
}

// parseLetStatement parses `let [mut] pattern [: type] = expr;`. A type
// annotation on a destructuring pattern (tuple or array) is not rejected
// at parse time under the spec's "Type annotation is an error on destructuring
// patterns" rule — we accept the syntax permissively here and let the
// checker reject it with full context (so the diagnostic always carries
// the expression, not just the bare syntax error).
func (p *Parser) parseLetStatement() ast.Statement {
	tok := p.curTok
	stmt := &ast.LetStatement{Token: tok}

	if p.peekIs(token.MUT) {
		p.nextToken()
		stmt.Mutable = true
	}

	p.nextToken()
	if p.curIs(token.LPAREN) && p.peekIs(token.BAR) {
		return p.parseActivePatternDecl(tok)
	}
	stmt.Pattern = p.parseBindingPattern()

	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.Type = p.parseTypeNode()
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(Lowest)
	p.skipOptionalSemicolon()
	return stmt
}

// parseBindingPattern restricts `let` patterns to identifier, tuple, or
// array shapes (spec.md §4.2's "let" contract), reusing the general
// pattern parser for the tuple/array structure.
func (p *Parser) parseBindingPattern() ast.Pattern {
	switch p.curTok.Kind {
	case token.IDENT:
		return &ast.IdentPattern{Token: p.curTok, Name: p.curTok.Literal}
	case token.LPAREN:
		return p.parseTuplePattern()
	case token.LBRACKET:
		return p.parseArrayPattern()
	default:
		p.errorf("expected identifier, tuple pattern, or array pattern after 'let', got %s", p.curTok.Kind)
		return nil
	}
}

// parseActivePatternDecl parses `(|Case1|Case2|) name = expr;` with curTok
// positioned on the opening LPAREN and peekTok on the first BAR.
func (p *Parser) parseActivePatternDecl(letTok token.Token) ast.Statement {
	decl := &ast.ActivePatternDecl{Token: letTok}

	p.nextToken() // consume '(', cur -> first BAR
	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		decl.Cases = append(decl.Cases, p.curTok.Literal)
		if !p.expectPeek(token.BAR) {
			return nil
		}
		if p.peekIs(token.RPAREN) {
			p.nextToken()
			break
		}
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = p.curTok.Literal

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	decl.Value = p.parseExpression(Lowest)
	p.skipOptionalSemicolon()
	return decl
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curTok
	stmt := &ast.ReturnStatement{Token: tok}
	if p.peekIs(token.SEMICOLON) || p.peekIs(token.RBRACE) || p.peekIs(token.NEWLINE) {
		p.skipOptionalSemicolon()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(Lowest)
	p.skipOptionalSemicolon()
	return stmt
}
