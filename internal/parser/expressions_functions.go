package parser

import (
	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/token"
)

// parseFunctionLiteral parses:
//
//	fn [name][<T, U>](args [: T]*) [-> T] { body }
//	fn [name][<T, U>](args [: T]*) [-> T] : expr
//	fn [name][<T, U>](args [: T]*) [-> T] => expr
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curTok}

	if p.peekIs(token.IDENT) {
		p.nextToken()
		lit.Name = p.curTok.Literal
	}
	if p.peekIs(token.LT) {
		p.nextToken()
		lit.TypeParams = p.parseFunctionTypeParamList()
	}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Params = p.parseParamList()
	if p.peekIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		lit.ReturnType = p.parseTypeNode()
	}

	switch {
	case p.peekIs(token.LBRACE):
		p.nextToken()
		lit.Body = p.parseBlockExpr()
	case p.peekIs(token.COLON):
		p.nextToken()
		p.nextToken()
		lit.Body = p.parseExpression(Lowest)
	case p.peekIs(token.FAT_ARROW):
		p.nextToken()
		p.nextToken()
		lit.Body = p.parseExpression(Lowest)
	default:
		p.errorf("expected function body ('{', ':', or '=>'), got %s", p.peekTok.Kind)
		return nil
	}
	return lit
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParam())
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParam())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseOneParam() ast.Param {
	name := p.curTok.Literal
	param := ast.Param{Name: name}
	if p.peekIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = p.parseTypeNode()
	}
	return param
}

func (p *Parser) parseBlockExpr() ast.Expression {
	block := &ast.BlockExpr{Token: p.curTok}
	p.nextToken()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMICOLON) || p.curIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}
	return block
}

// parseLambdaArrow converts `ident => body` or `(a, b, ...) => body` into a
// FunctionLiteral, per spec.md's lambda-via-=> contract. left has already
// been parsed as an Identifier or a TupleLiteral of bare identifiers by the
// time this infix handler fires.
func (p *Parser) parseLambdaArrow(left ast.Expression) ast.Expression {
	tok := p.curTok
	lit := &ast.FunctionLiteral{Token: tok}

	switch l := left.(type) {
	case *ast.Identifier:
		lit.Params = []ast.Param{{Name: l.Name}}
	case *ast.TupleLiteral:
		for _, e := range l.Elements {
			ident, ok := e.(*ast.Identifier)
			if !ok {
				p.errorf("lambda parameter list must contain only identifiers")
				return nil
			}
			lit.Params = append(lit.Params, ast.Param{Name: ident.Name})
		}
	default:
		p.errorf("left side of '=>' must be an identifier or parenthesized identifier list")
		return nil
	}

	p.nextToken()
	if p.curIs(token.LBRACE) {
		lit.Body = p.parseBlockExpr()
	} else {
		lit.Body = p.parseExpression(Lowest)
	}
	return lit
}
