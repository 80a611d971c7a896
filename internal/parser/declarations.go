package parser

import (
	"strconv"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/token"
)

// parseDeclarations parses the declaration region before a begin block:
// any number of var sections and procedure/function declarations.
// PRE: curToken is the first declaration token (or BEGIN if none)
// POST: curToken is the token after the last declaration (normally BEGIN)
func (p *Parser) parseDeclarations() []ast.Declaration {
	var decls []ast.Declaration

	for !p.failed() {
		switch p.curToken.Type {
		case token.VAR:
			decls = append(decls, p.parseVarSection()...)
		case token.PROCEDURE, token.FUNCTION:
			decl := p.parseFunctionDecl()
			if decl == nil {
				return nil
			}
			decls = append(decls, decl)
			p.nextToken()
		default:
			return decls
		}
	}
	return nil
}

// parseVarSection parses `var a, b: integer; c: real; ...` — one or more
// declaration groups after a single var keyword.
// PRE: curToken is VAR
// POST: curToken is the token after the section's last semicolon
func (p *Parser) parseVarSection() []ast.Declaration {
	varToken := p.curToken
	var decls []ast.Declaration

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	for p.curTokenIs(token.IDENT) && !p.failed() {
		decl := p.parseVarGroup(varToken)
		if decl == nil {
			return nil
		}
		decls = append(decls, decl)

		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		p.nextToken()
	}
	return decls
}

// parseVarGroup parses one `a, b: <type>` group.
// PRE: curToken is the first name
// POST: curToken is the last token of the type
func (p *Parser) parseVarGroup(varToken token.Token) *ast.VarDeclaration {
	decl := &ast.VarDeclaration{Token: varToken}

	decl.Names = p.parseIdentifierList()
	if decl.Names == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()

	decl.VarType = p.parseTypeNode()
	if decl.VarType == nil {
		return nil
	}
	return decl
}

// parseIdentifierList parses `a, b, c`.
// PRE: curToken is the first identifier
// POST: curToken is the last identifier
func (p *Parser) parseIdentifierList() []*ast.Identifier {
	if !p.curTokenIs(token.IDENT) {
		p.addErrorf(p.curToken.Pos, "expected identifier, got %s", describeToken(p.curToken))
		return nil
	}
	names := []*ast.Identifier{{Token: p.curToken, Value: p.curToken.Literal}}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		names = append(names, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}
	return names
}

// parseTypeNode parses a type specification: a simple type name or
// `array[lo..hi, ...] of <type>`.
// PRE: curToken is the first token of the type
// POST: curToken is the last token of the type
func (p *Parser) parseTypeNode() ast.TypeNode {
	if p.curTokenIs(token.ARRAY) {
		return p.parseArrayTypeNode()
	}
	if !p.curTokenIs(token.IDENT) {
		p.addErrorf(p.curToken.Pos, "expected type name, got %s", describeToken(p.curToken))
		return nil
	}
	return &ast.SimpleTypeNode{Token: p.curToken, Name: p.curToken.Literal}
}

// parseArrayTypeNode parses `array[1..10] of integer` and the
// multi-dimensional form `array[1..3, 1..4] of real`.
// PRE: curToken is ARRAY
// POST: curToken is the last token of the element type
func (p *Parser) parseArrayTypeNode() *ast.ArrayTypeNode {
	node := &ast.ArrayTypeNode{Token: p.curToken}

	if !p.expectPeek(token.LBRACK) {
		return nil
	}
	p.nextToken()

	for {
		r := p.parseRangeNode()
		if r == nil {
			return nil
		}
		node.Ranges = append(node.Ranges, r)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expectPeek(token.RBRACK) {
		return nil
	}
	if !p.expectPeek(token.OF) {
		return nil
	}
	p.nextToken()

	node.Element = p.parseTypeNode()
	if node.Element == nil {
		return nil
	}
	return node
}

// parseRangeNode parses `lo..hi` with integer literal bounds, each with an
// optional leading minus.
// PRE: curToken is the first token of the low bound
// POST: curToken is the last token of the high bound
func (p *Parser) parseRangeNode() *ast.RangeNode {
	node := &ast.RangeNode{Token: p.curToken}

	low, ok := p.parseBoundLiteral()
	if !ok {
		return nil
	}
	node.Low = low

	if !p.expectPeek(token.DOTDOT) {
		return nil
	}
	p.nextToken()

	high, ok := p.parseBoundLiteral()
	if !ok {
		return nil
	}
	node.High = high
	return node
}

// parseBoundLiteral parses an integer literal bound with optional sign.
// PRE: curToken is MINUS or INT
// POST: curToken is the INT token
func (p *Parser) parseBoundLiteral() (int64, bool) {
	negative := false
	if p.curTokenIs(token.MINUS) {
		negative = true
		p.nextToken()
	}
	if !p.curTokenIs(token.INT) {
		p.addErrorf(p.curToken.Pos, "expected integer bound, got %s", describeToken(p.curToken))
		return 0, false
	}
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

// parseFunctionDecl parses a procedure or function declaration, including
// nested local declarations and the body.
// Syntax: procedure Name(params); <locals> begin ... end
//
//	function Name(params): Type; <locals> begin ... end
//
// PRE: curToken is PROCEDURE or FUNCTION
// POST: curToken is the semicolon after the body's 'end'
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	fn := &ast.FunctionDecl{Token: p.curToken}
	isFunction := p.curTokenIs(token.FUNCTION)

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fn.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		fn.Parameters = p.parseParameterList()
		if p.failed() {
			return nil
		}
	}

	if isFunction {
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		fn.ReturnType = p.parseTypeNode()
		if fn.ReturnType == nil {
			return nil
		}
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()

	fn.Locals = p.parseDeclarations()
	if p.failed() {
		return nil
	}

	if !p.curTokenIs(token.BEGIN) {
		p.addErrorf(p.curToken.Pos, "expected 'begin', got %s", describeToken(p.curToken))
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}

	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return fn
}

// parseParameterList parses `(a, b: integer; var s: string)`.
// PRE: curToken is '('
// POST: curToken is ')'
func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()

	for {
		param := p.parseParameterGroup()
		if param == nil {
			return nil
		}
		params = append(params, param)

		if !p.peekTokenIs(token.SEMICOLON) {
			break
		}
		p.nextToken()
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// parseParameterGroup parses one `[var] a, b: <type>` group.
// PRE: curToken is VAR or the first name
// POST: curToken is the last token of the type
func (p *Parser) parseParameterGroup() *ast.Parameter {
	param := &ast.Parameter{Token: p.curToken}

	if p.curTokenIs(token.VAR) {
		param.ByRef = true
		p.nextToken()
	}

	param.Names = p.parseIdentifierList()
	if param.Names == nil {
		return nil
	}
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()

	param.ParamType = p.parseTypeNode()
	if param.ParamType == nil {
		return nil
	}
	return param
}
