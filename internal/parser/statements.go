package parser

import (
	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/ident"
	"github.com/babych/go-pascal/pkg/token"
)

// parseStatement parses a single statement.
// PRE: curToken is the statement's first token
// POST: curToken is the statement's last token
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.BEGIN:
		return p.parseBlockStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.REPEAT:
		return p.parseRepeatStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.IDENT:
		return p.parseSimpleStatement()
	default:
		p.addErrorf(p.curToken.Pos, "unexpected %s at start of statement", describeToken(p.curToken))
		return nil
	}
}

// parseBlockStatement parses a begin...end block. Statements are separated
// by semicolons; the separator before 'end' may be omitted.
// PRE: curToken is BEGIN
// POST: curToken is END
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.END) && !p.failed() {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.EOF) {
			p.addErrorf(p.curToken.Pos, "expected 'end', got end of file")
			return nil
		}

		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)

		if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.END) {
			p.peekError(token.SEMICOLON)
			return nil
		}
		p.nextToken()
	}

	if p.failed() {
		return nil
	}
	return block
}

// parseSimpleStatement parses a statement that begins with an identifier:
// an assignment (to a variable or array element), a procedure call, or
// one of the I/O built-ins.
// PRE: curToken is IDENT
// POST: curToken is the statement's last token
func (p *Parser) parseSimpleStatement() ast.Statement {
	nameTok := p.curToken

	switch ident.Normalize(nameTok.Literal) {
	case "write", "writeln":
		return p.parseWriteStatement()
	case "read", "readln":
		return p.parseReadStatement()
	}

	switch p.peekToken.Type {
	case token.ASSIGN:
		target := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
		p.nextToken()
		return p.parseAssignmentTail(target)
	case token.LBRACK:
		left := &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
		p.nextToken()
		target := p.parseIndexExpression(left)
		if target == nil {
			return nil
		}
		if !p.expectPeek(token.ASSIGN) {
			return nil
		}
		return p.parseAssignmentTail(target)
	case token.LPAREN:
		return p.parseCallStatement()
	default:
		// A bare identifier is a zero-argument procedure call.
		return &ast.CallStatement{
			Token: nameTok,
			Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		}
	}
}

// parseAssignmentTail parses `:= expr` for an already-parsed target.
// PRE: curToken is ASSIGN
// POST: curToken is the last token of the value expression
func (p *Parser) parseAssignmentTail(target ast.Expression) ast.Statement {
	stmt := &ast.AssignmentStatement{Token: p.curToken, Target: target}
	p.nextToken()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

// parseCallStatement parses `Name(arg, ...)` in statement position.
// PRE: curToken is IDENT, peekToken is '('
// POST: curToken is ')'
func (p *Parser) parseCallStatement() ast.Statement {
	stmt := &ast.CallStatement{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal},
	}
	p.nextToken()

	stmt.Arguments = p.parseExpressionList(token.RPAREN)
	if p.failed() {
		return nil
	}
	return stmt
}

// parseWriteStatement parses write/writeln with an optional argument list.
// PRE: curToken is the write/writeln identifier
// POST: curToken is the statement's last token
func (p *Parser) parseWriteStatement() ast.Statement {
	stmt := &ast.WriteStatement{
		Token:   p.curToken,
		Newline: ident.Equal(p.curToken.Literal, "writeln"),
	}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		stmt.Arguments = p.parseExpressionList(token.RPAREN)
		if p.failed() {
			return nil
		}
	}
	return stmt
}

// parseReadStatement parses read/readln with an optional argument list.
// PRE: curToken is the read/readln identifier
// POST: curToken is the statement's last token
func (p *Parser) parseReadStatement() ast.Statement {
	stmt := &ast.ReadStatement{
		Token:   p.curToken,
		Newline: ident.Equal(p.curToken.Literal, "readln"),
	}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		stmt.Arguments = p.parseExpressionList(token.RPAREN)
		if p.failed() {
			return nil
		}
	}
	return stmt
}
