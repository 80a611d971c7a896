package parser

import (
	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/token"
)

// parseIfStatement parses `if cond then S1 [else S2]`. An 'else' always
// binds to the nearest unmatched 'if'.
// PRE: curToken is IF
// POST: curToken is the last token of the taken branch
func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()

	stmt.Consequence = p.parseStatement()
	if stmt.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternative = p.parseStatement()
		if stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

// parseWhileStatement parses `while cond do body`.
// PRE: curToken is WHILE
// POST: curToken is the body's last token
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(token.DO) {
		return nil
	}
	p.nextToken()

	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForStatement parses `for i := start to|downto end do body`.
// The loop variable must be a bare identifier.
// PRE: curToken is FOR
// POST: curToken is the body's last token
func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Variable = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()

	stmt.Start = p.parseExpression(LOWEST)
	if stmt.Start == nil {
		return nil
	}

	switch p.peekToken.Type {
	case token.TO:
		stmt.Down = false
	case token.DOWNTO:
		stmt.Down = true
	default:
		p.addErrorf(p.peekToken.Pos, "expected 'to' or 'downto', got %s", describeToken(p.peekToken))
		return nil
	}
	p.nextToken()
	p.nextToken()

	stmt.End = p.parseExpression(LOWEST)
	if stmt.End == nil {
		return nil
	}
	if !p.expectPeek(token.DO) {
		return nil
	}
	p.nextToken()

	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseRepeatStatement parses `repeat S1; S2; ... until cond`. The body is
// a statement list without its own begin..end; the separator before
// 'until' may be omitted.
// PRE: curToken is REPEAT
// POST: curToken is the last token of the condition
func (p *Parser) parseRepeatStatement() *ast.RepeatStatement {
	stmt := &ast.RepeatStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.UNTIL) && !p.failed() {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.EOF) {
			p.addErrorf(p.curToken.Pos, "expected 'until', got end of file")
			return nil
		}

		body := p.parseStatement()
		if body == nil {
			return nil
		}
		stmt.Body = append(stmt.Body, body)

		if !p.peekTokenIs(token.SEMICOLON) && !p.peekTokenIs(token.UNTIL) {
			p.peekError(token.SEMICOLON)
			return nil
		}
		p.nextToken()
	}
	if p.failed() {
		return nil
	}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	return stmt
}
