package parser

import (
	"strconv"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/token"
)

// parseExpression parses an expression with precedence climbing.
// PRE: curToken is the expression's first token
// POST: curToken is the expression's last token
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefixFn, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefixFn()

	for leftExp != nil && precedence < p.peekPrecedence() {
		infixFn, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return leftExp
		}
		p.nextToken()
		leftExp = infixFn(leftExp)
	}
	return leftExp
}

// parseIdentifierExpression parses a bare identifier in expression
// position. Calls and indexing are attached by the infix loop.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseRealLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as real", p.curToken.Literal)
		return nil
	}
	return &ast.RealLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

// parseUnaryExpression parses `-x`, `+x` and `not x`.
func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()

	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseGroupedExpression parses `( expr )`.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// parseBinaryExpression parses the right-hand side of a binary operator.
// All binary operators are left-associative at their level.
// PRE: curToken is the operator
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := getPrecedence(p.curToken.Type)
	p.nextToken()

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseCallExpression parses `f(args)` in expression position. Only a
// plain identifier can be called.
// PRE: curToken is '(' and left is the callee
// POST: curToken is ')'
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	callee, ok := left.(*ast.Identifier)
	if !ok {
		p.addErrorf(p.curToken.Pos, "cannot call %s", left.String())
		return nil
	}

	expr := &ast.CallExpression{Token: p.curToken, Function: callee}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	if p.failed() {
		return nil
	}
	return expr
}

// parseIndexExpression parses `a[i]` and `a[i, j]`.
// PRE: curToken is '[' and left is the array expression
// POST: curToken is ']'
func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	expr.Indices = p.parseExpressionList(token.RBRACK)
	if p.failed() {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated expression list up to the
// given closing token. The list may be empty.
// PRE: curToken is the opening delimiter
// POST: curToken is the closing delimiter
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	list = append(list, first)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		next := p.parseExpression(LOWEST)
		if next == nil {
			return nil
		}
		list = append(list, next)
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}
