// Package parser implements the recursive-descent parser for the Pascal
// subset using Pratt parsing for expressions.
//
// Conventions used throughout:
//   - PRE/POST comments state where curToken sits before and after a parse
//     function runs; most functions leave curToken on their construct's
//     last token, while the declaration-region functions stop on the token
//     after it, as their POST lines say.
//   - One-token lookahead via peekToken; expectPeek(type) is the only way
//     a function advances past a required token.
//   - The first unexpected token aborts the parse; there is no recovery.
package parser

import (
	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/pkg/token"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	RELATIONAL // = <> < <= > >=
	SUM        // + - or
	PRODUCT    // * / div mod and
	PREFIX     // -x, not x, +x
	CALL       // function(args)
	INDEX      // array[index]
)

// precedences maps token types to their precedence levels.
var precedences = map[token.TokenType]int{
	token.EQ:         RELATIONAL,
	token.NOT_EQ:     RELATIONAL,
	token.LESS:       RELATIONAL,
	token.GREATER:    RELATIONAL,
	token.LESS_EQ:    RELATIONAL,
	token.GREATER_EQ: RELATIONAL,
	token.PLUS:       SUM,
	token.MINUS:      SUM,
	token.OR:         SUM,
	token.ASTERISK:   PRODUCT,
	token.SLASH:      PRODUCT,
	token.DIV:        PRODUCT,
	token.MOD:        PRODUCT,
	token.AND:        PRODUCT,
	token.LPAREN:     CALL,
	token.LBRACK:     INDEX,
}

// prefixParseFn parses prefix expressions (literals, unary ops, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops, calls, indexing).
type infixParseFn func(ast.Expression) ast.Expression

// Parser parses a token stream into a Program AST.
type Parser struct {
	l              *lexer.Lexer
	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
	errors         []*Error
	curToken       token.Token
	peekToken      token.Token
}

// New creates a new Parser reading from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifierExpression)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseRealLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.MINUS, p.parseUnaryExpression)
	p.registerPrefix(token.PLUS, p.parseUnaryExpression)
	p.registerPrefix(token.NOT, p.parseUnaryExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.EQ, token.NOT_EQ, token.LESS, token.GREATER,
		token.LESS_EQ, token.GREATER_EQ,
		token.PLUS, token.MINUS, token.OR,
		token.ASTERISK, token.SLASH, token.DIV, token.MOD, token.AND,
	} {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACK, p.parseIndexExpression)

	// Prime curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the accumulated parser errors.
func (p *Parser) Errors() []*Error {
	return p.errors
}

// LexerErrors exposes the lexical errors encountered while tokenizing.
func (p *Parser) LexerErrors() []lexer.Error {
	return p.l.Errors()
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances when the next token has the expected type and
// records an error otherwise.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// failed reports whether the parse has already hit an error. Since the
// parser aborts at the first unexpected token, every loop checks this to
// avoid spinning on a token it will never consume.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func getPrecedence(tokenType token.TokenType) int {
	if prec, ok := precedences[tokenType]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	return getPrecedence(p.peekToken.Type)
}

// ParseProgram parses a complete program:
//
//	program Name; <declarations> begin ... end.
//
// It returns nil if any syntax error was encountered.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Token: p.curToken}

	if !p.curTokenIs(token.PROGRAM) {
		p.addErrorf(p.curToken.Pos, "expected 'program', got %s", describeToken(p.curToken))
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	program.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	p.nextToken()

	program.Decls = p.parseDeclarations()
	if p.failed() {
		return nil
	}

	if !p.curTokenIs(token.BEGIN) {
		p.addErrorf(p.curToken.Pos, "expected 'begin', got %s", describeToken(p.curToken))
		return nil
	}
	program.Body = p.parseBlockStatement()
	if program.Body == nil {
		return nil
	}

	if !p.expectPeek(token.DOT) {
		return nil
	}
	return program
}
