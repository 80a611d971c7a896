package parser

import (
	"fmt"

	"github.com/babych/go-pascal/pkg/token"
)

// Error represents a parsing error with position information.
type Error struct {
	Message string
	Pos     token.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

// addErrorf records an error at the given position. Only the first error
// matters (the parser aborts), but later errors are kept for debugging.
func (p *Parser) addErrorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &Error{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

// peekError records an "expected X, got Y" error at the lookahead token.
func (p *Parser) peekError(t token.TokenType) {
	p.addErrorf(p.peekToken.Pos, "expected %s, got %s", describeTokenType(t), describeToken(p.peekToken))
}

// noPrefixParseFnError reports a token that cannot start an expression.
func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.addErrorf(tok.Pos, "unexpected %s in expression", describeToken(tok))
}

// describeToken renders a token for error messages: keywords and
// punctuation by their spelling, literals by their category.
func describeToken(tok token.Token) string {
	switch tok.Type {
	case token.EOF:
		return "end of file"
	case token.IDENT:
		return fmt.Sprintf("identifier '%s'", tok.Literal)
	case token.INT, token.FLOAT:
		return fmt.Sprintf("number '%s'", tok.Literal)
	case token.STRING:
		return "string literal"
	default:
		return fmt.Sprintf("'%s'", tok.Literal)
	}
}

// describeTokenType renders an expected token type for error messages.
func describeTokenType(t token.TokenType) string {
	if s, ok := tokenSpellings[t]; ok {
		return "'" + s + "'"
	}
	switch t {
	case token.IDENT:
		return "identifier"
	case token.INT:
		return "integer literal"
	case token.EOF:
		return "end of file"
	default:
		return t.String()
	}
}

// tokenSpellings maps fixed-spelling token types back to their source form.
var tokenSpellings = map[token.TokenType]string{
	token.PROGRAM:   "program",
	token.VAR:       "var",
	token.PROCEDURE: "procedure",
	token.FUNCTION:  "function",
	token.ARRAY:     "array",
	token.OF:        "of",
	token.BEGIN:     "begin",
	token.END:       "end",
	token.IF:        "if",
	token.THEN:      "then",
	token.ELSE:      "else",
	token.WHILE:     "while",
	token.REPEAT:    "repeat",
	token.UNTIL:     "until",
	token.FOR:       "for",
	token.TO:        "to",
	token.DOWNTO:    "downto",
	token.DO:        "do",
	token.DIV:       "div",
	token.MOD:       "mod",
	token.AND:       "and",
	token.OR:        "or",
	token.NOT:       "not",
	token.LPAREN:    "(",
	token.RPAREN:    ")",
	token.LBRACK:    "[",
	token.RBRACK:    "]",
	token.SEMICOLON: ";",
	token.COMMA:     ",",
	token.DOT:       ".",
	token.COLON:     ":",
	token.DOTDOT:    "..",
	token.ASSIGN:    ":=",
}
