// Package token defines the token types shared by the lexer, parser and
// downstream phases. Pascal is case-insensitive, so keyword lookup goes
// through ident.Normalize while the token keeps the user's spelling.
package token

import (
	"fmt"

	"github.com/babych/go-pascal/pkg/ident"
)

// Position describes a location in the source text.
// Line and Column are 1-based; Column counts runes, not bytes.
// Offset is the byte offset of the position within the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position has a plausible line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Token is a single lexical token: its type, the literal text as it
// appeared in the source (unquoted for strings), and its start position.
// Tokens are produced once by the lexer and never mutated.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// NewToken creates a token at the given position.
func NewToken(tokenType TokenType, literal string, pos Position) Token {
	return Token{Type: tokenType, Literal: literal, Pos: pos}
}

// String returns a debug representation like `IDENT("foo") at 1:5`.
// Long literals are truncated to keep dumps readable.
func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("EOF at %s", t.Pos)
	}
	literal := t.Literal
	if len(literal) > 20 {
		return fmt.Sprintf("%s(%q...) at %s", t.Type, literal[:20], t.Pos)
	}
	return fmt.Sprintf("%s(%q) at %s", t.Type, literal, t.Pos)
}

// keywords maps normalized identifier spellings to keyword token types.
var keywords = map[string]TokenType{
	"program":   PROGRAM,
	"var":       VAR,
	"procedure": PROCEDURE,
	"function":  FUNCTION,
	"array":     ARRAY,
	"of":        OF,
	"begin":     BEGIN,
	"end":       END,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"while":     WHILE,
	"repeat":    REPEAT,
	"until":     UNTIL,
	"for":       FOR,
	"to":        TO,
	"downto":    DOWNTO,
	"do":        DO,
	"div":       DIV,
	"mod":       MOD,
	"and":       AND,
	"or":        OR,
	"not":       NOT,
	"true":      TRUE,
	"false":     FALSE,
}

// LookupIdent returns the keyword token type for the given identifier
// spelling, or IDENT if it is not a keyword. Matching is case-insensitive.
func LookupIdent(name string) TokenType {
	if tt, ok := keywords[ident.Normalize(name)]; ok {
		return tt
	}
	return IDENT
}
