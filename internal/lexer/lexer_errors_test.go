package lexer

import (
	"strings"
	"testing"

	"github.com/babych/go-pascal/pkg/token"
)

func TestUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		ch     string
		line   int
		column int
	}{
		{"at sign", "x := @", "@", 1, 6},
		{"hash", "#", "#", 1, 1},
		{"question mark", "begin\n  ?\nend", "?", 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			var illegal token.Token
			for {
				tok := l.NextToken()
				if tok.Type == token.ILLEGAL || tok.Type == token.EOF {
					illegal = tok
					break
				}
			}
			if illegal.Type != token.ILLEGAL {
				t.Fatal("expected an ILLEGAL token")
			}
			if illegal.Literal != tt.ch {
				t.Errorf("illegal literal = %q, want %q", illegal.Literal, tt.ch)
			}

			errs := l.Errors()
			if len(errs) == 0 {
				t.Fatal("expected a lexer error")
			}
			if !strings.Contains(errs[0].Message, "Unexpected character") {
				t.Errorf("error = %q, want mention of Unexpected character", errs[0].Message)
			}
			if errs[0].Pos.Line != tt.line || errs[0].Pos.Column != tt.column {
				t.Errorf("error position = %d:%d, want %d:%d",
					errs[0].Pos.Line, errs[0].Pos.Column, tt.line, tt.column)
			}
		})
	}
}

func TestErrorImplementsError(t *testing.T) {
	err := &Error{Message: "Unexpected character '@'", Pos: token.Position{Line: 1, Column: 6}}
	if err.Error() != "Unexpected character '@'" {
		t.Errorf("Error() = %q", err.Error())
	}
}
