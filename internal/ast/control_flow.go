package ast

import (
	"bytes"

	"github.com/babych/go-pascal/pkg/token"
)

// IfStatement is `if cond then S1 [else S2]`.
type IfStatement struct {
	Token       token.Token // The IF token
	Condition   Expression
	Consequence Statement
	Alternative Statement // nil when there is no else branch
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" then ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// WhileStatement is `while cond do body`.
type WhileStatement struct {
	Token     token.Token // The WHILE token
	Condition Expression
	Body      Statement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	return "while " + ws.Condition.String() + " do " + ws.Body.String()
}

// ForStatement is `for i := start to|downto end do body`.
// The loop variable must be a bare identifier of type integer.
type ForStatement struct {
	Token    token.Token // The FOR token
	Variable *Identifier
	Start    Expression
	End      Expression
	Down     bool // true for downto
	Body     Statement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() token.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	out.WriteString(fs.Variable.String())
	out.WriteString(" := ")
	out.WriteString(fs.Start.String())
	if fs.Down {
		out.WriteString(" downto ")
	} else {
		out.WriteString(" to ")
	}
	out.WriteString(fs.End.String())
	out.WriteString(" do ")
	out.WriteString(fs.Body.String())
	return out.String()
}

// RepeatStatement is `repeat body until cond`. The body is a statement
// list without an enclosing begin..end.
type RepeatStatement struct {
	Token     token.Token // The REPEAT token
	Body      []Statement
	Condition Expression
}

func (rs *RepeatStatement) statementNode()       {}
func (rs *RepeatStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RepeatStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *RepeatStatement) String() string {
	var out bytes.Buffer
	out.WriteString("repeat\n")
	for _, s := range rs.Body {
		out.WriteString(s.String())
		out.WriteString(";\n")
	}
	out.WriteString("until ")
	out.WriteString(rs.Condition.String())
	return out.String()
}
