package ast

import (
	"bytes"

	"github.com/babych/go-pascal/pkg/token"
)

// BlockStatement is a begin..end statement list.
type BlockStatement struct {
	Token      token.Token // The BEGIN token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("begin\n")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(";\n")
	}
	out.WriteString("end")
	return out.String()
}

// AssignmentStatement is `target := value`. Target is an Identifier or an
// IndexExpression; anything else is rejected by the parser.
type AssignmentStatement struct {
	Token  token.Token // The := token
	Target Expression
	Value  Expression
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string {
	return as.Target.String() + " := " + as.Value.String()
}

// CallStatement invokes a procedure (or discards a function result):
// `Name` or `Name(args)`.
type CallStatement struct {
	Token     token.Token // The callee's IDENT token
	Name      *Identifier
	Arguments []Expression
}

func (cs *CallStatement) statementNode()       {}
func (cs *CallStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CallStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *CallStatement) String() string {
	var out bytes.Buffer
	out.WriteString(cs.Name.String())
	out.WriteString("(")
	for i, arg := range cs.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// WriteStatement is the built-in write/writeln. Newline distinguishes the
// two forms.
type WriteStatement struct {
	Token     token.Token // The write/writeln IDENT token
	Arguments []Expression
	Newline   bool
}

func (ws *WriteStatement) statementNode()       {}
func (ws *WriteStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WriteStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WriteStatement) String() string {
	var out bytes.Buffer
	if ws.Newline {
		out.WriteString("writeln(")
	} else {
		out.WriteString("write(")
	}
	for i, arg := range ws.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// ReadStatement is the built-in read/readln. Arguments must be l-values.
type ReadStatement struct {
	Token     token.Token // The read/readln IDENT token
	Arguments []Expression
	Newline   bool
}

func (rs *ReadStatement) statementNode()       {}
func (rs *ReadStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReadStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReadStatement) String() string {
	var out bytes.Buffer
	if rs.Newline {
		out.WriteString("readln(")
	} else {
		out.WriteString("read(")
	}
	for i, arg := range rs.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}
