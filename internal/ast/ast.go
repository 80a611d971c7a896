// Package ast defines the Abstract Syntax Tree node types for the Pascal
// subset. Every node carries the token that introduced it, so diagnostics
// can always point at a source position.
package ast

import (
	"bytes"
	"strings"

	"github.com/babych/go-pascal/internal/types"
	"github.com/babych/go-pascal/pkg/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// TokenLiteral returns the literal value of the token this node is associated with.
	TokenLiteral() string

	// String returns a string representation of the node for debugging and testing.
	String() string

	// Pos returns the position of the node in the source code for error reporting.
	Pos() token.Position
}

// Expression represents any node that produces a value. The semantic
// analyzer annotates every expression with its resolved type in place.
type Expression interface {
	Node
	expressionNode()

	// Type returns the resolved type, or nil before semantic analysis.
	Type() types.Type

	// SetType records the resolved type.
	SetType(t types.Type)
}

// Statement represents a node that performs an action but doesn't produce a value.
type Statement interface {
	Node
	statementNode()
}

// Declaration represents a declaration of variables, a procedure or a function.
type Declaration interface {
	Node
	declarationNode()
}

// typed is embedded by every expression node to hold the resolved type.
type typed struct {
	typ types.Type
}

func (t *typed) Type() types.Type      { return t.typ }
func (t *typed) SetType(tp types.Type) { t.typ = tp }

// Program is the root node: `program Name; <decls> begin ... end.`
type Program struct {
	Token token.Token // The PROGRAM token
	Name  *Identifier // The program name
	Decls []Declaration
	Body  *BlockStatement // The main begin..end block
}

func (p *Program) TokenLiteral() string { return p.Token.Literal }
func (p *Program) Pos() token.Position  { return p.Token.Pos }
func (p *Program) String() string {
	var out bytes.Buffer
	out.WriteString("program " + p.Name.String() + ";\n")
	for _, d := range p.Decls {
		out.WriteString(d.String())
	}
	if p.Body != nil {
		out.WriteString(p.Body.String())
	}
	out.WriteString(".")
	return out.String()
}

// Identifier represents a name reference (variable, callable, loop index).
// Value starts as the spelling from the source; the semantic analyzer
// rewrites it to the declared spelling so later phases agree on casing.
type Identifier struct {
	typed
	Token token.Token // The IDENT token
	Value string      // The identifier name
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() token.Position  { return i.Token.Pos }

// IntegerLiteral represents an integer literal value.
type IntegerLiteral struct {
	typed
	Token token.Token // The INT token
	Value int64       // The parsed integer value
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }

// RealLiteral represents a real (floating point) literal value.
type RealLiteral struct {
	typed
	Token token.Token // The FLOAT token
	Value float64     // The parsed value
}

func (rl *RealLiteral) expressionNode()      {}
func (rl *RealLiteral) TokenLiteral() string { return rl.Token.Literal }
func (rl *RealLiteral) String() string       { return rl.Token.Literal }
func (rl *RealLiteral) Pos() token.Position  { return rl.Token.Pos }

// StringLiteral represents a quoted string literal. Value holds the
// unescaped text, without the surrounding quotes.
type StringLiteral struct {
	typed
	Token token.Token // The STRING token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return "'" + sl.Value + "'" }
func (sl *StringLiteral) Pos() token.Position  { return sl.Token.Pos }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	typed
	Token token.Token // The TRUE or FALSE token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }
func (bl *BooleanLiteral) Pos() token.Position  { return bl.Token.Pos }

// BinaryExpression represents a binary operation (e.g., a + b, x < y).
type BinaryExpression struct {
	typed
	Token    token.Token // The operator token
	Left     Expression
	Operator string // The operator as written: +, -, *, /, div, mod, and, or, =, <>, ...
	Right    Expression
}

func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Literal }
func (be *BinaryExpression) Pos() token.Position  { return be.Token.Pos }
func (be *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

// UnaryExpression represents a unary operation (e.g., -x, not b).
type UnaryExpression struct {
	typed
	Token    token.Token // The operator token
	Operator string      // -, + or not
	Right    Expression
}

func (ue *UnaryExpression) expressionNode()      {}
func (ue *UnaryExpression) TokenLiteral() string { return ue.Token.Literal }
func (ue *UnaryExpression) Pos() token.Position  { return ue.Token.Pos }
func (ue *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Operator)
	if strings.EqualFold(ue.Operator, "not") {
		out.WriteString(" ")
	}
	out.WriteString(ue.Right.String())
	out.WriteString(")")
	return out.String()
}

// IndexExpression represents an array element reference: a[i] or a[i, j].
type IndexExpression struct {
	typed
	Token   token.Token // The '[' token
	Left    Expression  // The array being indexed
	Indices []Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() token.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ie.Left.String())
	out.WriteString("[")
	for i, idx := range ie.Indices {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(idx.String())
	}
	out.WriteString("]")
	return out.String()
}

// CallExpression represents a function call in expression position.
type CallExpression struct {
	typed
	Token     token.Token // The '(' token
	Function  *Identifier
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() token.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	for i, arg := range ce.Arguments {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}
