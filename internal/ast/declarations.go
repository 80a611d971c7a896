package ast

import (
	"bytes"
	"strconv"

	"github.com/babych/go-pascal/pkg/token"
)

// TypeNode represents a type specification in a declaration:
// a simple type name or an array type.
type TypeNode interface {
	Node
	typeNode()
}

// SimpleTypeNode is a bare type name: integer, real, boolean, char, string.
type SimpleTypeNode struct {
	Token token.Token // The type name token
	Name  string
}

func (st *SimpleTypeNode) typeNode()            {}
func (st *SimpleTypeNode) TokenLiteral() string { return st.Token.Literal }
func (st *SimpleTypeNode) String() string       { return st.Name }
func (st *SimpleTypeNode) Pos() token.Position  { return st.Token.Pos }

// RangeNode is one array dimension: lo..hi with integer literal bounds.
type RangeNode struct {
	Token token.Token // The low bound token
	Low   int64
	High  int64
}

func (r *RangeNode) TokenLiteral() string { return r.Token.Literal }
func (r *RangeNode) Pos() token.Position  { return r.Token.Pos }
func (r *RangeNode) String() string {
	var out bytes.Buffer
	out.WriteString(strconv.FormatInt(r.Low, 10))
	out.WriteString("..")
	out.WriteString(strconv.FormatInt(r.High, 10))
	return out.String()
}

// ArrayTypeNode is `array[lo..hi, ...] of <element>`.
type ArrayTypeNode struct {
	Token   token.Token // The ARRAY token
	Ranges  []*RangeNode
	Element TypeNode
}

func (at *ArrayTypeNode) typeNode()            {}
func (at *ArrayTypeNode) TokenLiteral() string { return at.Token.Literal }
func (at *ArrayTypeNode) Pos() token.Position  { return at.Token.Pos }
func (at *ArrayTypeNode) String() string {
	var out bytes.Buffer
	out.WriteString("array[")
	for i, r := range at.Ranges {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(r.String())
	}
	out.WriteString("] of ")
	out.WriteString(at.Element.String())
	return out.String()
}

// VarDeclaration declares one or more variables of a shared type:
// `var x, y: integer;`
type VarDeclaration struct {
	Token   token.Token // The section's VAR token, shared by every group in it
	Names   []*Identifier
	VarType TypeNode
}

func (vd *VarDeclaration) declarationNode()     {}
func (vd *VarDeclaration) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDeclaration) Pos() token.Position  { return vd.Token.Pos }
func (vd *VarDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	for i, n := range vd.Names {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(n.String())
	}
	out.WriteString(": ")
	out.WriteString(vd.VarType.String())
	out.WriteString(";\n")
	return out.String()
}

// Parameter is one formal parameter group: `x, y: integer` or
// `var s: string`. ByRef marks pass-by-reference (var parameters).
type Parameter struct {
	Token     token.Token // The first name token (or VAR)
	Names     []*Identifier
	ParamType TypeNode
	ByRef     bool
}

func (p *Parameter) TokenLiteral() string { return p.Token.Literal }
func (p *Parameter) Pos() token.Position  { return p.Token.Pos }
func (p *Parameter) String() string {
	var out bytes.Buffer
	if p.ByRef {
		out.WriteString("var ")
	}
	for i, n := range p.Names {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(n.String())
	}
	out.WriteString(": ")
	out.WriteString(p.ParamType.String())
	return out.String()
}

// FunctionDecl declares a procedure or a function. Procedures have a nil
// ReturnType. Locals may contain nested variable, procedure and function
// declarations.
type FunctionDecl struct {
	Token      token.Token // The FUNCTION or PROCEDURE token
	Name       *Identifier
	Parameters []*Parameter
	ReturnType TypeNode // nil for procedures
	Locals     []Declaration
	Body       *BlockStatement
}

// IsFunction reports whether the declaration has a return type.
func (fd *FunctionDecl) IsFunction() bool { return fd.ReturnType != nil }

func (fd *FunctionDecl) declarationNode()     {}
func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDecl) Pos() token.Position  { return fd.Token.Pos }
func (fd *FunctionDecl) String() string {
	var out bytes.Buffer
	if fd.IsFunction() {
		out.WriteString("function ")
	} else {
		out.WriteString("procedure ")
	}
	out.WriteString(fd.Name.String())
	if len(fd.Parameters) > 0 {
		out.WriteString("(")
		for i, p := range fd.Parameters {
			if i > 0 {
				out.WriteString("; ")
			}
			out.WriteString(p.String())
		}
		out.WriteString(")")
	}
	if fd.IsFunction() {
		out.WriteString(": ")
		out.WriteString(fd.ReturnType.String())
	}
	out.WriteString(";\n")
	for _, d := range fd.Locals {
		out.WriteString(d.String())
	}
	if fd.Body != nil {
		out.WriteString(fd.Body.String())
	}
	out.WriteString(";\n")
	return out.String()
}
