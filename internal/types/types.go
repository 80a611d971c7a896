// Package types defines the compile-time type system of the Pascal subset:
// the five primitive types, static arrays with integer index bounds, and
// callable signatures.
package types

import (
	"fmt"
	"strings"

	"github.com/babych/go-pascal/pkg/ident"
)

// Type is the interface implemented by all types.
type Type interface {
	// String returns the Pascal spelling of the type for diagnostics.
	String() string

	// Equals reports whether two types are identical.
	Equals(other Type) bool
}

// BasicType represents one of the primitive types.
type BasicType struct {
	name string
}

// Primitive type singletons. Comparisons are by pointer identity.
var (
	INTEGER = &BasicType{name: "Integer"}
	REAL    = &BasicType{name: "Real"}
	BOOLEAN = &BasicType{name: "Boolean"}
	CHAR    = &BasicType{name: "Char"}
	STRING  = &BasicType{name: "String"}

	// VOID is the "return type" of procedures. It is never the type of an
	// expression and never spellable in source.
	VOID = &BasicType{name: "Void"}
)

func (t *BasicType) String() string { return t.name }

func (t *BasicType) Equals(other Type) bool {
	o, ok := other.(*BasicType)
	return ok && t == o
}

// IndexRange is one array dimension's inclusive integer bounds.
type IndexRange struct {
	Low  int64
	High int64
}

// ArrayType represents a static array with one or more integer-indexed
// dimensions.
type ArrayType struct {
	Element Type
	Bounds  []IndexRange
}

// NewArrayType creates an array type over the given element type and bounds.
func NewArrayType(element Type, bounds ...IndexRange) *ArrayType {
	return &ArrayType{Element: element, Bounds: bounds}
}

func (t *ArrayType) String() string {
	var sb strings.Builder
	sb.WriteString("array[")
	for i, b := range t.Bounds {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d..%d", b.Low, b.High)
	}
	sb.WriteString("] of ")
	sb.WriteString(t.Element.String())
	return sb.String()
}

func (t *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	if !ok || len(t.Bounds) != len(o.Bounds) {
		return false
	}
	for i := range t.Bounds {
		if t.Bounds[i] != o.Bounds[i] {
			return false
		}
	}
	return t.Element.Equals(o.Element)
}

// Rank returns the number of index dimensions.
func (t *ArrayType) Rank() int { return len(t.Bounds) }

// Param is a single formal parameter of a callable signature.
type Param struct {
	Name  string
	Type  Type
	ByRef bool
}

// FunctionType is the signature of a procedure or function.
// Procedures have ReturnType == VOID.
type FunctionType struct {
	Params     []Param
	ReturnType Type
}

// NewFunctionType creates a callable signature.
func NewFunctionType(params []Param, returnType Type) *FunctionType {
	if returnType == nil {
		returnType = VOID
	}
	return &FunctionType{Params: params, ReturnType: returnType}
}

// IsProcedure reports whether the signature has no return value.
func (t *FunctionType) IsProcedure() bool { return t.ReturnType == VOID }

func (t *FunctionType) String() string {
	var sb strings.Builder
	if t.IsProcedure() {
		sb.WriteString("procedure(")
	} else {
		sb.WriteString("function(")
	}
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString("; ")
		}
		if p.ByRef {
			sb.WriteString("var ")
		}
		sb.WriteString(p.Type.String())
	}
	sb.WriteString(")")
	if !t.IsProcedure() {
		sb.WriteString(": ")
		sb.WriteString(t.ReturnType.String())
	}
	return sb.String()
}

func (t *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(t.Params) != len(o.Params) {
		return false
	}
	for i := range t.Params {
		if t.Params[i].ByRef != o.Params[i].ByRef ||
			!t.Params[i].Type.Equals(o.Params[i].Type) {
			return false
		}
	}
	return t.ReturnType.Equals(o.ReturnType)
}

// primitivesByName maps normalized type spellings to the primitive types.
var primitivesByName = map[string]*BasicType{
	"integer": INTEGER,
	"real":    REAL,
	"boolean": BOOLEAN,
	"char":    CHAR,
	"string":  STRING,
}

// TypeFromString resolves a primitive type name case-insensitively.
func TypeFromString(name string) (Type, error) {
	if t, ok := primitivesByName[ident.Normalize(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown type '%s'", name)
}
