package semantic

import (
	"github.com/babych/go-pascal/internal/types"
	"github.com/babych/go-pascal/pkg/ident"
)

// SymbolKind classifies what a name is bound to.
type SymbolKind int

const (
	KindVariable SymbolKind = iota
	KindParameter
	KindProcedure
	KindFunction
	KindBuiltin
)

func (k SymbolKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindParameter:
		return "parameter"
	case KindProcedure:
		return "procedure"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

// Symbol is a single named entity. Name keeps the declared spelling;
// lookup is case-insensitive.
//
// For callables, Signature holds the ordered formal signature and, for
// functions, the return type. A function's implicit return slot is the
// symbol bound to the function's own name inside its body scope: it has
// KindFunction, IsResult set, Type equal to the return type, and the same
// Signature (so recursive calls still resolve).
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      types.Type
	Signature *types.FunctionType
	ByRef     bool // parameters only: pass-by-reference
	IsResult  bool // the enclosing function's return slot
}

// IsCallable reports whether the symbol may appear as a callee.
func (s *Symbol) IsCallable() bool {
	return s.Signature != nil || s.Kind == KindBuiltin
}

// IsStorage reports whether the symbol denotes a storage location
// (assignable, readable, and addressable as an l-value).
func (s *Symbol) IsStorage() bool {
	return s.Kind == KindVariable || s.Kind == KindParameter || s.IsResult
}

// SymbolTable manages the symbols of one scope. Scopes link parent-wards;
// lookup walks outward, so an inner name shadows an outer one but never
// collides with it.
type SymbolTable struct {
	symbols *ident.Map[*Symbol]
	outer   *SymbolTable
}

// NewSymbolTable creates a fresh scope with no parent.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: ident.NewMap[*Symbol]()}
}

// NewEnclosedSymbolTable creates a scope nested inside outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	st := NewSymbolTable()
	st.outer = outer
	return st
}

// Define inserts a symbol into this scope. It reports false when a
// case-insensitive match is already declared in the same scope.
func (st *SymbolTable) Define(sym *Symbol) bool {
	return st.symbols.SetIfAbsent(sym.Name, sym)
}

// Resolve looks a name up in this scope and then outward.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := st.symbols.Get(name); ok {
		return sym, true
	}
	if st.outer != nil {
		return st.outer.Resolve(name)
	}
	return nil, false
}

// ResolveLocal looks a name up in this scope only.
func (st *SymbolTable) ResolveLocal(name string) (*Symbol, bool) {
	return st.symbols.Get(name)
}

// Outer returns the enclosing scope, or nil for the global scope.
func (st *SymbolTable) Outer() *SymbolTable {
	return st.outer
}
