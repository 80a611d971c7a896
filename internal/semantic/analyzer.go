// Package semantic implements the semantic analysis pass: it walks the
// AST depth-first, maintains the scope stack, enforces the declaration
// and type rules, and annotates every expression with its resolved type.
// Analysis aborts at the first violation.
package semantic

import (
	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/internal/types"
)

// Analyzer validates a parsed program against the language's declaration,
// scoping and type rules.
type Analyzer struct {
	symbols *SymbolTable
}

// NewAnalyzer creates an analyzer whose global scope is pre-populated
// with the I/O builtins.
func NewAnalyzer() *Analyzer {
	a := &Analyzer{symbols: NewSymbolTable()}
	defineBuiltins(a.symbols)
	return a
}

// Analyze checks the whole program. On success the AST is annotated in
// place: every expression carries its type and every identifier reference
// carries the declared spelling. The returned error is a *semantic.Error
// describing the first violation.
func (a *Analyzer) Analyze(program *ast.Program) error {
	for _, decl := range program.Decls {
		if err := a.analyzeDeclaration(decl); err != nil {
			return err
		}
	}
	return a.analyzeStatement(program.Body)
}

func (a *Analyzer) analyzeDeclaration(decl ast.Declaration) error {
	switch d := decl.(type) {
	case *ast.VarDeclaration:
		return a.analyzeVarDeclaration(d)
	case *ast.FunctionDecl:
		return a.analyzeFunctionDecl(d)
	default:
		return errorf(decl.Pos(), "unsupported declaration %T", decl)
	}
}

func (a *Analyzer) analyzeVarDeclaration(decl *ast.VarDeclaration) error {
	varType, err := a.typeFromNode(decl.VarType)
	if err != nil {
		return err
	}
	for _, name := range decl.Names {
		sym := &Symbol{Name: name.Value, Kind: KindVariable, Type: varType}
		if !a.symbols.Define(sym) {
			return errorf(name.Pos(), "Duplicate declaration '%s'", name.Value)
		}
		name.SetType(varType)
	}
	return nil
}

func (a *Analyzer) analyzeFunctionDecl(decl *ast.FunctionDecl) error {
	var returnType types.Type
	if decl.IsFunction() {
		var err error
		returnType, err = a.typeFromNode(decl.ReturnType)
		if err != nil {
			return err
		}
	}

	var params []types.Param
	for _, group := range decl.Parameters {
		paramType, err := a.typeFromNode(group.ParamType)
		if err != nil {
			return err
		}
		for _, name := range group.Names {
			params = append(params, types.Param{
				Name:  name.Value,
				Type:  paramType,
				ByRef: group.ByRef,
			})
		}
	}
	signature := types.NewFunctionType(params, returnType)

	kind := KindProcedure
	if decl.IsFunction() {
		kind = KindFunction
	}
	sym := &Symbol{Name: decl.Name.Value, Kind: kind, Type: returnType, Signature: signature}
	if !a.symbols.Define(sym) {
		return errorf(decl.Name.Pos(), "Duplicate declaration '%s'", decl.Name.Value)
	}

	// Body scope: formals first, then the return slot, then locals.
	a.symbols = NewEnclosedSymbolTable(a.symbols)
	defer func() { a.symbols = a.symbols.Outer() }()

	for _, group := range decl.Parameters {
		paramType, err := a.typeFromNode(group.ParamType)
		if err != nil {
			return err
		}
		for _, name := range group.Names {
			psym := &Symbol{
				Name:  name.Value,
				Kind:  KindParameter,
				Type:  paramType,
				ByRef: group.ByRef,
			}
			if !a.symbols.Define(psym) {
				return errorf(name.Pos(), "Duplicate declaration '%s'", name.Value)
			}
			name.SetType(paramType)
		}
	}

	if decl.IsFunction() {
		a.symbols.Define(&Symbol{
			Name:      decl.Name.Value,
			Kind:      KindFunction,
			Type:      returnType,
			Signature: signature,
			IsResult:  true,
		})
	}

	for _, local := range decl.Locals {
		if err := a.analyzeDeclaration(local); err != nil {
			return err
		}
	}
	return a.analyzeStatement(decl.Body)
}

// typeFromNode resolves a syntactic type specification to a type.
func (a *Analyzer) typeFromNode(node ast.TypeNode) (types.Type, error) {
	switch n := node.(type) {
	case *ast.SimpleTypeNode:
		t, err := types.TypeFromString(n.Name)
		if err != nil {
			return nil, errorf(n.Pos(), "Unknown type '%s'", n.Name)
		}
		return t, nil
	case *ast.ArrayTypeNode:
		element, err := a.typeFromNode(n.Element)
		if err != nil {
			return nil, err
		}
		bounds := make([]types.IndexRange, 0, len(n.Ranges))
		for _, r := range n.Ranges {
			if r.Low > r.High {
				return nil, errorf(r.Pos(), "Invalid index range %d..%d", r.Low, r.High)
			}
			bounds = append(bounds, types.IndexRange{Low: r.Low, High: r.High})
		}
		return types.NewArrayType(element, bounds...), nil
	default:
		return nil, errorf(node.Pos(), "unsupported type specification %T", node)
	}
}
