package semantic

import (
	"testing"

	"github.com/babych/go-pascal/internal/types"
)

func TestDefineAndResolve(t *testing.T) {
	st := NewSymbolTable()

	if !st.Define(&Symbol{Name: "Counter", Kind: KindVariable, Type: types.INTEGER}) {
		t.Fatal("Define should succeed for a new name")
	}

	sym, ok := st.Resolve("counter")
	if !ok {
		t.Fatal("Resolve should find the symbol case-insensitively")
	}
	if sym.Name != "Counter" {
		t.Errorf("resolved name = %q, want declared spelling Counter", sym.Name)
	}
	if sym.Type != types.INTEGER {
		t.Errorf("resolved type = %v, want Integer", sym.Type)
	}
}

func TestDefineRejectsDuplicates(t *testing.T) {
	st := NewSymbolTable()
	st.Define(&Symbol{Name: "x", Kind: KindVariable, Type: types.INTEGER})

	if st.Define(&Symbol{Name: "X", Kind: KindVariable, Type: types.REAL}) {
		t.Error("Define should reject a case-insensitive duplicate")
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	global := NewSymbolTable()
	global.Define(&Symbol{Name: "x", Kind: KindVariable, Type: types.INTEGER})
	global.Define(&Symbol{Name: "g", Kind: KindVariable, Type: types.STRING})

	inner := NewEnclosedSymbolTable(global)
	if !inner.Define(&Symbol{Name: "X", Kind: KindVariable, Type: types.REAL}) {
		t.Fatal("inner scope may shadow an outer name")
	}

	sym, ok := inner.Resolve("x")
	if !ok || sym.Type != types.REAL {
		t.Errorf("inner resolve = %v, want the shadowing Real binding", sym)
	}

	sym, ok = inner.Resolve("g")
	if !ok || sym.Type != types.STRING {
		t.Error("lookup should walk outward to the global scope")
	}

	if _, ok := inner.ResolveLocal("g"); ok {
		t.Error("ResolveLocal must not walk outward")
	}

	sym, _ = global.Resolve("x")
	if sym.Type != types.INTEGER {
		t.Error("outer binding must be untouched by shadowing")
	}
}

func TestSymbolPredicates(t *testing.T) {
	variable := &Symbol{Name: "v", Kind: KindVariable, Type: types.INTEGER}
	param := &Symbol{Name: "p", Kind: KindParameter, Type: types.REAL}
	proc := &Symbol{Name: "q", Kind: KindProcedure, Signature: types.NewFunctionType(nil, nil)}
	fn := &Symbol{Name: "f", Kind: KindFunction, Signature: types.NewFunctionType(nil, types.INTEGER)}
	result := &Symbol{Name: "f", Kind: KindFunction, Type: types.INTEGER, IsResult: true,
		Signature: types.NewFunctionType(nil, types.INTEGER)}
	builtin := &Symbol{Name: "writeln", Kind: KindBuiltin}

	for _, s := range []*Symbol{variable, param, result} {
		if !s.IsStorage() {
			t.Errorf("%s should be storage", s.Name)
		}
	}
	for _, s := range []*Symbol{proc, fn, builtin} {
		if s == fn && fn.IsStorage() {
			t.Error("a function symbol is not storage")
		}
		if s == proc && proc.IsStorage() {
			t.Error("a procedure symbol is not storage")
		}
	}
	for _, s := range []*Symbol{proc, fn, result, builtin} {
		if !s.IsCallable() {
			t.Errorf("%s should be callable", s.Name)
		}
	}
	if variable.IsCallable() {
		t.Error("a variable is not callable")
	}
}
