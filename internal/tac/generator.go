// Package tac lowers a semantically validated AST to three-address code,
// emitted as one instruction per line.
//
// The generator owns two fresh-name counters for the whole compilation:
// temporaries t0, t1, ... and labels L0, L1, ... Neither counter resets,
// so identical input always produces byte-identical output.
//
// Routines for declared procedures and functions are emitted first, each
// as `Name:` ... `return`, with nested routines flattened ahead of their
// parent. The main block follows under `main:` and ends with `halt`.
package tac

import (
	"fmt"
	"strings"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/ident"
)

// Generator walks a validated AST and emits TAC text.
type Generator struct {
	out        strings.Builder
	routines   *ident.Map[*ast.FunctionDecl]
	tempCount  int
	labelCount int
}

// NewGenerator creates a generator with fresh counters.
func NewGenerator() *Generator {
	return &Generator{routines: ident.NewMap[*ast.FunctionDecl]()}
}

// Generate lowers the program and returns the full TAC listing. The
// input must have passed semantic analysis; unexpected node shapes are
// reported as errors rather than panics.
func (g *Generator) Generate(program *ast.Program) (string, error) {
	g.collectRoutines(program.Decls)

	for _, decl := range program.Decls {
		fn, ok := decl.(*ast.FunctionDecl)
		if !ok {
			continue // variable declarations emit no code
		}
		if err := g.genRoutine(fn); err != nil {
			return "", err
		}
	}

	g.emitLabel("main")
	for _, stmt := range program.Body.Statements {
		if err := g.genStatement(stmt); err != nil {
			return "", err
		}
	}
	g.emit("halt")
	return g.out.String(), nil
}

// collectRoutines indexes every routine declaration, including nested
// ones, so call lowering can consult formal pass modes.
func (g *Generator) collectRoutines(decls []ast.Declaration) {
	for _, decl := range decls {
		if fn, ok := decl.(*ast.FunctionDecl); ok {
			g.routines.Set(fn.Name.Value, fn)
			g.collectRoutines(fn.Locals)
		}
	}
}

// genRoutine emits one routine, preceded by any routines nested in it.
func (g *Generator) genRoutine(fn *ast.FunctionDecl) error {
	for _, local := range fn.Locals {
		if nested, ok := local.(*ast.FunctionDecl); ok {
			if err := g.genRoutine(nested); err != nil {
				return err
			}
		}
	}

	g.emitLabel(fn.Name.Value)
	for _, stmt := range fn.Body.Statements {
		if err := g.genStatement(stmt); err != nil {
			return err
		}
	}
	g.emit("return")
	return nil
}

// newTemp mints the next temporary name.
func (g *Generator) newTemp() string {
	t := fmt.Sprintf("t%d", g.tempCount)
	g.tempCount++
	return t
}

// newLabel mints the next label name.
func (g *Generator) newLabel() string {
	l := fmt.Sprintf("L%d", g.labelCount)
	g.labelCount++
	return l
}

// emit writes one instruction line.
func (g *Generator) emit(format string, args ...any) {
	fmt.Fprintf(&g.out, format+"\n", args...)
}

// emitLabel writes a label definition line.
func (g *Generator) emitLabel(name string) {
	g.emit("%s:", name)
}
