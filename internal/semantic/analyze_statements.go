package semantic

import (
	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/internal/types"
	"github.com/babych/go-pascal/pkg/ident"
	"github.com/babych/go-pascal/pkg/token"
)

func (a *Analyzer) analyzeStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			if err := a.analyzeStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.AssignmentStatement:
		return a.analyzeAssignment(s)
	case *ast.IfStatement:
		return a.analyzeIf(s)
	case *ast.WhileStatement:
		return a.analyzeWhile(s)
	case *ast.ForStatement:
		return a.analyzeFor(s)
	case *ast.RepeatStatement:
		return a.analyzeRepeat(s)
	case *ast.CallStatement:
		return a.analyzeCallStatement(s)
	case *ast.WriteStatement:
		return a.analyzeWrite(s)
	case *ast.ReadStatement:
		return a.analyzeRead(s)
	default:
		return errorf(stmt.Pos(), "unsupported statement %T", stmt)
	}
}

func (a *Analyzer) analyzeAssignment(stmt *ast.AssignmentStatement) error {
	targetType, err := a.analyzeLValue(stmt.Target, "assign to")
	if err != nil {
		return err
	}
	valueType, err := a.analyzeExpression(stmt.Value)
	if err != nil {
		return err
	}
	if !a.assignable(targetType, stmt.Value, valueType) {
		return errorf(stmt.Pos(), "Type mismatch: cannot assign %s to %s", valueType, targetType)
	}
	return nil
}

// analyzeLValue checks that expr denotes a storage location (a variable
// or an array element) and returns its type. verb names the attempted
// use for error messages.
func (a *Analyzer) analyzeLValue(expr ast.Expression, verb string) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		sym, ok := a.symbols.Resolve(e.Value)
		if !ok {
			return nil, errorf(e.Pos(), "Undefined identifier '%s'", e.Value)
		}
		if !sym.IsStorage() {
			return nil, errorf(e.Pos(), "Cannot %s %s '%s'", verb, sym.Kind, sym.Name)
		}
		e.Value = sym.Name
		e.SetType(sym.Type)
		return sym.Type, nil
	case *ast.IndexExpression:
		return a.analyzeIndexExpression(e)
	default:
		return nil, errorf(expr.Pos(), "Cannot %s expression '%s'", verb, expr.String())
	}
}

func (a *Analyzer) analyzeIf(stmt *ast.IfStatement) error {
	if err := a.analyzeCondition(stmt.Condition); err != nil {
		return err
	}
	if err := a.analyzeStatement(stmt.Consequence); err != nil {
		return err
	}
	if stmt.Alternative != nil {
		return a.analyzeStatement(stmt.Alternative)
	}
	return nil
}

func (a *Analyzer) analyzeWhile(stmt *ast.WhileStatement) error {
	if err := a.analyzeCondition(stmt.Condition); err != nil {
		return err
	}
	return a.analyzeStatement(stmt.Body)
}

func (a *Analyzer) analyzeRepeat(stmt *ast.RepeatStatement) error {
	for _, inner := range stmt.Body {
		if err := a.analyzeStatement(inner); err != nil {
			return err
		}
	}
	return a.analyzeCondition(stmt.Condition)
}

// analyzeCondition checks a control-flow condition, which must be Boolean.
func (a *Analyzer) analyzeCondition(cond ast.Expression) error {
	condType, err := a.analyzeExpression(cond)
	if err != nil {
		return err
	}
	if condType != types.BOOLEAN {
		return errorf(cond.Pos(), "Condition must be Boolean, got %s", condType)
	}
	return nil
}

func (a *Analyzer) analyzeFor(stmt *ast.ForStatement) error {
	sym, ok := a.symbols.Resolve(stmt.Variable.Value)
	if !ok {
		return errorf(stmt.Variable.Pos(), "Undefined identifier '%s'", stmt.Variable.Value)
	}
	if !sym.IsStorage() {
		return errorf(stmt.Variable.Pos(), "Loop variable '%s' is not a variable", stmt.Variable.Value)
	}
	if sym.Type != types.INTEGER {
		return errorf(stmt.Variable.Pos(), "Loop variable '%s' must be Integer, got %s", sym.Name, sym.Type)
	}
	stmt.Variable.Value = sym.Name
	stmt.Variable.SetType(sym.Type)

	startType, err := a.analyzeExpression(stmt.Start)
	if err != nil {
		return err
	}
	if startType != types.INTEGER {
		return errorf(stmt.Start.Pos(), "Type mismatch: for loop start must be Integer, got %s", startType)
	}
	endType, err := a.analyzeExpression(stmt.End)
	if err != nil {
		return err
	}
	if endType != types.INTEGER {
		return errorf(stmt.End.Pos(), "Type mismatch: for loop bound must be Integer, got %s", endType)
	}
	return a.analyzeStatement(stmt.Body)
}

func (a *Analyzer) analyzeCallStatement(stmt *ast.CallStatement) error {
	sym, ok := a.symbols.Resolve(stmt.Name.Value)
	if !ok {
		return errorf(stmt.Name.Pos(), "Undefined identifier '%s'", stmt.Name.Value)
	}
	if !sym.IsCallable() {
		return errorf(stmt.Name.Pos(), "'%s' is not a procedure or function", sym.Name)
	}
	stmt.Name.Value = sym.Name
	if sym.Kind == KindBuiltin {
		// Parser routes write/writeln/read/readln to dedicated nodes, but a
		// shadow-free lookup can still surface a builtin here.
		return a.analyzeBuiltinArgs(ident.Normalize(sym.Name), stmt.Arguments, stmt.Name.Pos())
	}
	return a.checkCallArgs(sym, stmt.Arguments, stmt.Name.Pos())
}

// checkCallArgs validates arity and argument compatibility for a call to
// a declared procedure or function.
func (a *Analyzer) checkCallArgs(sym *Symbol, args []ast.Expression, pos token.Position) error {
	sig := sym.Signature
	if len(args) != len(sig.Params) {
		return errorf(pos, "Arity mismatch: '%s' expects %d argument(s), got %d",
			sym.Name, len(sig.Params), len(args))
	}
	for i, arg := range args {
		formal := sig.Params[i]
		if formal.ByRef {
			argType, err := a.analyzeLValue(arg, "pass")
			if err != nil {
				return err
			}
			if !argType.Equals(formal.Type) {
				return errorf(arg.Pos(), "Type mismatch: var parameter '%s' requires %s, got %s",
					formal.Name, formal.Type, argType)
			}
			continue
		}
		argType, err := a.analyzeExpression(arg)
		if err != nil {
			return err
		}
		if !a.assignable(formal.Type, arg, argType) {
			return errorf(arg.Pos(), "Type mismatch: argument %d of '%s' requires %s, got %s",
				i+1, sym.Name, formal.Type, argType)
		}
	}
	return nil
}

func (a *Analyzer) analyzeWrite(stmt *ast.WriteStatement) error {
	name := "write"
	if stmt.Newline {
		name = "writeln"
	}
	return a.analyzeBuiltinArgs(name, stmt.Arguments, stmt.Pos())
}

func (a *Analyzer) analyzeRead(stmt *ast.ReadStatement) error {
	name := "read"
	if stmt.Newline {
		name = "readln"
	}
	return a.analyzeBuiltinArgs(name, stmt.Arguments, stmt.Pos())
}

// analyzeBuiltinArgs checks an I/O builtin's arguments: any number of
// primitive-typed values, l-values for the read forms.
func (a *Analyzer) analyzeBuiltinArgs(name string, args []ast.Expression, pos token.Position) error {
	for _, arg := range args {
		var argType types.Type
		var err error
		if IsReadBuiltin(name) {
			argType, err = a.analyzeLValue(arg, "read into")
		} else {
			argType, err = a.analyzeExpression(arg)
		}
		if err != nil {
			return err
		}
		if !types.IsSimple(argType) {
			return errorf(arg.Pos(), "Type mismatch: '%s' requires primitive arguments, got %s", name, argType)
		}
	}
	return nil
}
