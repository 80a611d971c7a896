package semantic

import (
	"unicode/utf8"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/internal/types"
	"github.com/babych/go-pascal/pkg/ident"
)

// analyzeExpression resolves and type-checks an expression, annotating
// the node with its type before returning it.
func (a *Analyzer) analyzeExpression(expr ast.Expression) (types.Type, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		e.SetType(types.INTEGER)
		return types.INTEGER, nil
	case *ast.RealLiteral:
		e.SetType(types.REAL)
		return types.REAL, nil
	case *ast.StringLiteral:
		e.SetType(types.STRING)
		return types.STRING, nil
	case *ast.BooleanLiteral:
		e.SetType(types.BOOLEAN)
		return types.BOOLEAN, nil
	case *ast.Identifier:
		return a.analyzeIdentifier(e)
	case *ast.UnaryExpression:
		return a.analyzeUnary(e)
	case *ast.BinaryExpression:
		return a.analyzeBinary(e)
	case *ast.IndexExpression:
		return a.analyzeIndexExpression(e)
	case *ast.CallExpression:
		return a.analyzeCallExpression(e)
	default:
		return nil, errorf(expr.Pos(), "unsupported expression %T", expr)
	}
}

// analyzeIdentifier resolves a name used as a value. Only storage
// locations (variables, parameters, the enclosing function's return slot)
// may be read; callables require call syntax.
func (a *Analyzer) analyzeIdentifier(e *ast.Identifier) (types.Type, error) {
	sym, ok := a.symbols.Resolve(e.Value)
	if !ok {
		return nil, errorf(e.Pos(), "Undefined identifier '%s'", e.Value)
	}
	if !sym.IsStorage() {
		return nil, errorf(e.Pos(), "'%s' is a %s, not a variable", sym.Name, sym.Kind)
	}
	e.Value = sym.Name
	e.SetType(sym.Type)
	return sym.Type, nil
}

func (a *Analyzer) analyzeUnary(e *ast.UnaryExpression) (types.Type, error) {
	operandType, err := a.analyzeExpression(e.Right)
	if err != nil {
		return nil, err
	}
	if ident.Equal(e.Operator, "not") {
		if operandType != types.BOOLEAN {
			return nil, errorf(e.Pos(), "Type mismatch: 'not' requires Boolean, got %s", operandType)
		}
		e.SetType(types.BOOLEAN)
		return types.BOOLEAN, nil
	}
	if !types.IsNumeric(operandType) {
		return nil, errorf(e.Pos(), "Type mismatch: unary '%s' requires a numeric operand, got %s",
			e.Operator, operandType)
	}
	e.SetType(operandType)
	return operandType, nil
}

func (a *Analyzer) analyzeBinary(e *ast.BinaryExpression) (types.Type, error) {
	leftType, err := a.analyzeExpression(e.Left)
	if err != nil {
		return nil, err
	}
	rightType, err := a.analyzeExpression(e.Right)
	if err != nil {
		return nil, err
	}

	switch ident.Normalize(e.Operator) {
	case "+", "-", "*":
		if !types.IsNumeric(leftType) || !types.IsNumeric(rightType) {
			return nil, errorf(e.Pos(), "Type mismatch: '%s' requires numeric operands, got %s and %s",
				e.Operator, leftType, rightType)
		}
		result := types.Promote(leftType, rightType)
		e.SetType(result)
		return result, nil
	case "/":
		if !types.IsNumeric(leftType) || !types.IsNumeric(rightType) {
			return nil, errorf(e.Pos(), "Type mismatch: '/' requires numeric operands, got %s and %s",
				leftType, rightType)
		}
		e.SetType(types.REAL)
		return types.REAL, nil
	case "div", "mod":
		if leftType != types.INTEGER || rightType != types.INTEGER {
			return nil, errorf(e.Pos(), "Type mismatch: '%s' requires Integer operands, got %s and %s",
				e.Operator, leftType, rightType)
		}
		e.SetType(types.INTEGER)
		return types.INTEGER, nil
	case "and", "or":
		if leftType != types.BOOLEAN || rightType != types.BOOLEAN {
			return nil, errorf(e.Pos(), "Type mismatch: '%s' requires Boolean operands, got %s and %s",
				e.Operator, leftType, rightType)
		}
		e.SetType(types.BOOLEAN)
		return types.BOOLEAN, nil
	case "=", "<>", "<", "<=", ">", ">=":
		if !types.Comparable(leftType, rightType) {
			return nil, errorf(e.Pos(), "Type mismatch: cannot compare %s with %s", leftType, rightType)
		}
		e.SetType(types.BOOLEAN)
		return types.BOOLEAN, nil
	default:
		return nil, errorf(e.Pos(), "unsupported operator '%s'", e.Operator)
	}
}

// analyzeIndexExpression checks an array element reference: the base must
// be an array-typed variable, the index count must match the array's
// rank, and every index must be Integer. Bounds are not checked.
func (a *Analyzer) analyzeIndexExpression(e *ast.IndexExpression) (types.Type, error) {
	baseType, err := a.analyzeLValue(e.Left, "index")
	if err != nil {
		return nil, err
	}
	arrayType, ok := baseType.(*types.ArrayType)
	if !ok {
		return nil, errorf(e.Pos(), "Type mismatch: cannot index %s", baseType)
	}
	if len(e.Indices) != arrayType.Rank() {
		return nil, errorf(e.Pos(), "Array indexing rank mismatch: expected %d index(es), got %d",
			arrayType.Rank(), len(e.Indices))
	}
	for _, idx := range e.Indices {
		idxType, err := a.analyzeExpression(idx)
		if err != nil {
			return nil, err
		}
		if idxType != types.INTEGER {
			return nil, errorf(idx.Pos(), "Type mismatch: array index must be Integer, got %s", idxType)
		}
	}
	e.SetType(arrayType.Element)
	return arrayType.Element, nil
}

// analyzeCallExpression checks a call in value position. The callee must
// be a function; procedures and the I/O builtins produce no value.
func (a *Analyzer) analyzeCallExpression(e *ast.CallExpression) (types.Type, error) {
	sym, ok := a.symbols.Resolve(e.Function.Value)
	if !ok {
		return nil, errorf(e.Function.Pos(), "Undefined identifier '%s'", e.Function.Value)
	}
	if sym.Kind == KindBuiltin {
		return nil, errorf(e.Function.Pos(), "'%s' cannot be used in an expression", sym.Name)
	}
	if sym.Signature == nil || sym.Kind != KindFunction {
		return nil, errorf(e.Function.Pos(), "'%s' is not a function", sym.Name)
	}
	e.Function.Value = sym.Name
	if err := a.checkCallArgs(sym, e.Arguments, e.Function.Pos()); err != nil {
		return nil, err
	}
	e.SetType(sym.Signature.ReturnType)
	return sym.Signature.ReturnType, nil
}

// assignable layers the char rule on top of types.AssignmentCompatible:
// a one-character string literal may initialize a Char destination. When
// the rule fires, the literal is re-typed to Char in place.
func (a *Analyzer) assignable(dst types.Type, value ast.Expression, valueType types.Type) bool {
	if types.AssignmentCompatible(dst, valueType) {
		return true
	}
	if dst == types.CHAR && valueType == types.STRING {
		if lit, ok := value.(*ast.StringLiteral); ok && utf8.RuneCountInString(lit.Value) == 1 {
			lit.SetType(types.CHAR)
			return true
		}
	}
	return false
}
