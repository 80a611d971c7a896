package tac

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/pkg/ident"
)

// genExpression lowers an expression in post-order and returns the
// operand holding its value: a literal rendering, a variable name, or a
// temporary. Literals and plain variables never allocate a temporary.
func (g *Generator) genExpression(expr ast.Expression) (string, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return strconv.FormatInt(e.Value, 10), nil
	case *ast.RealLiteral:
		return strconv.FormatFloat(e.Value, 'g', -1, 64), nil
	case *ast.StringLiteral:
		return quoteString(e.Value), nil
	case *ast.BooleanLiteral:
		if e.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.Identifier:
		return e.Value, nil
	case *ast.UnaryExpression:
		return g.genUnary(e)
	case *ast.BinaryExpression:
		return g.genBinary(e)
	case *ast.IndexExpression:
		return g.genIndexRead(e)
	case *ast.CallExpression:
		return g.genCall(e)
	default:
		return "", g.errorf(expr, "unsupported expression %T", expr)
	}
}

// genUnary lowers `-x` as `t = 0 - x` and `not b` as `t = b == 0`.
// Unary plus is the identity.
func (g *Generator) genUnary(e *ast.UnaryExpression) (string, error) {
	operand, err := g.genExpression(e.Right)
	if err != nil {
		return "", err
	}
	switch ident.Normalize(e.Operator) {
	case "+":
		return operand, nil
	case "-":
		t := g.newTemp()
		g.emit("%s = 0 - %s", t, operand)
		return t, nil
	case "not":
		t := g.newTemp()
		g.emit("%s = %s == 0", t, operand)
		return t, nil
	default:
		return "", g.errorf(e, "unsupported unary operator '%s'", e.Operator)
	}
}

// tacBinaryOps maps source operators to TAC operator lexemes.
var tacBinaryOps = map[string]string{
	"+":   "+",
	"-":   "-",
	"*":   "*",
	"/":   "/",
	"div": "div",
	"mod": "mod",
	"=":   "==",
	"<>":  "!=",
	"<":   "<",
	"<=":  "<=",
	">":   ">",
	">=":  ">=",
}

func (g *Generator) genBinary(e *ast.BinaryExpression) (string, error) {
	op := ident.Normalize(e.Operator)
	if op == "and" || op == "or" {
		return g.genShortCircuit(e, op)
	}

	tacOp, ok := tacBinaryOps[op]
	if !ok {
		return "", g.errorf(e, "unsupported binary operator '%s'", e.Operator)
	}
	left, err := g.genExpression(e.Left)
	if err != nil {
		return "", err
	}
	right, err := g.genExpression(e.Right)
	if err != nil {
		return "", err
	}
	t := g.newTemp()
	g.emit("%s = %s %s %s", t, left, tacOp, right)
	return t, nil
}

// genShortCircuit materializes `a and b` / `a or b` in value position
// while still skipping the right operand when the left one decides:
//
//	t = a ; if_false t goto Lend ; t = b ; Lend:   (and)
//	t = a ; if_true  t goto Lend ; t = b ; Lend:   (or)
func (g *Generator) genShortCircuit(e *ast.BinaryExpression, op string) (string, error) {
	left, err := g.genExpression(e.Left)
	if err != nil {
		return "", err
	}
	t := g.newTemp()
	g.emit("%s = %s", t, left)

	end := g.newLabel()
	if op == "and" {
		g.emit("if_false %s goto %s", t, end)
	} else {
		g.emit("if_true %s goto %s", t, end)
	}

	right, err := g.genExpression(e.Right)
	if err != nil {
		return "", err
	}
	g.emit("%s = %s", t, right)
	g.emitLabel(end)
	return t, nil
}

// genJumpIfFalse emits a jump to label taken when cond is false. Boolean
// connectives are threaded through control flow instead of materialized,
// so `if a and b then` tests a and b separately.
func (g *Generator) genJumpIfFalse(cond ast.Expression, label string) error {
	switch e := cond.(type) {
	case *ast.BinaryExpression:
		switch ident.Normalize(e.Operator) {
		case "and":
			if err := g.genJumpIfFalse(e.Left, label); err != nil {
				return err
			}
			return g.genJumpIfFalse(e.Right, label)
		case "or":
			taken := g.newLabel()
			if err := g.genJumpIfTrue(e.Left, taken); err != nil {
				return err
			}
			if err := g.genJumpIfFalse(e.Right, label); err != nil {
				return err
			}
			g.emitLabel(taken)
			return nil
		}
	case *ast.UnaryExpression:
		if ident.Equal(e.Operator, "not") {
			return g.genJumpIfTrue(e.Right, label)
		}
	}

	operand, err := g.genExpression(cond)
	if err != nil {
		return err
	}
	g.emit("if_false %s goto %s", operand, label)
	return nil
}

// genJumpIfTrue is the dual of genJumpIfFalse.
func (g *Generator) genJumpIfTrue(cond ast.Expression, label string) error {
	switch e := cond.(type) {
	case *ast.BinaryExpression:
		switch ident.Normalize(e.Operator) {
		case "or":
			if err := g.genJumpIfTrue(e.Left, label); err != nil {
				return err
			}
			return g.genJumpIfTrue(e.Right, label)
		case "and":
			fallthroughLabel := g.newLabel()
			if err := g.genJumpIfFalse(e.Left, fallthroughLabel); err != nil {
				return err
			}
			if err := g.genJumpIfTrue(e.Right, label); err != nil {
				return err
			}
			g.emitLabel(fallthroughLabel)
			return nil
		}
	case *ast.UnaryExpression:
		if ident.Equal(e.Operator, "not") {
			return g.genJumpIfFalse(e.Right, label)
		}
	}

	operand, err := g.genExpression(cond)
	if err != nil {
		return err
	}
	g.emit("if_true %s goto %s", operand, label)
	return nil
}

// genCall lowers a function call in value position:
//
//	t = call Name, arg1, ..., argN
func (g *Generator) genCall(e *ast.CallExpression) (string, error) {
	args, err := g.genCallArgs(e.Function.Value, e.Arguments)
	if err != nil {
		return "", err
	}
	t := g.newTemp()
	if len(args) == 0 {
		g.emit("%s = call %s", t, e.Function.Value)
	} else {
		g.emit("%s = call %s, %s", t, e.Function.Value, strings.Join(args, ", "))
	}
	return t, nil
}

// genCallArgs evaluates actual arguments left to right. Arguments bound
// to var formals are passed as l-value names rather than loaded values.
func (g *Generator) genCallArgs(callee string, args []ast.Expression) ([]string, error) {
	fn, _ := g.routines.Get(callee)

	operands := make([]string, 0, len(args))
	for i, arg := range args {
		if fn != nil && formalIsByRef(fn, i) {
			operand, err := g.genLValue(arg)
			if err != nil {
				return nil, err
			}
			operands = append(operands, operand)
			continue
		}
		operand, err := g.genExpression(arg)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	return operands, nil
}

// formalIsByRef reports whether the i-th formal (flattening name groups)
// is a var parameter.
func formalIsByRef(fn *ast.FunctionDecl, i int) bool {
	n := 0
	for _, group := range fn.Parameters {
		for range group.Names {
			if n == i {
				return group.ByRef
			}
			n++
		}
	}
	return false
}

// genLValue renders an l-value operand without loading it: a bare name
// or an element reference `a[i]`.
func (g *Generator) genLValue(expr ast.Expression) (string, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e.Value, nil
	case *ast.IndexExpression:
		return g.genElementRef(e)
	default:
		return "", g.errorf(expr, "expected an l-value, got %T", expr)
	}
}

// genIndexRead loads an array element into a temporary: `t = a[i]`.
func (g *Generator) genIndexRead(e *ast.IndexExpression) (string, error) {
	element, err := g.genElementRef(e)
	if err != nil {
		return "", err
	}
	t := g.newTemp()
	g.emit("%s = %s", t, element)
	return t, nil
}

// genElementRef renders `a[i]` (or `a[i, j]` for multi-dimension arrays)
// with every index evaluated to an operand first.
func (g *Generator) genElementRef(e *ast.IndexExpression) (string, error) {
	base, ok := e.Left.(*ast.Identifier)
	if !ok {
		return "", g.errorf(e.Left, "expected array variable, got %T", e.Left)
	}
	indices := make([]string, 0, len(e.Indices))
	for _, idx := range e.Indices {
		operand, err := g.genExpression(idx)
		if err != nil {
			return "", err
		}
		indices = append(indices, operand)
	}
	return fmt.Sprintf("%s[%s]", base.Value, strings.Join(indices, ", ")), nil
}

// quoteString renders a string literal operand in TAC: single-quoted,
// with embedded quotes doubled.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// errorf builds a generation error anchored at a node's position.
func (g *Generator) errorf(node ast.Node, format string, args ...any) error {
	pos := node.Pos()
	return fmt.Errorf("%d:%d: "+format, append([]any{pos.Line, pos.Column}, args...)...)
}
