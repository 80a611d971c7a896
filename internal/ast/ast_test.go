package ast

import (
	"testing"

	"github.com/babych/go-pascal/internal/types"
	"github.com/babych/go-pascal/pkg/token"
)

func ident(name string) *Identifier {
	return &Identifier{
		Token: token.NewToken(token.IDENT, name, token.Position{Line: 1, Column: 1}),
		Value: name,
	}
}

func TestExpressionStrings(t *testing.T) {
	sum := &BinaryExpression{
		Token:    token.NewToken(token.PLUS, "+", token.Position{Line: 1, Column: 3}),
		Left:     ident("x"),
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.NewToken(token.INT, "2", token.Position{}), Value: 2},
	}
	if sum.String() != "(x + 2)" {
		t.Errorf("String() = %q, want (x + 2)", sum.String())
	}

	neg := &UnaryExpression{Operator: "-", Right: ident("y")}
	if neg.String() != "(-y)" {
		t.Errorf("String() = %q, want (-y)", neg.String())
	}

	inverted := &UnaryExpression{Operator: "not", Right: ident("done")}
	if inverted.String() != "(not done)" {
		t.Errorf("String() = %q, want (not done)", inverted.String())
	}

	str := &StringLiteral{Value: "hi"}
	if str.String() != "'hi'" {
		t.Errorf("String() = %q, want 'hi'", str.String())
	}

	index := &IndexExpression{Left: ident("m"), Indices: []Expression{ident("i"), ident("j")}}
	if index.String() != "m[i, j]" {
		t.Errorf("String() = %q, want m[i, j]", index.String())
	}

	call := &CallExpression{Function: ident("Add"), Arguments: []Expression{ident("a"), ident("b")}}
	if call.String() != "Add(a, b)" {
		t.Errorf("String() = %q, want Add(a, b)", call.String())
	}
}

func TestStatementStrings(t *testing.T) {
	assign := &AssignmentStatement{Target: ident("x"), Value: &IntegerLiteral{
		Token: token.NewToken(token.INT, "1", token.Position{}), Value: 1}}
	if assign.String() != "x := 1" {
		t.Errorf("String() = %q, want x := 1", assign.String())
	}

	forStmt := &ForStatement{
		Variable: ident("i"),
		Start:    &IntegerLiteral{Token: token.NewToken(token.INT, "1", token.Position{}), Value: 1},
		End:      &IntegerLiteral{Token: token.NewToken(token.INT, "5", token.Position{}), Value: 5},
		Down:     true,
		Body:     assign,
	}
	if forStmt.String() != "for i := 1 downto 5 do x := 1" {
		t.Errorf("String() = %q", forStmt.String())
	}
}

func TestTypeAnnotation(t *testing.T) {
	expr := ident("x")
	if expr.Type() != nil {
		t.Error("type must be nil before semantic analysis")
	}
	expr.SetType(types.INTEGER)
	if expr.Type() != types.INTEGER {
		t.Error("SetType must stick")
	}
}

func TestPositionsComeFromTokens(t *testing.T) {
	pos := token.Position{Line: 4, Column: 7}
	expr := &Identifier{Token: token.NewToken(token.IDENT, "x", pos), Value: "x"}
	if expr.Pos() != pos {
		t.Errorf("Pos() = %v, want %v", expr.Pos(), pos)
	}
}
