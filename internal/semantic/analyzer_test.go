package semantic

import (
	"strings"
	"testing"

	"github.com/babych/go-pascal/internal/ast"
	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/internal/parser"
)

// analyze parses the input (failing the test on syntax errors) and runs
// semantic analysis, returning the analyzed program and the first
// semantic error, if any.
func analyze(t *testing.T, input string) (*ast.Program, error) {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse error in test input: %s", errs[0])
	}
	return program, NewAnalyzer().Analyze(program)
}

// expectOK fails the test when analysis reports an error.
func expectOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := analyze(t, input)
	if err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	return program
}

// expectError fails the test unless analysis reports an error whose
// message contains want.
func expectError(t *testing.T, input, want string) {
	t.Helper()
	_, err := analyze(t, input)
	if err == nil {
		t.Fatalf("expected semantic error containing %q, got none", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("error = %q, want it to contain %q", err.Error(), want)
	}
}

func TestValidPrograms(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"arithmetic and assignment",
			`program P; var x, y, z: integer; begin x := 10; y := 20; z := x + y end.`,
		},
		{
			"integer widens to real",
			`program P; var r: real; begin r := 3 end.`,
		},
		{
			"mixed arithmetic promotes",
			`program P; var r: real; var i: integer; begin r := i * 2.5 end.`,
		},
		{
			"division always yields real",
			`program P; var r: real; begin r := 7 / 2 end.`,
		},
		{
			"boolean conditions",
			`program P; var b: boolean; var i: integer; begin b := true; if b and (i < 10) then i := 0 end.`,
		},
		{
			"while and repeat",
			`program P; var i: integer; begin while i < 10 do i := i + 1; repeat i := i - 1 until i = 0 end.`,
		},
		{
			"for over integers",
			`program P; var i, f: integer; begin f := 1; for i := 1 to 5 do f := f * i end.`,
		},
		{
			"char from one-character literal",
			`program P; var c: char; begin c := 'x' end.`,
		},
		{
			"array element access",
			`program P; var a: array[1..10] of integer; var i: integer; begin a[1] := 5; i := a[i + 1] end.`,
		},
		{
			"matrix access",
			`program P; var m: array[1..3, 1..4] of real; begin m[2, 3] := 1.5 end.`,
		},
		{
			"function with return slot",
			`program P; function Add(x, y: integer): integer; begin Add := x + y end;
			 var r: integer; begin r := Add(2, 3) end.`,
		},
		{
			"recursive function",
			`program P; function Fact(n: integer): integer;
			 begin if n <= 1 then Fact := 1 else Fact := n * Fact(n - 1) end;
			 var f: integer; begin f := Fact(5) end.`,
		},
		{
			"procedure with var parameter",
			`program P; procedure Inc2(var n: integer); begin n := n + 2 end;
			 var x: integer; begin Inc2(x) end.`,
		},
		{
			"var parameter bound to array element",
			`program P; procedure Zero(var n: integer); begin n := 0 end;
			 var a: array[1..5] of integer; begin Zero(a[3]) end.`,
		},
		{
			"nested routine sees enclosing scope",
			`program P; var base: integer;
			 function Shifted(k: integer): integer; begin Shifted := base + k end;
			 begin base := 100; base := Shifted(1) end.`,
		},
		{
			"local shadows global",
			`program P; var x: integer;
			 procedure Q; var x: real; begin x := 1.5 end;
			 begin x := 1; Q end.`,
		},
		{
			"io builtins",
			`program P; var i: integer; var s: string;
			 begin write('value: ', i); writeln; read(i); readln(s) end.`,
		},
		{
			"string relational comparison",
			`program P; var a, b: string; var eq: boolean; begin eq := a <> b end.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOK(t, tt.input)
		})
	}
}

func TestIdentifierCasingIsCanonicalized(t *testing.T) {
	program := expectOK(t, `program P; var Counter: integer; begin counter := COUNTER + 1 end.`)

	assign := program.Body.Statements[0].(*ast.AssignmentStatement)
	target := assign.Target.(*ast.Identifier)
	if target.Value != "Counter" {
		t.Errorf("target spelling = %q, want declared spelling Counter", target.Value)
	}
	value := assign.Value.(*ast.BinaryExpression)
	if left := value.Left.(*ast.Identifier); left.Value != "Counter" {
		t.Errorf("operand spelling = %q, want Counter", left.Value)
	}
}

func TestExpressionTypesAnnotated(t *testing.T) {
	program := expectOK(t, `program P; var r: real; var i: integer; begin r := i + 1.5 end.`)

	assign := program.Body.Statements[0].(*ast.AssignmentStatement)
	if typ := assign.Value.Type(); typ == nil || typ.String() != "Real" {
		t.Errorf("value type = %v, want Real", assign.Value.Type())
	}
	sum := assign.Value.(*ast.BinaryExpression)
	if typ := sum.Left.Type(); typ == nil || typ.String() != "Integer" {
		t.Errorf("left operand type = %v, want Integer", sum.Left.Type())
	}
}
