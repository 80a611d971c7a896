package tac

import (
	"strings"
	"testing"

	"github.com/babych/go-pascal/internal/lexer"
	"github.com/babych/go-pascal/internal/parser"
	"github.com/babych/go-pascal/internal/semantic"
)

// compile runs the full front end over input and returns the TAC listing.
func compile(t *testing.T, input string) string {
	t.Helper()
	p := parser.New(lexer.New(input))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse error in test input: %s", errs[0])
	}
	if err := semantic.NewAnalyzer().Analyze(program); err != nil {
		t.Fatalf("semantic error in test input: %v", err)
	}
	code, err := NewGenerator().Generate(program)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	return code
}

// expectTAC compares the generated listing line by line.
func expectTAC(t *testing.T, input string, want []string) {
	t.Helper()
	got := strings.Split(strings.TrimRight(compile(t, input), "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("line count = %d, want %d\ngot:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q\nfull listing:\n%s", i+1, got[i], want[i], strings.Join(got, "\n"))
		}
	}
}

func TestArithmetic(t *testing.T) {
	expectTAC(t,
		`program P; var x,y,z:integer; begin x:=10; y:=20; z:=x+y end.`,
		[]string{
			"main:",
			"x = 10",
			"y = 20",
			"t0 = x + y",
			"z = t0",
			"halt",
		})
}

func TestIfElse(t *testing.T) {
	expectTAC(t,
		`program P; var i:integer; begin i:=15; if i>10 then writeln('big') else writeln('small') end.`,
		[]string{
			"main:",
			"i = 15",
			"t0 = i > 10",
			"if_false t0 goto L0",
			"write 'big'",
			"writeln",
			"goto L1",
			"L0:",
			"write 'small'",
			"writeln",
			"L1:",
			"halt",
		})
}

func TestWhileSum(t *testing.T) {
	expectTAC(t,
		`program P; var s,i:integer; begin s:=0; i:=1; while i<=10 do begin s:=s+i; i:=i+1 end end.`,
		[]string{
			"main:",
			"s = 0",
			"i = 1",
			"L0:",
			"t0 = i <= 10",
			"if_false t0 goto L1",
			"t1 = s + i",
			"s = t1",
			"t2 = i + 1",
			"i = t2",
			"goto L0",
			"L1:",
			"halt",
		})
}

func TestForLoop(t *testing.T) {
	expectTAC(t,
		`program P; var i,f:integer; begin f:=1; for i:=1 to 5 do f:=f*i end.`,
		[]string{
			"main:",
			"f = 1",
			"i = 1",
			"L0:",
			"t0 = i <= 5",
			"if_false t0 goto L1",
			"t1 = f * i",
			"f = t1",
			"i = i + 1",
			"goto L0",
			"L1:",
			"halt",
		})
}

func TestForDownto(t *testing.T) {
	expectTAC(t,
		`program P; var i,f:integer; begin f:=1; for i:=5 downto 1 do f:=f*i end.`,
		[]string{
			"main:",
			"f = 1",
			"i = 5",
			"L0:",
			"t0 = i >= 1",
			"if_false t0 goto L1",
			"t1 = f * i",
			"f = t1",
			"i = i - 1",
			"goto L0",
			"L1:",
			"halt",
		})
}

func TestFunctionWithReturnSlot(t *testing.T) {
	expectTAC(t,
		`program P; function Add(x,y:integer):integer; begin Add:=x+y end; var r:integer; begin r:=Add(2,3) end.`,
		[]string{
			"Add:",
			"t0 = x + y",
			"Add = t0",
			"return",
			"main:",
			"t1 = call Add, 2, 3",
			"r = t1",
			"halt",
		})
}

func TestRepeatUntil(t *testing.T) {
	expectTAC(t,
		`program P; var x:integer; begin x:=5; repeat x:=x-1 until x=0 end.`,
		[]string{
			"main:",
			"x = 5",
			"L0:",
			"t0 = x - 1",
			"x = t0",
			"t1 = x == 0",
			"if_false t1 goto L0",
			"halt",
		})
}

func TestShortCircuitAndInCondition(t *testing.T) {
	expectTAC(t,
		`program P; var i:integer; begin if (i > 0) and (i < 10) then i:=0 end.`,
		[]string{
			"main:",
			"t0 = i > 0",
			"if_false t0 goto L0",
			"t1 = i < 10",
			"if_false t1 goto L0",
			"i = 0",
			"L0:",
			"halt",
		})
}

func TestShortCircuitOrInCondition(t *testing.T) {
	expectTAC(t,
		`program P; var i:integer; begin if (i < 0) or (i > 9) then i:=0 end.`,
		[]string{
			"main:",
			"t0 = i < 0",
			"if_true t0 goto L1",
			"t1 = i > 9",
			"if_false t1 goto L0",
			"L1:",
			"i = 0",
			"L0:",
			"halt",
		})
}

func TestShortCircuitAndAsValue(t *testing.T) {
	expectTAC(t,
		`program P; var b,p,q:boolean; begin b := p and q end.`,
		[]string{
			"main:",
			"t0 = p",
			"if_false t0 goto L0",
			"t0 = q",
			"L0:",
			"b = t0",
			"halt",
		})
}

func TestNotInCondition(t *testing.T) {
	expectTAC(t,
		`program P; var b:boolean; var x:integer; begin if not b then x:=1 end.`,
		[]string{
			"main:",
			"if_true b goto L0",
			"x = 1",
			"L0:",
			"halt",
		})
}

func TestUnaryOperators(t *testing.T) {
	expectTAC(t,
		`program P; var x,y:integer; var b,c:boolean; begin x := -y; x := +y; b := not c end.`,
		[]string{
			"main:",
			"t0 = 0 - y",
			"x = t0",
			"x = y",
			"t1 = c == 0",
			"b = t1",
			"halt",
		})
}

func TestArrayElementAccess(t *testing.T) {
	expectTAC(t,
		`program P; var a: array[1..10] of integer; var i,j:integer; begin a[i] := a[j] + 1 end.`,
		[]string{
			"main:",
			"t0 = a[j]",
			"t1 = t0 + 1",
			"a[i] = t1",
			"halt",
		})
}

func TestMatrixAccess(t *testing.T) {
	expectTAC(t,
		`program P; var m: array[1..3, 1..4] of real; begin m[2, 3] := 1.5 end.`,
		[]string{
			"main:",
			"m[2, 3] = 1.5",
			"halt",
		})
}

func TestVarParameterPassesName(t *testing.T) {
	expectTAC(t,
		`program P; procedure Inc2(var n: integer); begin n := n + 2 end;
		 var x: integer; begin Inc2(x) end.`,
		[]string{
			"Inc2:",
			"t0 = n + 2",
			"n = t0",
			"return",
			"main:",
			"call Inc2, x",
			"halt",
		})
}

func TestVarParameterArrayElement(t *testing.T) {
	expectTAC(t,
		`program P; procedure Zero(var n: integer); begin n := 0 end;
		 var a: array[1..5] of integer; begin Zero(a[3]) end.`,
		[]string{
			"Zero:",
			"n = 0",
			"return",
			"main:",
			"call Zero, a[3]",
			"halt",
		})
}

func TestNestedRoutineEmittedBeforeParent(t *testing.T) {
	code := compile(t, `
program P;
procedure Outer;
var n: integer;
  function Inner(k: integer): integer;
  begin
    Inner := k * 2
  end;
begin
  n := Inner(3)
end;
begin
  Outer
end.`)

	inner := strings.Index(code, "Inner:")
	outer := strings.Index(code, "Outer:")
	mainIdx := strings.Index(code, "main:")
	if inner == -1 || outer == -1 || mainIdx == -1 {
		t.Fatalf("missing routine labels in:\n%s", code)
	}
	if !(inner < outer && outer < mainIdx) {
		t.Errorf("routine order wrong (Inner=%d Outer=%d main=%d):\n%s", inner, outer, mainIdx, code)
	}
}

func TestReadWriteLowering(t *testing.T) {
	expectTAC(t,
		`program P; var i:integer; var s:string; begin read(i); readln(s); write('n=', i); writeln end.`,
		[]string{
			"main:",
			"read i",
			"read s",
			"readln",
			"write 'n='",
			"write i",
			"writeln",
			"halt",
		})
}

func TestStringQuoting(t *testing.T) {
	expectTAC(t,
		`program P; begin writeln('it''s fine') end.`,
		[]string{
			"main:",
			"write 'it''s fine'",
			"writeln",
			"halt",
		})
}

// Byte-identical input must yield byte-identical TAC, and counters must
// restart from zero for every compilation.
func TestDeterminism(t *testing.T) {
	input := `program P; var s,i:integer; begin s:=0; for i:=1 to 3 do s:=s+i; writeln(s) end.`
	first := compile(t, input)
	second := compile(t, input)
	if first != second {
		t.Errorf("output differs across runs:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "t0") || !strings.Contains(first, "L0") {
		t.Errorf("counters should restart at zero:\n%s", first)
	}
}

func TestHaltIsLastLine(t *testing.T) {
	code := compile(t, `program P; var x:integer; begin x := 1 end.`)
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	if lines[len(lines)-1] != "halt" {
		t.Errorf("last line = %q, want halt", lines[len(lines)-1])
	}
	if strings.Count(code, "halt\n") != 1 {
		t.Errorf("halt must appear exactly once:\n%s", code)
	}
	if strings.Count(code, "main:\n") != 1 {
		t.Errorf("main: must appear exactly once:\n%s", code)
	}
}
