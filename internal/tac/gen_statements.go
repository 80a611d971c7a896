package tac

import (
	"strings"

	"github.com/babych/go-pascal/internal/ast"
)

func (g *Generator) genStatement(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		for _, inner := range s.Statements {
			if err := g.genStatement(inner); err != nil {
				return err
			}
		}
		return nil
	case *ast.AssignmentStatement:
		return g.genAssignment(s)
	case *ast.IfStatement:
		return g.genIf(s)
	case *ast.WhileStatement:
		return g.genWhile(s)
	case *ast.ForStatement:
		return g.genFor(s)
	case *ast.RepeatStatement:
		return g.genRepeat(s)
	case *ast.CallStatement:
		return g.genCallStatement(s)
	case *ast.WriteStatement:
		return g.genWrite(s)
	case *ast.ReadStatement:
		return g.genRead(s)
	default:
		return g.errorf(stmt, "unsupported statement %T", stmt)
	}
}

func (g *Generator) genAssignment(stmt *ast.AssignmentStatement) error {
	value, err := g.genExpression(stmt.Value)
	if err != nil {
		return err
	}

	switch target := stmt.Target.(type) {
	case *ast.Identifier:
		g.emit("%s = %s", target.Value, value)
		return nil
	case *ast.IndexExpression:
		element, err := g.genElementRef(target)
		if err != nil {
			return err
		}
		g.emit("%s = %s", element, value)
		return nil
	default:
		return g.errorf(stmt.Target, "unsupported assignment target %T", stmt.Target)
	}
}

// genIf lowers `if c then S1 [else S2]`:
//
//	if_false c goto Lelse ; S1 ; goto Lend ; Lelse: ; S2 ; Lend:
//
// The else label and the trailing goto are omitted when there is no
// alternative.
func (g *Generator) genIf(stmt *ast.IfStatement) error {
	if stmt.Alternative == nil {
		end := g.newLabel()
		if err := g.genJumpIfFalse(stmt.Condition, end); err != nil {
			return err
		}
		if err := g.genStatement(stmt.Consequence); err != nil {
			return err
		}
		g.emitLabel(end)
		return nil
	}

	elseLabel := g.newLabel()
	if err := g.genJumpIfFalse(stmt.Condition, elseLabel); err != nil {
		return err
	}
	if err := g.genStatement(stmt.Consequence); err != nil {
		return err
	}
	end := g.newLabel()
	g.emit("goto %s", end)
	g.emitLabel(elseLabel)
	if err := g.genStatement(stmt.Alternative); err != nil {
		return err
	}
	g.emitLabel(end)
	return nil
}

// genWhile lowers `while c do S`:
//
//	Ltop: ; if_false c goto Lend ; S ; goto Ltop ; Lend:
func (g *Generator) genWhile(stmt *ast.WhileStatement) error {
	top := g.newLabel()
	g.emitLabel(top)
	end := g.newLabel()
	if err := g.genJumpIfFalse(stmt.Condition, end); err != nil {
		return err
	}
	if err := g.genStatement(stmt.Body); err != nil {
		return err
	}
	g.emit("goto %s", top)
	g.emitLabel(end)
	return nil
}

// genFor lowers `for i := a to b do S`. The bound is evaluated once,
// before the loop; literals stay inline operands.
//
//	i = a ; Ltop: ; t = i <= b ; if_false t goto Lend ;
//	S ; i = i + 1 ; goto Ltop ; Lend:
//
// downto flips the comparison to >= and the step to -1.
func (g *Generator) genFor(stmt *ast.ForStatement) error {
	start, err := g.genExpression(stmt.Start)
	if err != nil {
		return err
	}
	loopVar := stmt.Variable.Value
	g.emit("%s = %s", loopVar, start)

	bound, err := g.genExpression(stmt.End)
	if err != nil {
		return err
	}

	top := g.newLabel()
	g.emitLabel(top)

	cmp := "<="
	step := "+"
	if stmt.Down {
		cmp = ">="
		step = "-"
	}
	cond := g.newTemp()
	g.emit("%s = %s %s %s", cond, loopVar, cmp, bound)
	end := g.newLabel()
	g.emit("if_false %s goto %s", cond, end)

	if err := g.genStatement(stmt.Body); err != nil {
		return err
	}
	g.emit("%s = %s %s 1", loopVar, loopVar, step)
	g.emit("goto %s", top)
	g.emitLabel(end)
	return nil
}

// genRepeat lowers `repeat S until c`:
//
//	Ltop: ; S ; if_false c goto Ltop
func (g *Generator) genRepeat(stmt *ast.RepeatStatement) error {
	top := g.newLabel()
	g.emitLabel(top)
	for _, inner := range stmt.Body {
		if err := g.genStatement(inner); err != nil {
			return err
		}
	}
	return g.genJumpIfFalse(stmt.Condition, top)
}

func (g *Generator) genCallStatement(stmt *ast.CallStatement) error {
	args, err := g.genCallArgs(stmt.Name.Value, stmt.Arguments)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		g.emit("call %s", stmt.Name.Value)
	} else {
		g.emit("call %s, %s", stmt.Name.Value, strings.Join(args, ", "))
	}
	return nil
}

// genWrite emits one `write` per argument in order, then `writeln` for
// the newline form.
func (g *Generator) genWrite(stmt *ast.WriteStatement) error {
	for _, arg := range stmt.Arguments {
		operand, err := g.genExpression(arg)
		if err != nil {
			return err
		}
		g.emit("write %s", operand)
	}
	if stmt.Newline {
		g.emit("writeln")
	}
	return nil
}

// genRead emits one `read` per l-value target in order, then `readln`
// for the newline form.
func (g *Generator) genRead(stmt *ast.ReadStatement) error {
	for _, arg := range stmt.Arguments {
		target, err := g.genLValue(arg)
		if err != nil {
			return err
		}
		g.emit("read %s", target)
	}
	if stmt.Newline {
		g.emit("readln")
	}
	return nil
}
