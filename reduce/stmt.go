package reduce

import (
	"fmt"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
	"cruxlang.org/go/vprint"
)

// reduceStmt writes stmt as one or more lines to p. It is used for
// statement-position children of a begin/end block (function, loop, if,
// while, for bodies).
func reduceStmt(p *vprint.Printer, stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		line := "define "
		if s.Mutable {
			line += "mutable "
		}
		line += reducePattern(s.Pattern)
		if s.Type != nil {
			line += " of " + reduceType(s.Type)
		}
		line += " as " + reduceExpr(s.Value)
		p.Line(line)
	case *ast.AssignStmt:
		p.Line("set " + reduceExpr(s.Lvalue) + " equal to " + reduceExpr(s.Value))
	case *ast.ExprStmt:
		p.Line(reduceExpr(s.X))
	case *ast.IfStmt:
		p.Write("if " + reduceExpr(s.Cond) + " then")
		p.Newline()
		p.Begin("if")
		reduceBlockBody(p, s.Then)
		p.End("if")
		if s.Else != nil {
			p.Line("otherwise")
			p.Begin("if")
			reduceBlockBody(p, s.Else)
			p.End("if")
		}
	case *ast.WhileStmt:
		p.Write("while " + reduceExpr(s.Cond) + " repeat")
		p.Newline()
		p.Begin("while")
		reduceBlockBody(p, s.Body)
		p.End("while")
	case *ast.ForStmt:
		p.Write("for each " + catalog.Sanitize(s.Var) + " in " + reduceExpr(s.Iter) + " repeat")
		p.Newline()
		p.Begin("for")
		reduceBlockBody(p, s.Body)
		p.End("for")
	case *ast.LoopStmt:
		p.Write("repeat forever")
		p.Newline()
		p.Begin("loop")
		reduceBlockBody(p, s.Body)
		p.End("loop")
	case *ast.ReturnStmt:
		if s.Value != nil {
			p.Line("return " + reduceExpr(s.Value))
		} else {
			p.Line("return")
		}
	case *ast.BreakStmt:
		p.Line("break")
	case *ast.ContinueStmt:
		p.Line("continue")
	case *ast.MacroStmt:
		p.Line(reduceExpr(s.X))
	default:
		panic(fmt.Sprintf("reduce: unhandled stmt %T", stmt))
	}
}

// reduceStmtInline renders stmt as a single phrase, for use inside a block
// that appears in expression position (crux/reduce's reduceExprBlock),
// where there is no begin/end frame of its own to write lines into.
func reduceStmtInline(stmt ast.Stmt) string {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		line := "define "
		if s.Mutable {
			line += "mutable "
		}
		line += reducePattern(s.Pattern)
		if s.Type != nil {
			line += " of " + reduceType(s.Type)
		}
		return line + " as " + reduceExpr(s.Value)
	case *ast.AssignStmt:
		return "set " + reduceExpr(s.Lvalue) + " equal to " + reduceExpr(s.Value)
	case *ast.ExprStmt:
		return reduceExpr(s.X)
	case *ast.ReturnStmt:
		if s.Value != nil {
			return "return " + reduceExpr(s.Value)
		}
		return "return"
	case *ast.BreakStmt:
		return "break"
	case *ast.ContinueStmt:
		return "continue"
	case *ast.MacroStmt:
		return reduceExpr(s.X)
	case *ast.IfStmt:
		s2 := "if " + reduceExpr(s.Cond) + " then " + reduceExprBlock(s.Then)
		if s.Else != nil {
			s2 += " otherwise " + reduceExprBlock(s.Else)
		}
		return s2
	case *ast.WhileStmt:
		return "while " + reduceExpr(s.Cond) + " repeat " + reduceExprBlock(s.Body)
	case *ast.ForStmt:
		return "for each " + catalog.Sanitize(s.Var) + " in " + reduceExpr(s.Iter) + " repeat " + reduceExprBlock(s.Body)
	case *ast.LoopStmt:
		return "repeat forever " + reduceExprBlock(s.Body)
	default:
		panic(fmt.Sprintf("reduce: unhandled inline stmt %T", stmt))
	}
}
