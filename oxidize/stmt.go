package oxidize

import (
	"fmt"
	"strings"

	"cruxlang.org/go/vast"
)

// oxidizeStmt writes stmt as one or more lines to p, at p's current
// indent depth. It is used for statement-position children of a
// function/if/while/for/loop body, which own their own open/close brace
// frame.
func oxidizeStmt(p *printer, stmt vast.Stmt) error {
	switch s := stmt.(type) {
	case *vast.Let:
		line := "let "
		if b, ok := s.Pattern.(*vast.Binding); s.Mutable && !(ok && b.Mutable) {
			line += "mut "
		}
		pat, err := oxidizePattern(s.Pattern)
		if err != nil {
			return err
		}
		line += pat
		if s.Type != nil {
			t, err := oxidizeType(s.Type)
			if err != nil {
				return err
			}
			line += ": " + t
		}
		val, err := oxidizeExpr(s.Value)
		if err != nil {
			return err
		}
		p.line(line + " = " + val + ";")
		return nil
	case *vast.Assign:
		lv, err := oxidizeExpr(s.Lvalue)
		if err != nil {
			return err
		}
		val, err := oxidizeExpr(s.Value)
		if err != nil {
			return err
		}
		p.line(lv + " = " + val + ";")
		return nil
	case *vast.ExprStmt:
		x, err := oxidizeExpr(s.X)
		if err != nil {
			return err
		}
		if s.TrailingSemicolon {
			p.line(x + ";")
		} else {
			p.line(x)
		}
		return nil
	case *vast.If:
		return oxidizeIfStmt(p, s)
	case *vast.While:
		cond, err := oxidizeExpr(s.Cond)
		if err != nil {
			return err
		}
		p.open("while " + cond)
		if err := oxidizeStmtList(p, s.Body); err != nil {
			return err
		}
		p.close("")
		return nil
	case *vast.ForEach:
		iter, err := oxidizeExpr(s.Iter)
		if err != nil {
			return err
		}
		p.open("for " + s.Var + " in " + iter)
		if err := oxidizeStmtList(p, s.Body); err != nil {
			return err
		}
		p.close("")
		return nil
	case *vast.Loop:
		p.open("loop")
		if err := oxidizeStmtList(p, s.Body); err != nil {
			return err
		}
		p.close("")
		return nil
	case *vast.Return:
		if s.Value != nil {
			v, err := oxidizeExpr(s.Value)
			if err != nil {
				return err
			}
			p.line("return " + v + ";")
			return nil
		}
		p.line("return;")
		return nil
	case *vast.Break:
		p.line("break;")
		return nil
	case *vast.Continue:
		p.line("continue;")
		return nil
	case *vast.MacroStmt:
		x, err := oxidizeExpr(s.X)
		if err != nil {
			return err
		}
		p.line(x + ";")
		return nil
	default:
		return fmt.Errorf("oxidize: unhandled stmt %T", stmt)
	}
}

func oxidizeStmtList(p *printer, stmts []vast.Stmt) error {
	for _, s := range stmts {
		if err := oxidizeStmt(p, s); err != nil {
			return err
		}
	}
	return nil
}

func oxidizeIfStmt(p *printer, s *vast.If) error {
	cond, err := oxidizeExpr(s.Cond)
	if err != nil {
		return err
	}
	if s.Else == nil {
		p.open("if " + cond)
		if err := oxidizeStmtList(p, s.Then); err != nil {
			return err
		}
		p.close("")
		return nil
	}
	p.line("if " + cond + " {")
	p.depth++
	if err := oxidizeStmtList(p, s.Then); err != nil {
		return err
	}
	p.depth--
	p.line("} else {")
	p.depth++
	if err := oxidizeStmtList(p, s.Else); err != nil {
		return err
	}
	p.depth--
	p.line("}")
	return nil
}

// oxidizeStmtInline renders stmt as a single phrase, for use inside a
// block in expression position (oxidizeExprBlock), which has no
// open/close frame of its own to write lines into.
func oxidizeStmtInline(stmt vast.Stmt) (string, error) {
	switch s := stmt.(type) {
	case *vast.Let:
		line := "let "
		if b, ok := s.Pattern.(*vast.Binding); s.Mutable && !(ok && b.Mutable) {
			line += "mut "
		}
		pat, err := oxidizePattern(s.Pattern)
		if err != nil {
			return "", err
		}
		line += pat
		if s.Type != nil {
			t, err := oxidizeType(s.Type)
			if err != nil {
				return "", err
			}
			line += ": " + t
		}
		val, err := oxidizeExpr(s.Value)
		if err != nil {
			return "", err
		}
		return line + " = " + val + ";", nil
	case *vast.Assign:
		lv, err := oxidizeExpr(s.Lvalue)
		if err != nil {
			return "", err
		}
		val, err := oxidizeExpr(s.Value)
		if err != nil {
			return "", err
		}
		return lv + " = " + val + ";", nil
	case *vast.ExprStmt:
		x, err := oxidizeExpr(s.X)
		if err != nil {
			return "", err
		}
		if s.TrailingSemicolon {
			return x + ";", nil
		}
		return x, nil
	case *vast.Return:
		if s.Value != nil {
			v, err := oxidizeExpr(s.Value)
			if err != nil {
				return "", err
			}
			return "return " + v + ";", nil
		}
		return "return;", nil
	case *vast.Break:
		return "break;", nil
	case *vast.Continue:
		return "continue;", nil
	case *vast.MacroStmt:
		x, err := oxidizeExpr(s.X)
		if err != nil {
			return "", err
		}
		return x + ";", nil
	case *vast.If:
		body, err := oxidizeInlineStmtList(s.Then)
		if err != nil {
			return "", err
		}
		cond, err := oxidizeExpr(s.Cond)
		if err != nil {
			return "", err
		}
		line := "if " + cond + " { " + body + " }"
		if s.Else != nil {
			elseBody, err := oxidizeInlineStmtList(s.Else)
			if err != nil {
				return "", err
			}
			line += " else { " + elseBody + " }"
		}
		return line, nil
	case *vast.While:
		cond, err := oxidizeExpr(s.Cond)
		if err != nil {
			return "", err
		}
		body, err := oxidizeInlineStmtList(s.Body)
		if err != nil {
			return "", err
		}
		return "while " + cond + " { " + body + " }", nil
	case *vast.ForEach:
		iter, err := oxidizeExpr(s.Iter)
		if err != nil {
			return "", err
		}
		body, err := oxidizeInlineStmtList(s.Body)
		if err != nil {
			return "", err
		}
		return "for " + s.Var + " in " + iter + " { " + body + " }", nil
	case *vast.Loop:
		body, err := oxidizeInlineStmtList(s.Body)
		if err != nil {
			return "", err
		}
		return "loop { " + body + " }", nil
	default:
		return "", fmt.Errorf("oxidize: unhandled inline stmt %T", stmt)
	}
}

func oxidizeInlineStmtList(stmts []vast.Stmt) (string, error) {
	var parts []string
	for _, s := range stmts {
		str, err := oxidizeStmtInline(s)
		if err != nil {
			return "", err
		}
		parts = append(parts, str)
	}
	return strings.Join(parts, " "), nil
}
