package reduce

import (
	"fmt"
	"strconv"
	"strings"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
)

func reduceLit(l *ast.BasicLit) string {
	switch l.Kind {
	case ast.StringLit:
		return "text " + strconv.Quote(l.Value)
	case ast.CharLit:
		return "character " + strconv.Quote(l.Value)
	case ast.BoolLit:
		return l.Value
	default:
		return l.Value
	}
}

// reduceExprList joins a plain list of expressions (macro/constructor
// arguments, tuple and array elements) with a comma.
func reduceExprList(xs []ast.Expr) string {
	var parts []string
	for _, x := range xs {
		parts = append(parts, reduceExpr(x))
	}
	return strings.Join(parts, ", ")
}

// reduceCallArgList joins a method/associated-function/plain-call argument
// list with "and", per the Method-call head rule: the logical-and operator
// is always spelled out as the two-word phrase "logical and", so a bare
// "and" between call arguments is never ambiguous with it.
func reduceCallArgList(xs []ast.Expr) string {
	var parts []string
	for _, x := range xs {
		parts = append(parts, reduceExpr(x))
	}
	return strings.Join(parts, " and ")
}

func reduceExpr(e ast.Expr) string {
	switch x := e.(type) {
	case *ast.Ident:
		return catalog.Sanitize(x.Name)
	case *ast.BasicLit:
		return reduceLit(x)
	case *ast.BinaryExpr:
		return reduceExpr(x.X) + " " + strings.Join(catalog.BinaryOpWords(x.Op), " ") + " " + reduceExpr(x.Y)
	case *ast.UnaryExpr:
		return strings.Join(catalog.UnaryOpWords(x.Op), " ") + " " + reduceExpr(x.X)
	case *ast.MethodCallExpr:
		s := "call method " + catalog.Sanitize(x.Name) + " on " + reduceExpr(x.Receiver)
		if len(x.Args) > 0 {
			s += " with " + reduceCallArgList(x.Args)
		}
		return s
	case *ast.AssocCallExpr:
		s := "call associated function " + catalog.Sanitize(x.Name) + " on " + catalog.Sanitize(x.Type)
		if len(x.Args) > 0 {
			s += " with " + reduceCallArgList(x.Args)
		}
		return s
	case *ast.CallExpr:
		s := "call " + reduceExpr(x.Fun)
		if len(x.Args) > 0 {
			s += " with " + reduceCallArgList(x.Args)
		}
		return s
	case *ast.FieldExpr:
		return "field " + catalog.Sanitize(x.Name) + " of " + reduceExpr(x.Receiver)
	case *ast.IndexExpr:
		return "index " + reduceExpr(x.Index) + " of " + reduceExpr(x.Receiver)
	case *ast.TupleExpr:
		if len(x.Elts) == 0 {
			return "unit"
		}
		return "tuple of " + reduceExprList(x.Elts)
	case *ast.ArrayExpr:
		if len(x.Elts) == 0 {
			return "array of nothing"
		}
		return "array of " + reduceExprList(x.Elts)
	case *ast.RangeExpr:
		s := "range"
		if x.Start != nil {
			s += " from " + reduceExpr(x.Start)
		}
		if x.End_ != nil {
			if x.Inclusive {
				s += " through " + reduceExpr(x.End_)
			} else {
				s += " to " + reduceExpr(x.End_)
			}
		}
		return s
	case *ast.ClosureExpr:
		s := ""
		if x.IsMove {
			s += "move "
		}
		s += "closure"
		if len(x.Params) > 0 {
			var ps []string
			for _, p := range x.Params {
				ps = append(ps, catalog.Sanitize(p))
			}
			s += " with parameters " + strings.Join(ps, " and ")
		}
		s += " and body " + reduceExpr(x.Body)
		return s
	case *ast.MacroExpr:
		s := "macro " + catalog.Sanitize(x.Name)
		if len(x.Args) > 0 {
			s += " with " + reduceExprList(x.Args)
		}
		if x.Bracket == ast.SquareBracket {
			s += " bracket"
		} else {
			s += " paren"
		}
		return s
	case *ast.TryExpr:
		return reduceExpr(x.X) + " unwrap or return error"
	case *ast.ConstructorExpr:
		name := catalog.CtorVName(x.Name)
		if len(x.Args) == 0 {
			return name
		}
		return name + " of " + reduceExprList(x.Args)
	case *ast.IfExpr:
		return "if " + reduceExpr(x.Cond) + " then " + reduceExpr(x.Then) + " otherwise " + reduceExpr(x.Else)
	case *ast.MatchExpr:
		return reduceMatch(x)
	case *ast.BlockExpr:
		return reduceExprBlock(x)
	default:
		panic(fmt.Sprintf("reduce: unhandled expr %T", e))
	}
}

func reduceMatch(x *ast.MatchExpr) string {
	var b strings.Builder
	b.WriteString("compare " + reduceExpr(x.Scrutinee) + " case")
	for i, arm := range x.Arms {
		if i > 0 {
			b.WriteString(" case")
		}
		b.WriteString(" " + reducePattern(arm.Pattern) + " then " + reduceExpr(arm.Body))
	}
	return b.String()
}

// reduceExprBlock renders a block used in expression position as a single
// inline "then"-joined phrase; the statement-level reduceBlockBody is used
// instead when the block is a function/loop body (its own begin/end
// frame). As in reduceBlockBody, a tail expression is marked with `yield`
// so it is distinguishable from an ordinary trailing statement.
func reduceExprBlock(b *ast.BlockExpr) string {
	var parts []string
	for i, stmt := range b.Stmts {
		last := i == len(b.Stmts)-1
		if es, ok := stmt.(*ast.ExprStmt); ok && last && !es.Trailing {
			parts = append(parts, "yield "+reduceExpr(es.X))
			continue
		}
		parts = append(parts, reduceStmtInline(stmt))
	}
	if len(parts) == 0 {
		return "unit"
	}
	return strings.Join(parts, " then ")
}
