// Package reduce implements the Reducer (component C): it visits an
// S-AST (package crux/ast) and emits V-text directly, via crux/vprint,
// using crux/catalog for keyword and operator spellings. Per spec.md's
// component table, the Reducer does not build an intermediate V-AST —
// that tree exists only for the Oxidation direction (crux/vparser,
// crux/oxidize) — the Reducer's only collaborators are the Mapping
// Catalog (A) and the V-Emitter (B).
package reduce

import (
	"fmt"
	"strings"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
	"cruxlang.org/go/vprint"
)

// Reduce renders file as V-text. It never fails: an unsupported node
// shape becomes `verbatim item "..."`, and a failure to build the S-AST
// is reported by crux.Reduce before this function is called.
func Reduce(file *ast.File) string {
	p := vprint.NewPrinter()
	for i, decl := range file.Decls {
		if i > 0 {
			p.Newline()
		}
		reduceDecl(p, decl)
	}
	return p.Finalize()
}

func reduceDecl(p *vprint.Printer, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		reduceFunc(p, d)
	case *ast.StructDecl:
		reduceStruct(p, d)
	case *ast.EnumDecl:
		reduceEnum(p, d)
	case *ast.TypeAliasDecl:
		reduceTypeAlias(p, d)
	case *ast.ImplDecl:
		reduceImpl(p, d)
	case *ast.UseDecl:
		p.Line("use " + strings.Join(strings.Split(d.Path, "::"), " then "))
	case *ast.ConstDecl:
		p.Line(fmt.Sprintf("define constant %s of %s as %s",
			catalog.Sanitize(d.Name), reduceType(d.Type), reduceExpr(d.Value)))
	case *ast.StaticDecl:
		p.Line(fmt.Sprintf("define static %s of %s as %s",
			catalog.Sanitize(d.Name), reduceType(d.Type), reduceExpr(d.Value)))
	case *ast.Verbatim:
		p.Line(fmt.Sprintf("verbatim item %q", d.Source))
	default:
		panic(fmt.Sprintf("reduce: unhandled decl %T", decl))
	}
}

func genericsSuffix(gens []ast.GenericParam) string {
	if len(gens) == 0 {
		return ""
	}
	var parts []string
	for _, g := range gens {
		s := "with generic type " + catalog.Sanitize(g.Name)
		if len(g.Bounds) > 0 {
			s += " implementing " + strings.Join(g.Bounds, " and ")
		}
		parts = append(parts, s)
	}
	return " " + strings.Join(parts, " ")
}

func reduceFunc(p *vprint.Printer, d *ast.FuncDecl) {
	p.Write("function " + catalog.Sanitize(d.Name) + genericsSuffix(d.Generics))
	p.Newline()
	if len(d.Params) > 0 {
		var parts []string
		for _, param := range d.Params {
			s := ""
			if param.Mutable {
				s += "mutable "
			}
			s += catalog.Sanitize(param.Name) + " of " + reduceType(param.Type)
			parts = append(parts, s)
		}
		p.Line("    takes " + strings.Join(parts, " and "))
	}
	if d.Ret != nil {
		p.Line("    returns " + reduceType(d.Ret))
	}
	p.Begin("function")
	reduceBlockBody(p, d.Body)
	p.End("function")
}

func reduceStruct(p *vprint.Printer, d *ast.StructDecl) {
	p.Write("structure " + catalog.Sanitize(d.Name) + genericsSuffix(d.Generics) + " with fields")
	p.Newline()
	for _, f := range d.Fields {
		p.Line("    " + catalog.Sanitize(f.Name) + " of " + reduceType(f.Type))
	}
	p.Line("end structure")
}

func reduceEnum(p *vprint.Printer, d *ast.EnumDecl) {
	p.Write("enumeration " + catalog.Sanitize(d.Name) + genericsSuffix(d.Generics) + " with variants")
	p.Newline()
	for _, v := range d.Variants {
		line := "    " + catalog.Sanitize(v.Name)
		if v.Type != nil {
			line += " of " + reduceType(v.Type)
		}
		p.Line(line)
	}
	p.Line("end enumeration")
}

func reduceTypeAlias(p *vprint.Printer, d *ast.TypeAliasDecl) {
	p.Line("type " + catalog.Sanitize(d.Name) + genericsSuffix(d.Generics) + " as " + reduceType(d.Value))
}

func reduceImpl(p *vprint.Printer, d *ast.ImplDecl) {
	p.Write("implementation for " + reduceType(d.Type))
	p.Newline()
	p.Begin("implementation")
	for i, m := range d.Methods {
		if i > 0 {
			p.Newline()
		}
		reduceFunc(p, m)
	}
	p.End("implementation")
}

// reduceBlockBody renders a block's statements. A final expression
// statement with no trailing semicolon is the block's tail value; it is
// marked with the `yield` keyword so the V-Parser can recover that
// distinction even though, textually, a tail expression and a discarded
// trailing expression statement would otherwise look identical (both are
// just "the expression, on its own line").
func reduceBlockBody(p *vprint.Printer, b *ast.BlockExpr) {
	for i, stmt := range b.Stmts {
		last := i == len(b.Stmts)-1
		if es, ok := stmt.(*ast.ExprStmt); ok && last && !es.Trailing {
			p.Line("yield " + reduceExpr(es.X))
			continue
		}
		reduceStmt(p, stmt)
	}
}
