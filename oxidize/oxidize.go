package oxidize

import (
	"fmt"
	"strings"

	"cruxlang.org/go/vast"
)

// Oxidize renders file as S-text: the canonical form only, with no
// stylistic variation run to run (spec.md §4.5's Oxidizer rule).
func Oxidize(file *vast.File) (string, error) {
	p := newPrinter()
	for i, item := range file.Items {
		if i > 0 {
			p.newline()
		}
		if err := oxidizeItem(p, item); err != nil {
			return "", err
		}
	}
	return p.finalize(), nil
}

func oxidizeItem(p *printer, item vast.Item) error {
	switch d := item.(type) {
	case *vast.Function:
		return oxidizeFunc(p, d)
	case *vast.Struct:
		return oxidizeStruct(p, d)
	case *vast.Enum:
		return oxidizeEnum(p, d)
	case *vast.TypeAlias:
		t, err := oxidizeType(d.Value)
		if err != nil {
			return err
		}
		p.line(fmt.Sprintf("type %s%s = %s;", d.Name, genericsClause(d.Generics), t))
		return nil
	case *vast.Impl:
		return oxidizeImpl(p, d)
	case *vast.Use:
		p.line("use " + d.Path + ";")
		return nil
	case *vast.Const:
		t, err := oxidizeType(d.Type)
		if err != nil {
			return err
		}
		v, err := oxidizeExpr(d.Value)
		if err != nil {
			return err
		}
		p.line(fmt.Sprintf("const %s: %s = %s;", d.Name, t, v))
		return nil
	case *vast.Static:
		t, err := oxidizeType(d.Type)
		if err != nil {
			return err
		}
		v, err := oxidizeExpr(d.Value)
		if err != nil {
			return err
		}
		p.line(fmt.Sprintf("static %s: %s = %s;", d.Name, t, v))
		return nil
	case *vast.Verbatim:
		p.line(d.Source)
		return nil
	default:
		return fmt.Errorf("oxidize: unhandled item %T", item)
	}
}

func genericsClause(gens []vast.GenericParam) string {
	if len(gens) == 0 {
		return ""
	}
	var parts []string
	for _, g := range gens {
		s := g.Name
		if len(g.Bounds) > 0 {
			s += ": " + strings.Join(g.Bounds, " + ")
		}
		parts = append(parts, s)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

func oxidizeFunc(p *printer, d *vast.Function) error {
	var params []string
	for _, param := range d.Params {
		t, err := oxidizeType(param.Type)
		if err != nil {
			return err
		}
		s := ""
		if param.Mutable {
			s += "mut "
		}
		s += param.Name + ": " + t
		params = append(params, s)
	}
	sig := "fn " + d.Name + genericsClause(d.Generics) + "(" + strings.Join(params, ", ") + ")"
	if d.Ret != nil {
		t, err := oxidizeType(d.Ret)
		if err != nil {
			return err
		}
		sig += " -> " + t
	}
	p.open(sig)
	if err := oxidizeBlockBody(p, d.Body, d.Tail); err != nil {
		return err
	}
	p.close("")
	return nil
}

func oxidizeStruct(p *printer, d *vast.Struct) error {
	p.open("struct " + d.Name + genericsClause(d.Generics))
	for _, f := range d.Fields {
		t, err := oxidizeType(f.Type)
		if err != nil {
			return err
		}
		p.line(f.Name + ": " + t + ",")
	}
	p.close("")
	return nil
}

func oxidizeEnum(p *printer, d *vast.Enum) error {
	p.open("enum " + d.Name + genericsClause(d.Generics))
	for _, v := range d.Variants {
		line := v.Name
		if v.Type != nil {
			t, err := oxidizeType(v.Type)
			if err != nil {
				return err
			}
			line += "(" + t + ")"
		}
		p.line(line + ",")
	}
	p.close("")
	return nil
}

func oxidizeImpl(p *printer, d *vast.Impl) error {
	t, err := oxidizeType(d.Type)
	if err != nil {
		return err
	}
	p.open("impl " + t)
	for i, m := range d.Methods {
		if i > 0 {
			p.newline()
		}
		if err := oxidizeFunc(p, m); err != nil {
			return err
		}
	}
	p.close("")
	return nil
}

// oxidizeBlockBody renders stmts, then — if tail is non-nil — the final
// tail expression with no trailing semicolon, mirroring reduceBlockBody's
// inverse: a tail expression round-trips as exactly the statement that
// carried the `yield` marker in V-text, now with the marker dropped and
// the semicolon omitted instead.
func oxidizeBlockBody(p *printer, stmts []vast.Stmt, tail vast.Expr) error {
	for _, s := range stmts {
		if err := oxidizeStmt(p, s); err != nil {
			return err
		}
	}
	if tail != nil {
		x, err := oxidizeExpr(tail)
		if err != nil {
			return err
		}
		p.line(x)
	}
	return nil
}
