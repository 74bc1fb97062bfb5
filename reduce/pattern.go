package reduce

import (
	"fmt"
	"strings"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
)

func reducePattern(p ast.Pattern) string {
	switch pp := p.(type) {
	case *ast.BindingPattern:
		if pp.Mutable {
			return "mutable " + catalog.Sanitize(pp.Name)
		}
		return catalog.Sanitize(pp.Name)
	case *ast.ConstructorPattern:
		name := catalog.CtorVName(pp.Name)
		if len(pp.Subs) == 0 {
			return name
		}
		var subs []string
		for _, s := range pp.Subs {
			subs = append(subs, reducePattern(s))
		}
		return name + " of " + strings.Join(subs, ", ")
	case *ast.TuplePattern:
		var elts []string
		for _, e := range pp.Elts {
			elts = append(elts, reducePattern(e))
		}
		return "tuple of " + strings.Join(elts, ", ")
	case *ast.LiteralPattern:
		return reduceLit(pp.Lit)
	case *ast.WildcardPattern:
		return "wildcard"
	default:
		panic(fmt.Sprintf("reduce: unhandled pattern %T", p))
	}
}
