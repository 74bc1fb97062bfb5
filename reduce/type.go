package reduce

import (
	"fmt"
	"strings"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
)

func reduceType(t ast.Type) string {
	switch tt := t.(type) {
	case *ast.NamedType:
		name := catalog.Sanitize(tt.Path)
		if len(tt.Args) == 0 {
			return name
		}
		var args []string
		for _, a := range tt.Args {
			args = append(args, reduceType(a))
		}
		return name + " of " + strings.Join(args, ", ")
	case *ast.RefType:
		if tt.Mutable {
			return "mutable reference to " + reduceType(tt.Inner)
		}
		return "reference to " + reduceType(tt.Inner)
	case *ast.RawPtrType:
		if tt.Mutable {
			return "mutable raw pointer to " + reduceType(tt.Inner)
		}
		return "raw pointer to " + reduceType(tt.Inner)
	case *ast.OptionType:
		return "optional " + reduceType(tt.Elem)
	case *ast.ResultType:
		return "result of " + reduceType(tt.Ok) + " or error " + reduceType(tt.Err)
	case *ast.VecType:
		return "list of " + reduceType(tt.Elem)
	case *ast.BoxType:
		return "box of " + reduceType(tt.Elem)
	case *ast.TupleType:
		if tt.IsUnit() {
			return "unit"
		}
		var elts []string
		for _, e := range tt.Elts {
			elts = append(elts, reduceType(e))
		}
		return "tuple of " + strings.Join(elts, ", ")
	case *ast.SliceType:
		return "slice of " + reduceType(tt.Elem)
	case *ast.ArrayType:
		return fmt.Sprintf("array of %s with length %s", reduceType(tt.Elem), tt.Len)
	case *ast.FnType:
		var parts []string
		for _, p := range tt.Params {
			parts = append(parts, reduceType(p))
		}
		s := "function taking"
		if len(parts) == 0 {
			s += " nothing"
		} else {
			s += " " + strings.Join(parts, ", ")
		}
		if tt.Ret != nil {
			s += " returning " + reduceType(tt.Ret)
		}
		return s
	case *ast.ImplTraitType:
		return "implementing " + tt.Bound
	case *ast.UnknownType:
		return "unknown_type"
	default:
		panic(fmt.Sprintf("reduce: unhandled type %T", t))
	}
}
