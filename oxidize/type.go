package oxidize

import (
	"fmt"
	"strings"

	"cruxlang.org/go/errors"
	"cruxlang.org/go/token"
	"cruxlang.org/go/vast"
)

// oxidizeType renders t as an S type. Vec/Box/Option/Result are emitted
// fully qualified to the standard library path (spec.md §4.5's rule for
// container types that a user type of the same short name could shadow);
// every other type is emitted under its own written name.
func oxidizeType(t vast.Type) (string, error) {
	switch tt := t.(type) {
	case *vast.Named:
		if len(tt.Args) == 0 {
			return tt.Path, nil
		}
		args, err := oxidizeTypeList(tt.Args)
		if err != nil {
			return "", err
		}
		return tt.Path + "<" + strings.Join(args, ", ") + ">", nil
	case *vast.Reference:
		inner, err := oxidizeType(tt.Inner)
		if err != nil {
			return "", err
		}
		if tt.Mutable {
			return "&mut " + inner, nil
		}
		return "&" + inner, nil
	case *vast.RawPointer:
		inner, err := oxidizeType(tt.Inner)
		if err != nil {
			return "", err
		}
		if tt.Mutable {
			return "*mut " + inner, nil
		}
		return "*const " + inner, nil
	case *vast.Option:
		elem, err := oxidizeType(tt.Elem)
		if err != nil {
			return "", err
		}
		return "std::option::Option<" + elem + ">", nil
	case *vast.Result:
		ok, err := oxidizeType(tt.Ok)
		if err != nil {
			return "", err
		}
		errT := "()"
		if rt, isTuple := tt.Err.(*vast.TupleType); !isTuple || !rt.IsUnit() {
			errT, err = oxidizeType(tt.Err)
			if err != nil {
				return "", err
			}
		}
		return "std::result::Result<" + ok + ", " + errT + ">", nil
	case *vast.Vec:
		elem, err := oxidizeType(tt.Elem)
		if err != nil {
			return "", err
		}
		return "std::vec::Vec<" + elem + ">", nil
	case *vast.Box:
		elem, err := oxidizeType(tt.Elem)
		if err != nil {
			return "", err
		}
		return "std::boxed::Box<" + elem + ">", nil
	case *vast.TupleType:
		if tt.IsUnit() {
			return "()", nil
		}
		elts, err := oxidizeTypeList(tt.Elts)
		if err != nil {
			return "", err
		}
		return "(" + strings.Join(elts, ", ") + ")", nil
	case *vast.Slice:
		elem, err := oxidizeType(tt.Elem)
		if err != nil {
			return "", err
		}
		return "[" + elem + "]", nil
	case *vast.Array_:
		elem, err := oxidizeType(tt.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%s; %s]", elem, tt.Len), nil
	case *vast.FnType:
		params, err := oxidizeTypeList(tt.Params)
		if err != nil {
			return "", err
		}
		s := "fn(" + strings.Join(params, ", ") + ")"
		if tt.Ret != nil {
			ret, err := oxidizeType(tt.Ret)
			if err != nil {
				return "", err
			}
			s += " -> " + ret
		}
		return s, nil
	case *vast.ImplTrait:
		return "impl " + tt.Bound, nil
	case *vast.Unknown:
		return "", errors.Newf(errors.UnrepresentableType, token.NoPos, "cannot oxidize unknown_type to a concrete S type")
	default:
		return "", fmt.Errorf("oxidize: unhandled type %T", t)
	}
}

func oxidizeTypeList(ts []vast.Type) ([]string, error) {
	var out []string
	for _, t := range ts {
		s, err := oxidizeType(t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
