package oxidize

import (
	"fmt"
	"strings"

	"cruxlang.org/go/vast"
)

func oxidizePattern(p vast.Pattern) (string, error) {
	switch pp := p.(type) {
	case *vast.Binding:
		if pp.Mutable {
			return "mut " + pp.Name, nil
		}
		return pp.Name, nil
	case *vast.PatternCtor:
		if len(pp.Subs) == 0 {
			return pp.Name, nil
		}
		var subs []string
		for _, s := range pp.Subs {
			sub, err := oxidizePattern(s)
			if err != nil {
				return "", err
			}
			subs = append(subs, sub)
		}
		return pp.Name + "(" + strings.Join(subs, ", ") + ")", nil
	case *vast.PatternTuple:
		var elts []string
		for _, e := range pp.Elts {
			s, err := oxidizePattern(e)
			if err != nil {
				return "", err
			}
			elts = append(elts, s)
		}
		return "(" + strings.Join(elts, ", ") + ")", nil
	case *vast.PatternLit:
		return oxidizeLit(&vast.Literal{Kind: pp.Kind, Value: pp.Value}), nil
	case *vast.Wildcard:
		return "_", nil
	default:
		return "", fmt.Errorf("oxidize: unhandled pattern %T", p)
	}
}
