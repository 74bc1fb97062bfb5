package vparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
	"cruxlang.org/go/errors"
	"cruxlang.org/go/vast"
	"cruxlang.org/go/vscanner"
)

func (p *parser) parsePattern() (vast.Pattern, error) {
	switch {
	case p.atWord("wildcard"):
		p.advance()
		return &vast.Wildcard{}, nil
	case p.atWord("mutable"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &vast.Binding{Name: name, Mutable: true}, nil
	case p.atWord("tuple"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		var elts []vast.Pattern
		for {
			sub, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			elts = append(elts, sub)
			if p.cur().Kind == vscanner.COMMA {
				p.advance()
				continue
			}
			break
		}
		return &vast.PatternTuple{Elts: elts}, nil
	case p.atWord("text"):
		p.advance()
		if p.cur().Kind != vscanner.STRING {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected quoted text literal")
		}
		return &vast.PatternLit{Kind: ast.StringLit, Value: p.advance().Lit}, nil
	case p.atWord("character"):
		p.advance()
		if p.cur().Kind != vscanner.STRING {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected quoted character literal")
		}
		return &vast.PatternLit{Kind: ast.CharLit, Value: p.advance().Lit}, nil
	case p.atWord("true") || p.atWord("false"):
		return &vast.PatternLit{Kind: ast.BoolLit, Value: p.advance().Lit}, nil
	case p.cur().Kind == vscanner.INT || p.cur().Kind == vscanner.FLOAT:
		t := p.advance()
		kind := ast.IntLit
		if t.Kind == vscanner.FLOAT {
			kind = ast.FloatLit
		}
		return &vast.PatternLit{Kind: kind, Value: t.Lit}, nil
	case p.atWord("some") || p.atWord("none") || p.atWord("ok") || p.atWord("error") || p.cur().IsIdent():
		vWord := p.advance().Lit
		name := catalog.CtorSName(vWord)
		ctor := &vast.PatternCtor{Name: name}
		if p.atWord("of") {
			p.advance()
			for {
				sub, err := p.parsePattern()
				if err != nil {
					return nil, err
				}
				ctor.Subs = append(ctor.Subs, sub)
				if p.cur().Kind == vscanner.COMMA {
					p.advance()
					continue
				}
				break
			}
		} else {
			// A bare identifier with no "of" payload round-trips as a
			// binding pattern; a zero-argument enum-variant pattern is
			// textually indistinguishable and is treated as the less
			// surprising of the two.
			return &vast.Binding{Name: name}, nil
		}
		return ctor, nil
	default:
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected a pattern, found %q", p.cur().Lit)
	}
}
