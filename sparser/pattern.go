package sparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/sscanner"
)

func (p *parser) parsePatternList(end sscanner.Kind) ([]ast.Pattern, error) {
	var list []ast.Pattern
	if p.at(end) {
		return list, nil
	}
	for {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		list = append(list, pat)
		if p.at(sscanner.COMMA) {
			p.advance()
			if p.at(end) {
				break
			}
			continue
		}
		break
	}
	return list, nil
}

func (p *parser) parsePattern() (ast.Pattern, error) {
	switch p.cur().Kind {
	case sscanner.UNDERSCORE:
		at := p.advance().Pos
		return &ast.WildcardPattern{At: at}, nil

	case sscanner.MUT:
		p.advance()
		namePos := p.cur().Pos
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &ast.BindingPattern{NamePos: namePos, Name: name, Mutable: true}, nil

	case sscanner.LPAREN:
		lparen := p.advance().Pos
		elts, err := p.parsePatternList(sscanner.RPAREN)
		if err != nil {
			return nil, err
		}
		rparen := p.cur().Pos
		if _, err := p.expect(sscanner.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TuplePattern{LParen: lparen, Elts: elts, RParen: rparen}, nil

	case sscanner.INT, sscanner.FLOAT, sscanner.STRING, sscanner.CHAR, sscanner.TRUE, sscanner.FALSE, sscanner.MINUS:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.LiteralPattern{Lit: lit}, nil

	case sscanner.IDENT:
		namePos := p.cur().Pos
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if isConstructorName(name) {
			if p.at(sscanner.LPAREN) {
				p.advance()
				subs, err := p.parsePatternList(sscanner.RPAREN)
				if err != nil {
					return nil, err
				}
				endPos := p.cur().Pos
				if _, err := p.expect(sscanner.RPAREN); err != nil {
					return nil, err
				}
				return &ast.ConstructorPattern{NamePos: namePos, Name: name, Subs: subs, EndPos: endPos}, nil
			}
			return &ast.ConstructorPattern{NamePos: namePos, Name: name, EndPos: p.toks[p.idx-1].Pos}, nil
		}
		return &ast.BindingPattern{NamePos: namePos, Name: name}, nil

	default:
		return nil, newParseError(p.cur().Pos, "expected pattern, found "+p.cur().Kind.String())
	}
}
