package sparser

import "cruxlang.org/go/ast"
import "cruxlang.org/go/sscanner"

func (p *parser) parseTypeList(end sscanner.Kind) ([]ast.Type, error) {
	var list []ast.Type
	if p.at(end) {
		return list, nil
	}
	for {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		list = append(list, t)
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

func (p *parser) parseType() (ast.Type, error) {
	switch p.cur().Kind {
	case sscanner.AMP:
		ampPos := p.advance().Pos
		mut := false
		if p.at(sscanner.MUT) {
			p.advance()
			mut = true
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.RefType{AmpPos: ampPos, Mutable: mut, Inner: inner}, nil

	case sscanner.STAR:
		starPos := p.advance().Pos
		var mut bool
		switch p.cur().Kind {
		case sscanner.CONST:
			p.advance()
		case sscanner.MUT:
			p.advance()
			mut = true
		default:
			return nil, newParseError(p.cur().Pos, "expected const or mut after *")
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.RawPtrType{StarPos: starPos, Mutable: mut, Inner: inner}, nil

	case sscanner.LPAREN:
		lparen := p.advance().Pos
		if p.at(sscanner.RPAREN) {
			rparen := p.advance().Pos
			return &ast.TupleType{LParen: lparen, RParen: rparen}, nil
		}
		elts, err := p.parseTypeList(sscanner.RPAREN)
		if err != nil {
			return nil, err
		}
		rparen := p.cur().Pos
		if _, err := p.expect(sscanner.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TupleType{LParen: lparen, Elts: elts, RParen: rparen}, nil

	case sscanner.LBRACK:
		lbrack := p.advance().Pos
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.at(sscanner.SEMI) {
			p.advance()
			lenTok, err := p.expect(sscanner.INT)
			if err != nil {
				return nil, err
			}
			rbrack := p.cur().Pos
			if _, err := p.expect(sscanner.RBRACK); err != nil {
				return nil, err
			}
			return &ast.ArrayType{LBrack: lbrack, Elem: elem, Len: lenTok.Lit, RBrack: rbrack}, nil
		}
		rbrack := p.cur().Pos
		if _, err := p.expect(sscanner.RBRACK); err != nil {
			return nil, err
		}
		return &ast.SliceType{LBrack: lbrack, Elem: elem, RBrack: rbrack}, nil

	case sscanner.FN:
		fnPos := p.advance().Pos
		if _, err := p.expect(sscanner.LPAREN); err != nil {
			return nil, err
		}
		params, err := p.parseTypeList(sscanner.RPAREN)
		if err != nil {
			return nil, err
		}
		endPos := p.cur().Pos
		if _, err := p.expect(sscanner.RPAREN); err != nil {
			return nil, err
		}
		var ret ast.Type
		if p.at(sscanner.ARROW) {
			p.advance()
			ret, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		return &ast.FnType{FnPos: fnPos, Params: params, Ret: ret, EndPos: endPos}, nil

	case sscanner.IMPL:
		implPos := p.advance().Pos
		bound, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		endPos := p.toks[p.idx-1].Pos
		return &ast.ImplTraitType{ImplPos: implPos, Bound: bound, EndPos: endPos}, nil

	case sscanner.UNDERSCORE:
		at := p.advance().Pos
		return &ast.UnknownType{At: at}, nil

	case sscanner.IDENT:
		namePos := p.cur().Pos
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		for p.at(sscanner.COLONCOLON) {
			p.advance()
			seg, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			name += "::" + seg
		}
		if !p.at(sscanner.LT) {
			return &ast.NamedType{NamePos: namePos, Path: name, EndPos: p.toks[p.idx-1].Pos}, nil
		}
		p.advance() // '<'
		args, err := p.parseTypeList(sscanner.GT)
		if err != nil {
			return nil, err
		}
		endPos := p.cur().Pos
		if _, err := p.expect(sscanner.GT); err != nil {
			return nil, err
		}
		switch name {
		case "Option":
			if len(args) != 1 {
				return nil, newParseError(namePos, "Option takes exactly one type argument")
			}
			return &ast.OptionType{NamePos: namePos, Elem: args[0], EndPos: endPos}, nil
		case "Result":
			if len(args) != 2 {
				return nil, newParseError(namePos, "Result takes exactly two type arguments")
			}
			return &ast.ResultType{NamePos: namePos, Ok: args[0], Err: args[1], EndPos: endPos}, nil
		case "Vec":
			if len(args) != 1 {
				return nil, newParseError(namePos, "Vec takes exactly one type argument")
			}
			return &ast.VecType{NamePos: namePos, Elem: args[0], EndPos: endPos}, nil
		case "Box":
			if len(args) != 1 {
				return nil, newParseError(namePos, "Box takes exactly one type argument")
			}
			return &ast.BoxType{NamePos: namePos, Elem: args[0], EndPos: endPos}, nil
		default:
			return &ast.NamedType{NamePos: namePos, Path: name, Args: args, EndPos: endPos}, nil
		}

	default:
		return nil, newParseError(p.cur().Pos, "expected type, found "+p.cur().Kind.String())
	}
}
