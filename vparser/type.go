package vparser

import (
	"cruxlang.org/go/errors"
	"cruxlang.org/go/vast"
	"cruxlang.org/go/vscanner"
)

func (p *parser) parseType() (vast.Type, error) {
	switch {
	case p.atWord("optional"):
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Option{Elem: elem}, nil
	case p.atWord("result"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		ok, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("or"); err != nil {
			return nil, err
		}
		if err := p.expectWord("error"); err != nil {
			return nil, err
		}
		errT, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Result{Ok: ok, Err: errT}, nil
	case p.atWord("list"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Vec{Elem: elem}, nil
	case p.atWord("box"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Box{Elem: elem}, nil
	case p.atWord("unit"):
		p.advance()
		return &vast.TupleType{}, nil
	case p.atWord("tuple"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		var elts []vast.Type
		for {
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elts = append(elts, t)
			if p.cur().Kind == vscanner.COMMA {
				p.advance()
				continue
			}
			break
		}
		return &vast.TupleType{Elts: elts}, nil
	case p.atWord("slice"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Slice{Elem: elem}, nil
	case p.atWord("array"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("with"); err != nil {
			return nil, err
		}
		if err := p.expectWord("length"); err != nil {
			return nil, err
		}
		if p.cur().Kind != vscanner.INT {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected integer array length")
		}
		n := p.advance().Lit
		return &vast.Array_{Elem: elem, Len: n}, nil
	case p.atWord("function"):
		p.advance()
		if err := p.expectWord("taking"); err != nil {
			return nil, err
		}
		var params []vast.Type
		if p.atWord("nothing") {
			p.advance()
		} else {
			for {
				t, err := p.parseType()
				if err != nil {
					return nil, err
				}
				params = append(params, t)
				if p.cur().Kind == vscanner.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		fn := &vast.FnType{Params: params}
		if p.atWord("returning") {
			p.advance()
			ret, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fn.Ret = ret
		}
		return fn, nil
	case p.atWord("reference"):
		p.advance()
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Reference{Inner: inner}, nil
	case p.atWord("mutable") && p.peek(1).IsWord("reference"):
		p.advance()
		p.advance()
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.Reference{Mutable: true, Inner: inner}, nil
	case p.atWord("raw"):
		p.advance()
		if err := p.expectWord("pointer"); err != nil {
			return nil, err
		}
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.RawPointer{Inner: inner}, nil
	case p.atWord("mutable") && p.peek(1).IsWord("raw"):
		p.advance()
		p.advance()
		if err := p.expectWord("pointer"); err != nil {
			return nil, err
		}
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		inner, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &vast.RawPointer{Mutable: true, Inner: inner}, nil
	case p.atWord("implementing"):
		p.advance()
		bound, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &vast.ImplTrait{Bound: bound}, nil
	case p.atWord("unknown_type"):
		p.advance()
		return &vast.Unknown{}, nil
	case p.cur().IsIdent():
		name, _ := p.expectIdent()
		named := &vast.Named{Path: name}
		if p.atWord("of") {
			p.advance()
			for {
				t, err := p.parseType()
				if err != nil {
					return nil, err
				}
				named.Args = append(named.Args, t)
				if p.cur().Kind == vscanner.COMMA {
					p.advance()
					continue
				}
				break
			}
		}
		return named, nil
	default:
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected a type, found %q", p.cur().Lit)
	}
}
