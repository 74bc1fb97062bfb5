package vparser

import (
	"cruxlang.org/go/errors"
	"cruxlang.org/go/vast"
)

func (p *parser) parseFunction() (*vast.Function, error) {
	p.advance() // "function"
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	gens, err := p.parseGenericsSuffix()
	if err != nil {
		return nil, err
	}
	fn := &vast.Function{Name: name, Generics: gens}

	if p.atWord("takes") {
		p.advance()
		for {
			mutable := false
			if p.atWord("mutable") {
				mutable = true
				p.advance()
			}
			pname, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expectWord("of"); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			fn.Params = append(fn.Params, vast.Param{Name: pname, Mutable: mutable, Type: typ})
			if p.atWord("and") && !p.peek(1).IsWord("returns") {
				// "and" continues the parameter list unless what follows
				// is actually the start of the next clause (it never is
				// here, since "returns" cannot begin a parameter), kept
				// as an explicit guard for readability.
				p.advance()
				continue
			}
			break
		}
	}
	if p.atWord("returns") {
		p.advance()
		ret, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.Ret = ret
	}
	body, tail, err := p.parseBeginEndBody("function")
	if err != nil {
		return nil, err
	}
	fn.Body, fn.Tail = body, tail
	return fn, nil
}

// parseBeginEndBody parses "begin" STMTS "end <kind>", splitting off a
// trailing bare-expression statement as the tail value.
func (p *parser) parseBeginEndBody(kind string) ([]vast.Stmt, vast.Expr, error) {
	if err := p.expectWord("begin"); err != nil {
		return nil, nil, err
	}
	var stmts []vast.Stmt
	for !p.atWord("end") {
		if p.atEOF() {
			return nil, nil, errors.Newf(errors.UnexpectedEnd, p.cur().Pos, "unexpected end of input in block")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, nil, err
		}
		stmts = append(stmts, s)
	}
	p.advance() // "end"
	if !p.atWord(kind) {
		return nil, nil, errors.Newf(errors.BlockKindMismatch, p.cur().Pos,
			"expected \"end %s\", found \"end %s\"", kind, p.cur().Lit)
	}
	p.advance()

	var tail vast.Expr
	if n := len(stmts); n > 0 {
		if es, ok := stmts[n-1].(*vast.ExprStmt); ok && !es.TrailingSemicolon {
			tail = es.X
			stmts = stmts[:n-1]
		}
	}
	return stmts, tail, nil
}

func (p *parser) parseStruct() (*vast.Struct, error) {
	p.advance() // "structure"
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	gens, err := p.parseGenericsSuffix()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("with"); err != nil {
		return nil, err
	}
	if err := p.expectWord("fields"); err != nil {
		return nil, err
	}
	st := &vast.Struct{Name: name, Generics: gens}
	for !p.atWord("end") {
		if p.atEOF() {
			return nil, errors.Newf(errors.UnexpectedEnd, p.cur().Pos, "unexpected end of input in structure")
		}
		fname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		ftype, err := p.parseType()
		if err != nil {
			return nil, err
		}
		st.Fields = append(st.Fields, vast.StructField{Name: fname, Type: ftype})
	}
	p.advance() // "end"
	if err := p.expectWord("structure"); err != nil {
		return nil, err
	}
	return st, nil
}

func (p *parser) parseEnum() (*vast.Enum, error) {
	p.advance() // "enumeration"
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	gens, err := p.parseGenericsSuffix()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("with"); err != nil {
		return nil, err
	}
	if err := p.expectWord("variants"); err != nil {
		return nil, err
	}
	en := &vast.Enum{Name: name, Generics: gens}
	for !p.atWord("end") {
		if p.atEOF() {
			return nil, errors.Newf(errors.UnexpectedEnd, p.cur().Pos, "unexpected end of input in enumeration")
		}
		vname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		v := vast.EnumVariant{Name: vname}
		if p.atWord("of") {
			p.advance()
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			v.Type = t
		}
		en.Variants = append(en.Variants, v)
	}
	p.advance() // "end"
	if err := p.expectWord("enumeration"); err != nil {
		return nil, err
	}
	return en, nil
}

func (p *parser) parseTypeAlias() (*vast.TypeAlias, error) {
	p.advance() // "type"
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	gens, err := p.parseGenericsSuffix()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("as"); err != nil {
		return nil, err
	}
	val, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &vast.TypeAlias{Name: name, Generics: gens, Value: val}, nil
}

func (p *parser) parseImpl() (*vast.Impl, error) {
	p.advance() // "implementation"
	if err := p.expectWord("for"); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("begin"); err != nil {
		return nil, err
	}
	impl := &vast.Impl{Type: typ}
	for !p.atWord("end") {
		if p.atEOF() {
			return nil, errors.Newf(errors.UnexpectedEnd, p.cur().Pos, "unexpected end of input in implementation")
		}
		if !p.atWord("function") {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
				"expected a function item inside implementation, found %q", p.cur().Lit)
		}
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		impl.Methods = append(impl.Methods, fn)
	}
	p.advance() // "end"
	if err := p.expectWord("implementation"); err != nil {
		return nil, err
	}
	return impl, nil
}
