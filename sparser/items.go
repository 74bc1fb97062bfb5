package sparser

import (
	"strings"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/sscanner"
)

func (p *parser) parseItem() (ast.Decl, error) {
	switch p.cur().Kind {
	case sscanner.FN:
		return p.parseFuncDecl()
	case sscanner.STRUCT:
		return p.parseStructDecl()
	case sscanner.ENUM:
		return p.parseEnumDecl()
	case sscanner.TYPE:
		return p.parseTypeAliasDecl()
	case sscanner.IMPL:
		return p.parseImplDecl()
	case sscanner.USE:
		return p.parseUseDecl()
	case sscanner.CONST:
		return p.parseConstDecl()
	case sscanner.STATIC:
		return p.parseStaticDecl()
	default:
		return nil, newParseError(p.cur().Pos, "unsupported item introducer "+p.cur().Kind.String())
	}
}

func (p *parser) parseGenericsDecl() ([]ast.GenericParam, error) {
	if !p.at(sscanner.LT) {
		return nil, nil
	}
	p.advance()
	var gens []ast.GenericParam
	for !p.at(sscanner.GT) {
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		g := ast.GenericParam{Name: name}
		if p.at(sscanner.COLON) {
			p.advance()
			for {
				b, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				g.Bounds = append(g.Bounds, b)
				if p.at(sscanner.PLUS) {
					p.advance()
					continue
				}
				break
			}
		}
		gens = append(gens, g)
		if p.at(sscanner.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(sscanner.GT); err != nil {
		return nil, err
	}
	return gens, nil
}

// parseSelfParam recognizes a leading `self`, `mut self`, `&self`, or
// `&mut self` receiver and returns it as a *ast.Param typed `Self`, or
// ok=false if the current position isn't a self receiver at all.
func (p *parser) parseSelfParam() (param *ast.Param, ok bool, err error) {
	switch {
	case p.at(sscanner.IDENT) && p.cur().Lit == "self":
		name := p.advance()
		return &ast.Param{NamePos: name.Pos, Name: "self", Type: &ast.NamedType{NamePos: name.Pos, Path: "Self", EndPos: name.Pos}}, true, nil
	case p.at(sscanner.MUT) && p.peek(1).Kind == sscanner.IDENT && p.peek(1).Lit == "self":
		mutPos := p.advance().Pos
		p.advance()
		return &ast.Param{NamePos: mutPos, Name: "self", Mutable: true, Type: &ast.NamedType{NamePos: mutPos, Path: "Self", EndPos: mutPos}}, true, nil
	case p.at(sscanner.AMP) && p.peek(1).Kind == sscanner.IDENT && p.peek(1).Lit == "self":
		ampPos := p.advance().Pos
		p.advance()
		return &ast.Param{NamePos: ampPos, Name: "self", Type: &ast.RefType{AmpPos: ampPos, Inner: &ast.NamedType{NamePos: ampPos, Path: "Self", EndPos: ampPos}}}, true, nil
	case p.at(sscanner.AMP) && p.peek(1).Kind == sscanner.MUT && p.peek(2).Kind == sscanner.IDENT && p.peek(2).Lit == "self":
		ampPos := p.advance().Pos
		p.advance() // mut
		p.advance() // self
		return &ast.Param{NamePos: ampPos, Name: "self", Type: &ast.RefType{AmpPos: ampPos, Mutable: true, Inner: &ast.NamedType{NamePos: ampPos, Path: "Self", EndPos: ampPos}}}, true, nil
	}
	return nil, false, nil
}

func (p *parser) parseParams() ([]*ast.Param, error) {
	if _, err := p.expect(sscanner.LPAREN); err != nil {
		return nil, err
	}
	var params []*ast.Param
	first := true
	for !p.at(sscanner.RPAREN) {
		if first {
			first = false
			if self, ok, err := p.parseSelfParam(); err != nil {
				return nil, err
			} else if ok {
				params = append(params, self)
				if p.at(sscanner.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
		mut := false
		if p.at(sscanner.MUT) {
			p.advance()
			mut = true
		}
		namePos := p.cur().Pos
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(sscanner.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Param{NamePos: namePos, Name: name, Mutable: mut, Type: typ})
		if p.at(sscanner.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(sscanner.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) parseFuncDecl() (*ast.FuncDecl, error) {
	fnPos := p.cur().Pos
	if _, err := p.expect(sscanner.FN); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericsDecl()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
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
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{FnPos: fnPos, Name: name, Generics: generics, Params: params, Ret: ret, Body: body, RBrace: body.RBrace}, nil
}

func (p *parser) parseStructDecl() (*ast.StructDecl, error) {
	structPos := p.cur().Pos
	if _, err := p.expect(sscanner.STRUCT); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericsDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	var fields []ast.StructField
	for !p.at(sscanner.RBRACE) {
		fname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(sscanner.COLON); err != nil {
			return nil, err
		}
		ftype, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.StructField{Name: fname, Type: ftype})
		if p.at(sscanner.COMMA) {
			p.advance()
			continue
		}
		break
	}
	rbrace := p.cur().Pos
	if _, err := p.expect(sscanner.RBRACE); err != nil {
		return nil, err
	}
	return &ast.StructDecl{StructPos: structPos, Name: name, Generics: generics, Fields: fields, RBrace: rbrace}, nil
}

func (p *parser) parseEnumDecl() (*ast.EnumDecl, error) {
	enumPos := p.cur().Pos
	if _, err := p.expect(sscanner.ENUM); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericsDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	var variants []ast.EnumVariant
	for !p.at(sscanner.RBRACE) {
		vname, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		var vtype ast.Type
		if p.at(sscanner.LPAREN) {
			p.advance()
			vtype, err = p.parseType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(sscanner.RPAREN); err != nil {
				return nil, err
			}
		}
		variants = append(variants, ast.EnumVariant{Name: vname, Type: vtype})
		if p.at(sscanner.COMMA) {
			p.advance()
			continue
		}
		break
	}
	rbrace := p.cur().Pos
	if _, err := p.expect(sscanner.RBRACE); err != nil {
		return nil, err
	}
	return &ast.EnumDecl{EnumPos: enumPos, Name: name, Generics: generics, Variants: variants, RBrace: rbrace}, nil
}

func (p *parser) parseTypeAliasDecl() (*ast.TypeAliasDecl, error) {
	typePos := p.cur().Pos
	if _, err := p.expect(sscanner.TYPE); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	generics, err := p.parseGenericsDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseType()
	if err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{TypePos: typePos, Name: name, Generics: generics, Value: val, Semi: semi}, nil
}

func (p *parser) parseImplDecl() (*ast.ImplDecl, error) {
	implPos := p.cur().Pos
	if _, err := p.expect(sscanner.IMPL); err != nil {
		return nil, err
	}
	// Generic parameters on the impl block itself (`impl<T> Foo<T>`) are
	// accepted syntactically but, like ast.ImplDecl, carry no separate
	// representation: the methods inside still declare their own
	// ast.FuncDecl.Generics where needed.
	if _, err := p.parseGenericsDecl(); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	var methods []*ast.FuncDecl
	for !p.at(sscanner.RBRACE) {
		m, err := p.parseFuncDecl()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	rbrace := p.cur().Pos
	if _, err := p.expect(sscanner.RBRACE); err != nil {
		return nil, err
	}
	return &ast.ImplDecl{ImplPos: implPos, Type: typ, Methods: methods, RBrace: rbrace}, nil
}

func (p *parser) parseUseDecl() (*ast.UseDecl, error) {
	usePos := p.cur().Pos
	if _, err := p.expect(sscanner.USE); err != nil {
		return nil, err
	}
	var segs []string
	seg, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	segs = append(segs, seg)
	for p.at(sscanner.COLONCOLON) {
		p.advance()
		seg, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.UseDecl{UsePos: usePos, Path: strings.Join(segs, "::"), Semi: semi}, nil
}

func (p *parser) parseConstDecl() (*ast.ConstDecl, error) {
	constPos := p.cur().Pos
	if _, err := p.expect(sscanner.CONST); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.ConstDecl{ConstPos: constPos, Name: name, Type: typ, Value: val, Semi: semi}, nil
}

func (p *parser) parseStaticDecl() (*ast.StaticDecl, error) {
	staticPos := p.cur().Pos
	if _, err := p.expect(sscanner.STATIC); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.ASSIGN); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.StaticDecl{StaticPos: staticPos, Name: name, Type: typ, Value: val, Semi: semi}, nil
}
