// Package vparser implements the V-Parser (half of component E): a
// recursive-descent parser over the crux/vscanner token stream that
// builds a crux/vast.File. It is modeled on cue/parser's hand-written
// descent (a parser struct carrying the current token plus a handful of
// per-construct parse* methods), adapted to a word-stream grammar instead
// of a punctuation one.
//
// Because V has no grouping punctuation, a handful of local ambiguities
// (is this run of "and"-joined words a parameter list or a generic type's
// argument list? does "then" end an if-expression or separate two
// statements in an expression-position block?) are resolved the way a
// hand-rolled recursive-descent parser always resolves them: by knowing,
// from its own call site, exactly which continuation words are valid next,
// and treating a comma (a real token, never a word) as the only separator
// for plain value lists. SPEC_FULL.md §9 gives the rationale for the bare
// "and" separator.
package vparser

import (
	"cruxlang.org/go/errors"
	"cruxlang.org/go/token"
	"cruxlang.org/go/vast"
	"cruxlang.org/go/vscanner"
)

type parser struct {
	toks []vscanner.Token
	idx  int
}

// Parse tokenizes and parses src as V-text, returning a vast.File.
func Parse(file *token.File, src string) (*vast.File, error) {
	toks, err := vscanner.ScanAll(file, src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseFile()
}

func (p *parser) cur() vscanner.Token { return p.toks[p.idx] }

func (p *parser) peek(n int) vscanner.Token {
	i := p.idx + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *parser) advance() vscanner.Token {
	t := p.cur()
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	return t
}

func (p *parser) atEOF() bool { return p.cur().Kind == vscanner.EOF }

func (p *parser) atWord(w string) bool { return p.cur().IsWord(w) }

func (p *parser) expectWord(w string) error {
	if !p.atWord(w) {
		return errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected %q, found %q", w, p.cur().Lit)
	}
	p.advance()
	return nil
}

func (p *parser) expectComma() error {
	if p.cur().Kind != vscanner.COMMA {
		return errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected ','")
	}
	p.advance()
	return nil
}

// expectIdent consumes a WORD token that is not itself a reserved keyword
// and un-sanitizes it back to its S-side spelling.
func (p *parser) expectIdent() (string, error) {
	if !p.cur().IsIdent() {
		return "", errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected identifier, found %q", p.cur().Lit)
	}
	t := p.advance()
	return unsanitizeIdent(t.Lit), nil
}

func (p *parser) parseFile() (*vast.File, error) {
	f := &vast.File{}
	for !p.atEOF() {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		f.Items = append(f.Items, item)
	}
	return f, nil
}

func (p *parser) parseItem() (vast.Item, error) {
	switch {
	case p.atWord("function"):
		return p.parseFunction()
	case p.atWord("structure"):
		return p.parseStruct()
	case p.atWord("enumeration"):
		return p.parseEnum()
	case p.atWord("type"):
		return p.parseTypeAlias()
	case p.atWord("implementation"):
		return p.parseImpl()
	case p.atWord("use"):
		return p.parseUse()
	case p.atWord("verbatim"):
		return p.parseVerbatimItem()
	case p.atWord("define"):
		return p.parseTopLevelDefine()
	default:
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"unexpected item introducer %q", p.cur().Lit)
	}
}

func (p *parser) parseVerbatimItem() (vast.Item, error) {
	p.advance() // "verbatim"
	if err := p.expectWord("item"); err != nil {
		return nil, err
	}
	if p.cur().Kind != vscanner.STRING {
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected quoted verbatim source")
	}
	src := p.advance().Lit
	return &vast.Verbatim{Source: src}, nil
}

func (p *parser) parseUse() (vast.Item, error) {
	p.advance() // "use"
	var segs []string
	for {
		seg, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		if p.atWord("then") {
			p.advance()
			continue
		}
		break
	}
	path := segs[0]
	for _, s := range segs[1:] {
		path += "::" + s
	}
	return &vast.Use{Path: path}, nil
}

func (p *parser) parseTopLevelDefine() (vast.Item, error) {
	p.advance() // "define"
	switch {
	case p.atWord("constant"):
		p.advance()
		name, err := p.expectIdent()
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
		if err := p.expectWord("as"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Const{Name: name, Type: typ, Value: val}, nil
	case p.atWord("static"):
		p.advance()
		name, err := p.expectIdent()
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
		if err := p.expectWord("as"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Static{Name: name, Type: typ, Value: val}, nil
	default:
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected \"constant\" or \"static\" after top-level \"define\", found %q", p.cur().Lit)
	}
}

// parseGenericsSuffix parses zero or more "with generic type T [implementing
// Bound and Bound...]" clauses.
func (p *parser) parseGenericsSuffix() ([]vast.GenericParam, error) {
	var gens []vast.GenericParam
	for p.atWord("with") && p.peek(1).IsWord("generic") {
		p.advance() // with
		p.advance() // generic
		if err := p.expectWord("type"); err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		g := vast.GenericParam{Name: name}
		if p.atWord("implementing") {
			p.advance()
			for {
				b, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				g.Bounds = append(g.Bounds, b)
				if p.atWord("and") && !p.peek(1).IsWord("body") {
					p.advance()
					continue
				}
				break
			}
		}
		gens = append(gens, g)
	}
	return gens, nil
}
