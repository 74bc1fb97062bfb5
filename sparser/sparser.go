// Package sparser implements the "host" S-language parser stand-in (see
// SPEC_FULL.md's resolution of spec.md §1's external-host-parser
// boundary): recursive descent over crux/sscanner's token stream,
// producing a crux/ast.File. It is modeled on cue/parser.parser's
// structure — one parser struct carrying the token stream and a
// method-per-production grammar — adapted to this language's own syntax.
//
// Per spec.md §4.3, any item this grammar cannot place in the supported
// subset becomes an ast.Verbatim wrapping the original source text for
// that item, rather than failing the whole parse. ParseFile only returns
// an error when the source cannot even be split into items (which in
// practice does not happen: the item-boundary scan in findItemEnd always
// makes progress).
package sparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/errors"
	"cruxlang.org/go/sscanner"
	"cruxlang.org/go/token"
)

type parser struct {
	toks []sscanner.Token
	idx  int
	src  string
	file *token.File
}

// parseError is an internal, unexported error: any production failing
// with one of these causes the enclosing item to fall back to Verbatim.
// It never escapes crux/sparser.
type parseError struct {
	pos token.Pos
	msg string
}

func (e *parseError) Error() string { return e.msg }

func newParseError(pos token.Pos, msg string) error { return &parseError{pos, msg} }

func (p *parser) cur() sscanner.Token { return p.toks[p.idx] }

func (p *parser) peek(n int) sscanner.Token {
	i := p.idx + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) advance() sscanner.Token {
	t := p.cur()
	if p.idx < len(p.toks)-1 {
		p.idx++
	}
	return t
}

func (p *parser) at(k sscanner.Kind) bool { return p.cur().Kind == k }

func (p *parser) expect(k sscanner.Kind) (sscanner.Token, error) {
	if !p.at(k) {
		return sscanner.Token{}, newParseError(p.cur().Pos, "unexpected token "+p.cur().Kind.String())
	}
	return p.advance(), nil
}

func (p *parser) expectIdent() (string, error) {
	if !p.at(sscanner.IDENT) {
		return "", newParseError(p.cur().Pos, "expected identifier, found "+p.cur().Kind.String())
	}
	return p.advance().Lit, nil
}

// ParseFile parses src (an S-source file) into an ast.File. Items the
// grammar does not recognize, or that fail partway through, are captured
// whole as ast.Verbatim; the parser always resynchronizes to the next
// item boundary, so a single malformed construct never aborts the rest
// of the file.
func ParseFile(file *token.File, src string) (*ast.File, error) {
	toks := sscanner.ScanAll(file, src)
	p := &parser{toks: toks, src: src, file: file}

	f := &ast.File{}
	for !p.at(sscanner.EOF) {
		startOffset := p.cur().Pos.Offset()
		startPos := p.cur().Pos
		startIdx := p.idx

		decl, err := p.parseItem()
		if err == nil {
			f.Decls = append(f.Decls, decl)
			continue
		}

		end := findItemEnd(src, startOffset)
		if end <= startOffset {
			end = startOffset + 1
		}
		f.Decls = append(f.Decls, &ast.Verbatim{
			From:   startPos,
			To:     file.Pos(end),
			Source: src[startOffset:end],
		})
		p.resyncTo(end)
		if p.idx == startIdx {
			// Safety net: guarantee forward progress even if resync
			// couldn't find a later token (e.g. trailing garbage with no
			// more item-shaped tokens left).
			p.advance()
		}
	}
	return f, nil
}

// resyncTo advances the token cursor to the first token at or after byte
// offset end, so parsing resumes after a Verbatim item's captured span.
func (p *parser) resyncTo(end int) {
	for !p.at(sscanner.EOF) && p.cur().Pos.Offset() < end {
		p.advance()
	}
}

// findItemEnd scans the raw source from start for the end of one
// top-level item: a semicolon or closing brace at bracket depth zero,
// skipping over string/char literals and line comments so that a stray
// delimiter inside one of those doesn't end the item early.
func findItemEnd(src string, start int) int {
	depth := 0
	i := start
	for i < len(src) {
		c := src[i]
		switch {
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			continue
		case c == '"' || c == '\'':
			quote := c
			i++
			for i < len(src) && src[i] != quote {
				if src[i] == '\\' {
					i++
				}
				i++
			}
		case c == '(' || c == '{' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == '}':
			depth--
			if depth <= 0 {
				return i + 1
			}
		case c == ';':
			if depth <= 0 {
				return i + 1
			}
		}
		i++
	}
	return len(src)
}

// isConstructorName reports whether name denotes a built-in or user enum
// variant constructor rather than a plain value identifier: the four
// standard-library variants, or any capitalized identifier (the
// convention this language's enum variants and struct names share).
func isConstructorName(name string) bool {
	switch name {
	case "Some", "None", "Ok", "Err":
		return true
	}
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

// HostParseError wraps err (always an internal *parseError) as a
// crux/errors.Error of kind HostParseFailed, for the rare top-level
// caller that wants a typed error rather than the file-level Verbatim
// degrade ParseFile performs internally.
func HostParseError(pos token.Pos, err error) errors.Error {
	return errors.Newf(errors.HostParseFailed, pos, "%s", err.Error())
}
