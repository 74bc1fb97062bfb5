package vparser

import (
	"cruxlang.org/go/vast"
)

// parseStmt parses one statement-position line inside a begin/end block.
// A bare `yield EXPR` marks a tail expression; parseBeginEndBody strips it
// back off into the caller's Tail field.
func (p *parser) parseStmt() (vast.Stmt, error) {
	switch {
	case p.atWord("define"):
		return p.parseLet()
	case p.atWord("set"):
		p.advance()
		lv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("equal"); err != nil {
			return nil, err
		}
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Assign{Lvalue: lv, Value: val}, nil
	case p.atWord("yield"):
		p.advance()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.ExprStmt{X: x, TrailingSemicolon: false}, nil
	case p.atWord("if"):
		return p.parseIfStmt()
	case p.atWord("while"):
		return p.parseWhileStmt()
	case p.atWord("for"):
		return p.parseForStmt()
	case p.atWord("repeat"):
		return p.parseLoopStmt()
	case p.atWord("return"):
		p.advance()
		if p.atStmtEnd() {
			return &vast.Return{}, nil
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Return{Value: val}, nil
	case p.atWord("break"):
		p.advance()
		return &vast.Break{}, nil
	case p.atWord("continue"):
		p.advance()
		return &vast.Continue{}, nil
	default:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.ExprStmt{X: x, TrailingSemicolon: true}, nil
	}
}

// atStmtEnd reports whether the current position cannot start an
// expression, used to recognize a bare `return` with no value.
func (p *parser) atStmtEnd() bool {
	return p.atWord("end") || p.atEOF()
}

func (p *parser) parseLet() (vast.Stmt, error) {
	p.advance() // "define"
	mutable := false
	if p.atWord("mutable") {
		mutable = true
		p.advance()
	}
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	let := &vast.Let{Pattern: pat, Mutable: mutable}
	if p.atWord("of") {
		p.advance()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		let.Type = typ
	}
	if err := p.expectWord("as"); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	let.Value = val
	return let, nil
}

func (p *parser) parseIfStmt() (vast.Stmt, error) {
	p.advance() // "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("then"); err != nil {
		return nil, err
	}
	then, _, err := p.parseBeginEndBody("if")
	if err != nil {
		return nil, err
	}
	ifs := &vast.If{Cond: cond, Then: then}
	if p.atWord("otherwise") {
		p.advance()
		els, _, err := p.parseBeginEndBody("if")
		if err != nil {
			return nil, err
		}
		ifs.Else = els
	}
	return ifs, nil
}

func (p *parser) parseWhileStmt() (vast.Stmt, error) {
	p.advance() // "while"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("repeat"); err != nil {
		return nil, err
	}
	body, _, err := p.parseBeginEndBody("while")
	if err != nil {
		return nil, err
	}
	return &vast.While{Cond: cond, Body: body}, nil
}

func (p *parser) parseForStmt() (vast.Stmt, error) {
	p.advance() // "for"
	if err := p.expectWord("each"); err != nil {
		return nil, err
	}
	v, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("in"); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("repeat"); err != nil {
		return nil, err
	}
	body, _, err := p.parseBeginEndBody("for")
	if err != nil {
		return nil, err
	}
	return &vast.ForEach{Var: v, Iter: iter, Body: body}, nil
}

func (p *parser) parseLoopStmt() (vast.Stmt, error) {
	p.advance() // "repeat"
	if err := p.expectWord("forever"); err != nil {
		return nil, err
	}
	body, _, err := p.parseBeginEndBody("loop")
	if err != nil {
		return nil, err
	}
	return &vast.Loop{Body: body}, nil
}

// parseInlineBlock parses the "then"-joined phrase form emitted for a
// block used directly in expression position (see reduceExprBlock). This
// form has no begin/end delimiters, so a `yield` marker is what tells the
// parser which element (always the last, since a block's tail can only
// ever be final) is the block's value rather than a discarded statement.
//
// A nested if/while/for/loop appearing as a non-tail element of such a
// block can, in principle, itself contain further "then"-joined elements
// whose boundary with the enclosing chain is not locally disambiguated;
// the parser does not resolve that case.
func (p *parser) parseInlineBlock() (*vast.Block, error) {
	blk := &vast.Block{}
	for {
		if p.atWord("yield") {
			p.advance()
			x, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			blk.Tail = x
			return blk, nil
		}
		s, err := p.parseStmtInline()
		if err != nil {
			return nil, err
		}
		if es, ok := s.(*vast.ExprStmt); ok && !es.TrailingSemicolon {
			blk.Tail = es.X
			return blk, nil
		}
		blk.Stmts = append(blk.Stmts, s)
		if p.atWord("then") {
			p.advance()
			continue
		}
		return blk, nil
	}
}

// parseStmtInline parses one unit of a "then"-joined expression-position
// block (the mirror of reduceStmtInline): nested control statements use
// the inline block form recursively rather than begin/end delimiters.
func (p *parser) parseStmtInline() (vast.Stmt, error) {
	switch {
	case p.atWord("define"):
		return p.parseLet()
	case p.atWord("set"):
		p.advance()
		lv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("equal"); err != nil {
			return nil, err
		}
		if err := p.expectWord("to"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Assign{Lvalue: lv, Value: val}, nil
	case p.atWord("return"):
		p.advance()
		if p.atWord("then") || p.atEOF() {
			return &vast.Return{}, nil
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Return{Value: val}, nil
	case p.atWord("break"):
		p.advance()
		return &vast.Break{}, nil
	case p.atWord("continue"):
		p.advance()
		return &vast.Continue{}, nil
	case p.atWord("if"):
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("then"); err != nil {
			return nil, err
		}
		then, err := p.parseInlineBlock()
		if err != nil {
			return nil, err
		}
		ifs := &vast.If{Cond: cond, Then: blockToStmts(then)}
		if p.atWord("otherwise") {
			p.advance()
			els, err := p.parseInlineBlock()
			if err != nil {
				return nil, err
			}
			ifs.Else = blockToStmts(els)
		}
		return ifs, nil
	case p.atWord("while"):
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("repeat"); err != nil {
			return nil, err
		}
		body, err := p.parseInlineBlock()
		if err != nil {
			return nil, err
		}
		return &vast.While{Cond: cond, Body: blockToStmts(body)}, nil
	case p.atWord("for"):
		p.advance()
		if err := p.expectWord("each"); err != nil {
			return nil, err
		}
		v, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("in"); err != nil {
			return nil, err
		}
		iter, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("repeat"); err != nil {
			return nil, err
		}
		body, err := p.parseInlineBlock()
		if err != nil {
			return nil, err
		}
		return &vast.ForEach{Var: v, Iter: iter, Body: blockToStmts(body)}, nil
	case p.atWord("repeat"):
		p.advance()
		if err := p.expectWord("forever"); err != nil {
			return nil, err
		}
		body, err := p.parseInlineBlock()
		if err != nil {
			return nil, err
		}
		return &vast.Loop{Body: blockToStmts(body)}, nil
	default:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.ExprStmt{X: x, TrailingSemicolon: true}, nil
	}
}

// blockToStmts flattens a parsed inline block back into a plain statement
// list, re-appending its tail (if any) as a non-trailing ExprStmt so it
// slots into vast.If/While/ForEach/Loop's []Stmt-shaped Then/Body fields
// the same way a begin/end body's statements do.
func blockToStmts(b *vast.Block) []vast.Stmt {
	stmts := append([]vast.Stmt(nil), b.Stmts...)
	if b.Tail != nil {
		stmts = append(stmts, &vast.ExprStmt{X: b.Tail, TrailingSemicolon: false})
	}
	return stmts
}
