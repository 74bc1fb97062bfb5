package sparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/sscanner"
)

// parseBlock parses a `{ ... }` block of statements. The final statement,
// if present as a bare expression with no trailing semicolon, is the
// block's tail value (see ast.ExprStmt.Trailing).
func (p *parser) parseBlock() (*ast.BlockExpr, error) {
	lbrace := p.cur().Pos
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(sscanner.RBRACE) {
		st, err := p.parseBlockStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	rbrace := p.cur().Pos
	if _, err := p.expect(sscanner.RBRACE); err != nil {
		return nil, err
	}
	return &ast.BlockExpr{LBrace: lbrace, Stmts: stmts, RBrace: rbrace}, nil
}

func (p *parser) parseBlockStmt() (ast.Stmt, error) {
	switch p.cur().Kind {
	case sscanner.LET:
		return p.parseLetStmt()
	case sscanner.RETURN:
		return p.parseReturnStmt()
	case sscanner.BREAK:
		return p.parseBreakStmt()
	case sscanner.CONTINUE:
		return p.parseContinueStmt()
	case sscanner.IF:
		// An if/else with single-expression branches that closes the block
		// is the block's tail value, so it is parsed as an ast.IfExpr.
		start := p.idx
		if ifx, err := p.parseIfExpr(); err == nil && p.at(sscanner.RBRACE) {
			return &ast.ExprStmt{X: ifx}, nil
		}
		p.idx = start
		return p.parseIfStmt()
	case sscanner.WHILE:
		return p.parseWhileStmt()
	case sscanner.FOR:
		return p.parseForStmt()
	case sscanner.LOOP:
		return p.parseLoopStmt()
	}

	if p.at(sscanner.IDENT) && p.peek(1).Kind == sscanner.NOT {
		return p.parseMacroStmt()
	}

	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.at(sscanner.ASSIGN) {
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		semi := p.cur().Pos
		if _, err := p.expect(sscanner.SEMI); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{Lvalue: x, Value: val, Semi: semi}, nil
	}
	if p.at(sscanner.SEMI) {
		semi := p.advance().Pos
		return &ast.ExprStmt{X: x, Trailing: true, SemiPos: semi}, nil
	}
	return &ast.ExprStmt{X: x}, nil
}

func (p *parser) parseLetStmt() (*ast.LetStmt, error) {
	letPos := p.cur().Pos
	if _, err := p.expect(sscanner.LET); err != nil {
		return nil, err
	}
	mut := false
	if p.at(sscanner.MUT) {
		p.advance()
		mut = true
	}
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	var typ ast.Type
	if p.at(sscanner.COLON) {
		p.advance()
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
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
	return &ast.LetStmt{LetPos: letPos, Pattern: pat, Type: typ, Mutable: mut, Value: val, Semi: semi}, nil
}

func (p *parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	returnPos := p.cur().Pos
	if _, err := p.expect(sscanner.RETURN); err != nil {
		return nil, err
	}
	var val ast.Expr
	if !p.at(sscanner.SEMI) {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		val = v
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{ReturnPos: returnPos, Value: val, Semi: semi}, nil
}

func (p *parser) parseBreakStmt() (*ast.BreakStmt, error) {
	breakPos := p.cur().Pos
	if _, err := p.expect(sscanner.BREAK); err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{BreakPos: breakPos, Semi: semi}, nil
}

func (p *parser) parseContinueStmt() (*ast.ContinueStmt, error) {
	continuePos := p.cur().Pos
	if _, err := p.expect(sscanner.CONTINUE); err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.ContinueStmt{ContinuePos: continuePos, Semi: semi}, nil
}

// parseIfStmt parses `if`/`else` used as a statement, where (unlike
// ast.IfExpr) both branches are full blocks of arbitrary statements and
// the construct itself carries no value. An `else if` chain is
// represented by nesting the inner *ast.IfStmt as the sole statement of
// a synthetic else block.
func (p *parser) parseIfStmt() (*ast.IfStmt, error) {
	ifPos := p.cur().Pos
	if _, err := p.expect(sscanner.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els *ast.BlockExpr
	if p.at(sscanner.ELSE) {
		p.advance()
		if p.at(sscanner.IF) {
			nested, err := p.parseIfStmt()
			if err != nil {
				return nil, err
			}
			els = &ast.BlockExpr{LBrace: nested.IfPos, Stmts: []ast.Stmt{nested}, RBrace: nested.End()}
		} else {
			b, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			els = b
		}
	}
	return &ast.IfStmt{IfPos: ifPos, Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseWhileStmt() (*ast.WhileStmt, error) {
	whilePos := p.cur().Pos
	if _, err := p.expect(sscanner.WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{WhilePos: whilePos, Cond: cond, Body: body}, nil
}

func (p *parser) parseForStmt() (*ast.ForStmt, error) {
	forPos := p.cur().Pos
	if _, err := p.expect(sscanner.FOR); err != nil {
		return nil, err
	}
	varName, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.IN); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{ForPos: forPos, Var: varName, Iter: iter, Body: body}, nil
}

func (p *parser) parseLoopStmt() (*ast.LoopStmt, error) {
	loopPos := p.cur().Pos
	if _, err := p.expect(sscanner.LOOP); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.LoopStmt{LoopPos: loopPos, Body: body}, nil
}

func (p *parser) parseMacroStmt() (*ast.MacroStmt, error) {
	mx, err := p.parseMacroCallExpr()
	if err != nil {
		return nil, err
	}
	semi := p.cur().Pos
	if _, err := p.expect(sscanner.SEMI); err != nil {
		return nil, err
	}
	return &ast.MacroStmt{X: mx, Semi: semi}, nil
}
