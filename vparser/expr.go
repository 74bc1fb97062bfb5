package vparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
	"cruxlang.org/go/errors"
	"cruxlang.org/go/vast"
	"cruxlang.org/go/vscanner"
)

// peekWords returns up to n consecutive WORD-token literals starting at
// the current position, stopping early at the first non-WORD token. It is
// the lookahead window catalog.MatchOperatorPhrase scans for the longest
// operator phrase (the longest phrase in the catalog is five words).
func (p *parser) peekWords(n int) []string {
	var words []string
	for i := 0; i < n; i++ {
		t := p.peek(i)
		if t.Kind != vscanner.WORD {
			break
		}
		words = append(words, t.Lit)
	}
	return words
}

func (p *parser) parseExpr() (vast.Expr, error) { return p.parseBinary(0) }

func (p *parser) parseBinary(minPrec int) (vast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		words := p.peekWords(5)
		opAny, n, ok := catalog.MatchOperatorPhrase(words)
		if !ok {
			break
		}
		op, isBinary := opAny.(ast.BinaryOp)
		if !isBinary {
			break
		}
		prec := catalog.BinaryPrecedence(op)
		if prec < minPrec {
			break
		}
		for i := 0; i < n; i++ {
			p.advance()
		}
		rhs, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &vast.Binary{X: lhs, Op: op, Y: rhs}
	}
	return lhs, nil
}

func (p *parser) parseUnary() (vast.Expr, error) {
	words := p.peekWords(5)
	if opAny, n, ok := catalog.MatchOperatorPhrase(words); ok {
		if op, isUnary := opAny.(ast.UnaryOp); isUnary {
			for i := 0; i < n; i++ {
				p.advance()
			}
			x, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			return &vast.Unary{Op: op, X: x}, nil
		}
	}
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseTrySuffix(primary)
}

var trySuffixWords = []string{"unwrap", "or", "return", "error"}

func (p *parser) parseTrySuffix(x vast.Expr) (vast.Expr, error) {
	for {
		matches := true
		for i, w := range trySuffixWords {
			if !p.peek(i).IsWord(w) {
				matches = false
				break
			}
		}
		if !matches {
			return x, nil
		}
		for range trySuffixWords {
			p.advance()
		}
		x = &vast.Try{X: x}
	}
}

// parseExprList parses a comma-separated list of expressions, stopping
// when the next token is not a comma.
func (p *parser) parseExprList() ([]vast.Expr, error) {
	var list []vast.Expr
	for {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, x)
		if p.cur().Kind == vscanner.COMMA {
			p.advance()
			continue
		}
		return list, nil
	}
}

// parseCallArgList parses the "and"-separated argument list following a
// method, associated-function, or plain-function call's "with". The
// logical-and operator is always spelled out as the two-word phrase
// "logical and", so a bare "and" here can only ever be an argument
// separator, never the start of a binary expression.
func (p *parser) parseCallArgList() ([]vast.Expr, error) {
	var list []vast.Expr
	for {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, x)
		if p.atWord("and") {
			p.advance()
			continue
		}
		return list, nil
	}
}

func (p *parser) parsePrimary() (vast.Expr, error) {
	t := p.cur()
	switch {
	case t.Kind == vscanner.INT:
		p.advance()
		return &vast.Literal{Kind: ast.IntLit, Value: t.Lit}, nil
	case t.Kind == vscanner.FLOAT:
		p.advance()
		return &vast.Literal{Kind: ast.FloatLit, Value: t.Lit}, nil
	case p.atWord("true"), p.atWord("false"):
		p.advance()
		return &vast.Literal{Kind: ast.BoolLit, Value: t.Lit}, nil
	case p.atWord("text"):
		p.advance()
		if p.cur().Kind != vscanner.STRING {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected quoted text literal")
		}
		return &vast.Literal{Kind: ast.StringLit, Value: p.advance().Lit}, nil
	case p.atWord("character"):
		p.advance()
		if p.cur().Kind != vscanner.STRING {
			return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos, "expected quoted character literal")
		}
		return &vast.Literal{Kind: ast.CharLit, Value: p.advance().Lit}, nil
	case p.atWord("call"):
		return p.parseCall()
	case p.atWord("field"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		recv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Field{Receiver: recv, Name: name}, nil
	case p.atWord("index"):
		p.advance()
		idx, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		recv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &vast.Index{Receiver: recv, Index: idx}, nil
	case p.atWord("unit"):
		p.advance()
		return &vast.Tuple{}, nil
	case p.atWord("tuple"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		elts, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &vast.Tuple{Elts: elts}, nil
	case p.atWord("array"):
		p.advance()
		if err := p.expectWord("of"); err != nil {
			return nil, err
		}
		if p.atWord("nothing") {
			p.advance()
			return &vast.Array{}, nil
		}
		elts, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &vast.Array{Elts: elts}, nil
	case p.atWord("range"):
		p.advance()
		r := &vast.Range{}
		if p.atWord("from") {
			p.advance()
			start, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			r.Start = start
		}
		if p.atWord("through") {
			p.advance()
			r.Inclusive = true
			end, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			r.End = end
		} else if p.atWord("to") {
			p.advance()
			end, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			r.End = end
		}
		return r, nil
	case p.atWord("move"), p.atWord("closure"):
		return p.parseClosure()
	case p.atWord("macro"):
		return p.parseMacro()
	case p.atWord("if"):
		return p.parseIfExpr()
	case p.atWord("compare"):
		return p.parseMatch()
	case p.atWord("some"), p.atWord("none"), p.atWord("ok"), p.atWord("error"):
		return p.parseConstructor()
	case p.atWord("define"), p.atWord("set"), p.atWord("return"), p.atWord("break"),
		p.atWord("continue"), p.atWord("yield"), p.atWord("while"), p.atWord("for"), p.atWord("repeat"):
		return p.parseInlineBlock()
	case t.IsIdent():
		name, _ := p.expectIdent()
		if p.atWord("of") {
			p.advance()
			args, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			return &vast.Constructor{Name: name, Args: args}, nil
		}
		return &vast.Ident{Name: name}, nil
	default:
		return nil, errors.Newf(errors.UnexpectedToken, t.Pos, "expected an expression, found %q", t.Lit)
	}
}

func (p *parser) parseConstructor() (vast.Expr, error) {
	vWord := p.advance().Lit
	name := catalog.CtorSName(vWord)
	if p.atWord("of") {
		p.advance()
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &vast.Constructor{Name: name, Args: args}, nil
	}
	return &vast.Constructor{Name: name}, nil
}

func (p *parser) parseCall() (vast.Expr, error) {
	p.advance() // "call"
	// A try suffix after the call's last operand (its last argument, or the
	// receiver when it has none) applies to the whole call.
	lift := func(call vast.Expr, args []vast.Expr, last *vast.Expr) (vast.Expr, error) {
		if len(args) > 0 {
			last = &args[len(args)-1]
		}
		if t, ok := (*last).(*vast.Try); ok {
			*last = t.X
			return &vast.Try{X: call}, nil
		}
		return call, nil
	}
	switch {
	case p.atWord("method"):
		p.advance()
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("on"); err != nil {
			return nil, err
		}
		recv, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		mc := &vast.MethodCall{Receiver: recv, Name: name}
		if p.atWord("with") {
			p.advance()
			args, err := p.parseCallArgList()
			if err != nil {
				return nil, err
			}
			mc.Args = args
		}
		return lift(mc, mc.Args, &mc.Receiver)
	case p.atWord("associated"):
		p.advance()
		if err := p.expectWord("function"); err != nil {
			return nil, err
		}
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("on"); err != nil {
			return nil, err
		}
		typ, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		ac := &vast.AssocCall{Type: typ, Name: name}
		if p.atWord("with") {
			p.advance()
			args, err := p.parseCallArgList()
			if err != nil {
				return nil, err
			}
			ac.Args = args
		}
		return lift(ac, ac.Args, new(vast.Expr))
	default:
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		fc := &vast.FnCall{Name: name}
		if p.atWord("with") {
			p.advance()
			args, err := p.parseCallArgList()
			if err != nil {
				return nil, err
			}
			fc.Args = args
		}
		return lift(fc, fc.Args, new(vast.Expr))
	}
}

func (p *parser) parseClosure() (vast.Expr, error) {
	isMove := false
	if p.atWord("move") {
		isMove = true
		p.advance()
	}
	if err := p.expectWord("closure"); err != nil {
		return nil, err
	}
	var params []string
	if p.atWord("with") {
		p.advance()
		if err := p.expectWord("parameters"); err != nil {
			return nil, err
		}
		for {
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, name)
			if p.atWord("and") && !p.peek(1).IsWord("body") {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectWord("and"); err != nil {
		return nil, err
	}
	if err := p.expectWord("body"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &vast.Closure{IsMove: isMove, Params: params, Body: body}, nil
}

func (p *parser) parseMacro() (vast.Expr, error) {
	p.advance() // "macro"
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	m := &vast.Macro{Name: name}
	if p.atWord("with") {
		p.advance()
		args, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		m.Args = args
	}
	switch {
	case p.atWord("bracket"):
		p.advance()
		m.Bracket = ast.SquareBracket
	case p.atWord("paren"):
		p.advance()
		m.Bracket = ast.ParenBracket
	default:
		return nil, errors.Newf(errors.UnexpectedToken, p.cur().Pos,
			"expected \"bracket\" or \"paren\" to close macro invocation, found %q", p.cur().Lit)
	}
	return m, nil
}

func (p *parser) parseIfExpr() (vast.Expr, error) {
	p.advance() // "if"
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("then"); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectWord("otherwise"); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &vast.IfExpr{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseMatch() (vast.Expr, error) {
	p.advance() // "compare"
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	m := &vast.Match{Scrutinee: scrutinee}
	for p.atWord("case") {
		p.advance()
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if err := p.expectWord("then"); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		m.Arms = append(m.Arms, vast.MatchArm{Pattern: pat, Body: body})
	}
	return m, nil
}
