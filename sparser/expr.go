package sparser

import (
	"cruxlang.org/go/ast"
	"cruxlang.org/go/catalog"
	"cruxlang.org/go/sscanner"
)

var binOpForToken = map[sscanner.Kind]ast.BinaryOp{
	sscanner.PLUS:     ast.OpAdd,
	sscanner.MINUS:    ast.OpSub,
	sscanner.STAR:     ast.OpMul,
	sscanner.SLASH:    ast.OpDiv,
	sscanner.PERCENT:  ast.OpRem,
	sscanner.EQ:       ast.OpEq,
	sscanner.NE:       ast.OpNe,
	sscanner.LT:       ast.OpLt,
	sscanner.LE:       ast.OpLe,
	sscanner.GT:       ast.OpGt,
	sscanner.GE:       ast.OpGe,
	sscanner.AMPAMP:   ast.OpAnd,
	sscanner.PIPEPIPE: ast.OpOr,
}

func (p *parser) parseExprList(end sscanner.Kind) ([]ast.Expr, error) {
	var list []ast.Expr
	if p.at(end) {
		return list, nil
	}
	for {
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, x)
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

// parseExpr parses a full expression, including the low-precedence range
// operator (`..`/`..=`), which sits below every binary operator.
func (p *parser) parseExpr() (ast.Expr, error) {
	var start ast.Expr
	if !p.at(sscanner.DOTDOT) && !p.at(sscanner.DOTDOTEQ) {
		x, err := p.parseBinary(1)
		if err != nil {
			return nil, err
		}
		start = x
	}
	if p.at(sscanner.DOTDOT) || p.at(sscanner.DOTDOTEQ) {
		inclusive := p.at(sscanner.DOTDOTEQ)
		dotPos := p.advance().Pos
		var end ast.Expr
		if p.canStartExpr() {
			e, err := p.parseBinary(1)
			if err != nil {
				return nil, err
			}
			end = e
		}
		return &ast.RangeExpr{Start: start, DotDotPos: dotPos, End_: end, Inclusive: inclusive}, nil
	}
	return start, nil
}

func (p *parser) canStartExpr() bool {
	switch p.cur().Kind {
	case sscanner.RPAREN, sscanner.RBRACE, sscanner.RBRACK, sscanner.SEMI, sscanner.COMMA, sscanner.EOF:
		return false
	default:
		return true
	}
}

func (p *parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnaryPostfix()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binOpForToken[p.cur().Kind]
		if !ok {
			break
		}
		prec := catalog.BinaryPrecedence(op)
		if prec < minPrec {
			break
		}
		p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{X: left, Op: op, Y: right}
	}
	return left, nil
}

func (p *parser) parseUnaryPostfix() (ast.Expr, error) {
	switch p.cur().Kind {
	case sscanner.MINUS:
		opPos := p.advance().Pos
		x, err := p.parseUnaryPostfix()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{OpPos: opPos, Op: ast.OpNeg, X: x}, nil
	case sscanner.NOT:
		opPos := p.advance().Pos
		x, err := p.parseUnaryPostfix()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{OpPos: opPos, Op: ast.OpNot, X: x}, nil
	}

	x, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Kind {
		case sscanner.DOT:
			p.advance()
			namePos := p.cur().Pos
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if p.at(sscanner.LPAREN) {
				p.advance()
				args, err := p.parseExprList(sscanner.RPAREN)
				if err != nil {
					return nil, err
				}
				rparen := p.cur().Pos
				if _, err := p.expect(sscanner.RPAREN); err != nil {
					return nil, err
				}
				x = &ast.MethodCallExpr{Receiver: x, Name: name, Args: args, RParen: rparen}
				continue
			}
			x = &ast.FieldExpr{Receiver: x, NamePos: namePos, Name: name}
		case sscanner.LBRACK:
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			rbrack := p.cur().Pos
			if _, err := p.expect(sscanner.RBRACK); err != nil {
				return nil, err
			}
			x = &ast.IndexExpr{Receiver: x, Index: idx, RBrack: rbrack}
		case sscanner.QUESTION:
			qpos := p.advance().Pos
			x = &ast.TryExpr{X: x, QuestionPos: qpos}
		default:
			return x, nil
		}
	}
}

func (p *parser) parseLiteral() (*ast.BasicLit, error) {
	neg := ""
	valuePos := p.cur().Pos
	if p.at(sscanner.MINUS) {
		neg = "-"
		p.advance()
	}
	t := p.cur()
	switch t.Kind {
	case sscanner.INT:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.IntLit, Value: neg + t.Lit}, nil
	case sscanner.FLOAT:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.FloatLit, Value: neg + t.Lit}, nil
	case sscanner.STRING:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.StringLit, Value: t.Lit}, nil
	case sscanner.CHAR:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.CharLit, Value: t.Lit}, nil
	case sscanner.TRUE:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.BoolLit, Value: "true"}, nil
	case sscanner.FALSE:
		p.advance()
		return &ast.BasicLit{ValuePos: valuePos, Kind: ast.BoolLit, Value: "false"}, nil
	default:
		return nil, newParseError(t.Pos, "expected literal, found "+t.Kind.String())
	}
}

func (p *parser) parseMacroCallExpr() (*ast.MacroExpr, error) {
	namePos := p.cur().Pos
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.NOT); err != nil {
		return nil, err
	}
	var bracket ast.BracketKind
	var closeKind sscanner.Kind
	switch p.cur().Kind {
	case sscanner.LPAREN:
		bracket, closeKind = ast.ParenBracket, sscanner.RPAREN
	case sscanner.LBRACK:
		bracket, closeKind = ast.SquareBracket, sscanner.RBRACK
	default:
		return nil, newParseError(p.cur().Pos, "expected ( or [ after macro name")
	}
	p.advance()
	args, err := p.parseExprList(closeKind)
	if err != nil {
		return nil, err
	}
	rpos := p.cur().Pos
	if _, err := p.expect(closeKind); err != nil {
		return nil, err
	}
	return &ast.MacroExpr{NamePos: namePos, Name: name, Args: args, Bracket: bracket, RPos: rpos}, nil
}

func (p *parser) parseClosure() (*ast.ClosureExpr, error) {
	pipePos := p.cur().Pos
	isMove := false
	if p.at(sscanner.MOVE) {
		p.advance()
		isMove = true
	}
	var params []string
	if p.at(sscanner.PIPEPIPE) {
		p.advance()
	} else {
		if _, err := p.expect(sscanner.PIPE); err != nil {
			return nil, err
		}
		for !p.at(sscanner.PIPE) {
			name, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			params = append(params, name)
			if p.at(sscanner.COMMA) {
				p.advance()
				continue
			}
			break
		}
		if _, err := p.expect(sscanner.PIPE); err != nil {
			return nil, err
		}
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ClosureExpr{PipePos: pipePos, IsMove: isMove, Params: params, Body: body}, nil
}

// parseIfExpr parses `if cond { tailExpr } else { tailExpr }` (or
// `else if ...` chains) used in expression position, where per
// ast.IfExpr's contract both branches are exactly one expression.
func (p *parser) parseIfExpr() (*ast.IfExpr, error) {
	ifPos := p.cur().Pos
	if _, err := p.expect(sscanner.IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.ELSE); err != nil {
		return nil, err
	}
	var els ast.Expr
	if p.at(sscanner.IF) {
		els, err = p.parseIfExpr()
		if err != nil {
			return nil, err
		}
	} else {
		if _, err := p.expect(sscanner.LBRACE); err != nil {
			return nil, err
		}
		els, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(sscanner.RBRACE); err != nil {
			return nil, err
		}
	}
	return &ast.IfExpr{IfPos: ifPos, Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseMatchExpr() (*ast.MatchExpr, error) {
	matchPos := p.cur().Pos
	if _, err := p.expect(sscanner.MATCH); err != nil {
		return nil, err
	}
	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(sscanner.LBRACE); err != nil {
		return nil, err
	}
	var arms []ast.MatchArm
	for !p.at(sscanner.RBRACE) {
		pat, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(sscanner.FATARROW); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.MatchArm{Pattern: pat, Body: body})
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
	return &ast.MatchExpr{MatchPos: matchPos, Scrutinee: scrutinee, Arms: arms, RBrace: rbrace}, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	switch p.cur().Kind {
	case sscanner.INT, sscanner.FLOAT, sscanner.STRING, sscanner.CHAR, sscanner.TRUE, sscanner.FALSE:
		return p.parseLiteral()

	case sscanner.LPAREN:
		lparen := p.advance().Pos
		if p.at(sscanner.RPAREN) {
			rparen := p.advance().Pos
			return &ast.TupleExpr{LParen: lparen, RParen: rparen}, nil
		}
		first, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(sscanner.COMMA) {
			if _, err := p.expect(sscanner.RPAREN); err != nil {
				return nil, err
			}
			return first, nil
		}
		elts := []ast.Expr{first}
		for p.at(sscanner.COMMA) {
			p.advance()
			if p.at(sscanner.RPAREN) {
				break
			}
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elts = append(elts, e)
		}
		rparen := p.cur().Pos
		if _, err := p.expect(sscanner.RPAREN); err != nil {
			return nil, err
		}
		return &ast.TupleExpr{LParen: lparen, Elts: elts, RParen: rparen}, nil

	case sscanner.LBRACK:
		lbrack := p.advance().Pos
		elts, err := p.parseExprList(sscanner.RBRACK)
		if err != nil {
			return nil, err
		}
		rbrack := p.cur().Pos
		if _, err := p.expect(sscanner.RBRACK); err != nil {
			return nil, err
		}
		return &ast.ArrayExpr{LBrack: lbrack, Elts: elts, RBrack: rbrack}, nil

	case sscanner.LBRACE:
		return p.parseBlock()

	case sscanner.IF:
		return p.parseIfExpr()

	case sscanner.MATCH:
		return p.parseMatchExpr()

	case sscanner.MOVE, sscanner.PIPE, sscanner.PIPEPIPE:
		return p.parseClosure()

	case sscanner.DOTDOT, sscanner.DOTDOTEQ:
		inclusive := p.at(sscanner.DOTDOTEQ)
		dotPos := p.advance().Pos
		var end ast.Expr
		if p.canStartExpr() {
			e, err := p.parseBinary(1)
			if err != nil {
				return nil, err
			}
			end = e
		}
		return &ast.RangeExpr{DotDotPos: dotPos, End_: end, Inclusive: inclusive}, nil

	case sscanner.IDENT:
		if p.peek(1).Kind == sscanner.NOT {
			return p.parseMacroCallExpr()
		}
		namePos := p.cur().Pos
		name, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		if p.at(sscanner.COLONCOLON) {
			p.advance()
			methodName, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(sscanner.LPAREN); err != nil {
				return nil, err
			}
			args, err := p.parseExprList(sscanner.RPAREN)
			if err != nil {
				return nil, err
			}
			rparen := p.cur().Pos
			if _, err := p.expect(sscanner.RPAREN); err != nil {
				return nil, err
			}
			return &ast.AssocCallExpr{TypePos: namePos, Type: name, Name: methodName, Args: args, RParen: rparen}, nil
		}
		if p.at(sscanner.LPAREN) {
			p.advance()
			args, err := p.parseExprList(sscanner.RPAREN)
			if err != nil {
				return nil, err
			}
			rparen := p.cur().Pos
			if _, err := p.expect(sscanner.RPAREN); err != nil {
				return nil, err
			}
			if isConstructorName(name) {
				return &ast.ConstructorExpr{NamePos: namePos, Name: name, Args: args, EndPos: rparen}, nil
			}
			return &ast.CallExpr{Fun: &ast.Ident{NamePos: namePos, Name: name}, Args: args, RParen: rparen}, nil
		}
		if isConstructorName(name) {
			return &ast.ConstructorExpr{NamePos: namePos, Name: name, EndPos: p.toks[p.idx-1].Pos}, nil
		}
		return &ast.Ident{NamePos: namePos, Name: name}, nil

	default:
		return nil, newParseError(p.cur().Pos, "expected expression, found "+p.cur().Kind.String())
	}
}
