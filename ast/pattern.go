package ast

import "cruxlang.org/go/token"

// BindingPattern binds a value to a name, e.g. a `match` arm's `x` or a
// function parameter's name used as a pattern.
type BindingPattern struct {
	NamePos token.Pos
	Name    string
	Mutable bool
}

func (p *BindingPattern) Pos() token.Pos { return p.NamePos }
func (p *BindingPattern) End() token.Pos { return p.NamePos.Add(len(p.Name)) }

// ConstructorPattern matches an enum variant, e.g. `Some(x)`, `None`,
// `Ok(x)`, `Err(e)`, or a user variant with zero or more sub-patterns.
type ConstructorPattern struct {
	NamePos token.Pos
	Name    string
	Subs    []Pattern
	EndPos  token.Pos
}

func (p *ConstructorPattern) Pos() token.Pos { return p.NamePos }
func (p *ConstructorPattern) End() token.Pos { return p.EndPos }

// TuplePattern destructures a tuple, e.g. `(a, b)`.
type TuplePattern struct {
	LParen token.Pos
	Elts   []Pattern
	RParen token.Pos
}

func (p *TuplePattern) Pos() token.Pos { return p.LParen }
func (p *TuplePattern) End() token.Pos { return p.RParen }

// LiteralPattern matches a literal value, e.g. `0` or `"x"` in a match arm.
type LiteralPattern struct {
	Lit *BasicLit
}

func (p *LiteralPattern) Pos() token.Pos { return p.Lit.Pos() }
func (p *LiteralPattern) End() token.Pos { return p.Lit.End() }

// WildcardPattern is `_`.
type WildcardPattern struct {
	At token.Pos
}

func (p *WildcardPattern) Pos() token.Pos { return p.At }
func (p *WildcardPattern) End() token.Pos { return p.At.Add(1) }
