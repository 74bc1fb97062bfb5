package ast

import "cruxlang.org/go/token"

// BracketKind distinguishes macro call-site delimiters, which the spec
// requires to survive both translation directions as an explicit field
// rather than being inferred at emit time.
type BracketKind int

const (
	ParenBracket BracketKind = iota
	SquareBracket
)

// BinaryOp enumerates the supported binary operators, spelled here with
// their canonical S-token; crux/catalog owns the V-word mapping.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd // &&
	OpOr  // ||
)

// UnaryOp enumerates the supported unary/prefix operators.
type UnaryOp int

const (
	OpNeg UnaryOp = iota // -x
	OpNot                // !x
)

// CallKind distinguishes `r.m(...)` method calls from `T::m(...)`
// associated-function calls. Per SPEC_FULL.md §9, this is carried as an
// explicit node field rather than re-derived at Oxidize time.
type CallKind int

const (
	CallKindMethod CallKind = iota
	CallKindAssoc
)

// Ident is an identifier reference.
type Ident struct {
	NamePos token.Pos
	Name    string
}

func (x *Ident) Pos() token.Pos { return x.NamePos }
func (x *Ident) End() token.Pos { return x.NamePos.Add(len(x.Name)) }

// LitKind classifies a BasicLit's Value.
type LitKind int

const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	CharLit
	BoolLit
)

// BasicLit is an integer, float, string, char, or bool literal.
type BasicLit struct {
	ValuePos token.Pos
	Kind     LitKind
	Value    string // as written in source, e.g. `42`, `"foo"`, `'a'`, `true`
}

func (x *BasicLit) Pos() token.Pos { return x.ValuePos }
func (x *BasicLit) End() token.Pos { return x.ValuePos.Add(len(x.Value)) }

// BinaryExpr is `l op r`.
type BinaryExpr struct {
	X  Expr
	Op BinaryOp
	Y  Expr
}

func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }

// UnaryExpr is `op x`.
type UnaryExpr struct {
	OpPos token.Pos
	Op    UnaryOp
	X     Expr
}

func (x *UnaryExpr) Pos() token.Pos { return x.OpPos }
func (x *UnaryExpr) End() token.Pos { return x.X.End() }

// MethodCallExpr is `receiver.name(args...)`.
type MethodCallExpr struct {
	Receiver Expr
	Name     string
	Args     []Expr
	RParen   token.Pos
}

func (x *MethodCallExpr) Pos() token.Pos { return x.Receiver.Pos() }
func (x *MethodCallExpr) End() token.Pos { return x.RParen }

// AssocCallExpr is `Type::name(args...)`.
type AssocCallExpr struct {
	TypePos token.Pos
	Type    string
	Name    string
	Args    []Expr
	RParen  token.Pos
}

func (x *AssocCallExpr) Pos() token.Pos { return x.TypePos }
func (x *AssocCallExpr) End() token.Pos { return x.RParen }

// CallExpr is a plain function call `name(args...)`.
type CallExpr struct {
	Fun    Expr
	Args   []Expr
	RParen token.Pos
}

func (x *CallExpr) Pos() token.Pos { return x.Fun.Pos() }
func (x *CallExpr) End() token.Pos { return x.RParen }

// FieldExpr is `receiver.name` (a struct field access, not a method call).
type FieldExpr struct {
	Receiver Expr
	NamePos  token.Pos
	Name     string
}

func (x *FieldExpr) Pos() token.Pos { return x.Receiver.Pos() }
func (x *FieldExpr) End() token.Pos { return x.NamePos.Add(len(x.Name)) }

// IndexExpr is `receiver[index]`.
type IndexExpr struct {
	Receiver Expr
	Index    Expr
	RBrack   token.Pos
}

func (x *IndexExpr) Pos() token.Pos { return x.Receiver.Pos() }
func (x *IndexExpr) End() token.Pos { return x.RBrack }

// TupleExpr is `(a, b, c)`, or `()` for the unit value.
type TupleExpr struct {
	LParen token.Pos
	Elts   []Expr
	RParen token.Pos
}

func (x *TupleExpr) Pos() token.Pos { return x.LParen }
func (x *TupleExpr) End() token.Pos { return x.RParen }

// ArrayExpr is `[a, b, c]`.
type ArrayExpr struct {
	LBrack token.Pos
	Elts   []Expr
	RBrack token.Pos
}

func (x *ArrayExpr) Pos() token.Pos { return x.LBrack }
func (x *ArrayExpr) End() token.Pos { return x.RBrack }

// RangeExpr is `start..end` or `start..=end`; Start and End may be nil.
type RangeExpr struct {
	Start     Expr
	DotDotPos token.Pos
	End_      Expr
	Inclusive bool
}

func (x *RangeExpr) Pos() token.Pos {
	if x.Start != nil {
		return x.Start.Pos()
	}
	return x.DotDotPos
}
func (x *RangeExpr) End() token.Pos {
	if x.End_ != nil {
		return x.End_.End()
	}
	return x.DotDotPos
}

// ClosureExpr is `[move] |params| body`.
type ClosureExpr struct {
	PipePos token.Pos
	IsMove  bool
	Params  []string
	Body    Expr
}

func (x *ClosureExpr) Pos() token.Pos { return x.PipePos }
func (x *ClosureExpr) End() token.Pos { return x.Body.End() }

// MacroExpr is `name!(args...)` or `name![args...]`.
type MacroExpr struct {
	NamePos token.Pos
	Name    string
	Args    []Expr
	Bracket BracketKind
	RPos    token.Pos
}

func (x *MacroExpr) Pos() token.Pos { return x.NamePos }
func (x *MacroExpr) End() token.Pos { return x.RPos }

// TryExpr is `expr?`.
type TryExpr struct {
	X         Expr
	QuestionPos token.Pos
}

func (x *TryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *TryExpr) End() token.Pos { return x.QuestionPos.Add(1) }

// ConstructorExpr is `Some(x)`, `None`, `Ok(x)`, `Err(x)`, or a user enum
// variant constructor `Variant(args...)`.
type ConstructorExpr struct {
	NamePos token.Pos
	Name    string
	Args    []Expr
	EndPos  token.Pos
}

func (x *ConstructorExpr) Pos() token.Pos { return x.NamePos }
func (x *ConstructorExpr) End() token.Pos { return x.EndPos }

// IfExpr is `if cond { thenExpr } else { elseExpr }` used in expression
// position (both branches required, both single tail expressions).
type IfExpr struct {
	IfPos token.Pos
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (x *IfExpr) Pos() token.Pos { return x.IfPos }
func (x *IfExpr) End() token.Pos { return x.Else.End() }

// MatchArm is one `pattern => expr` arm of a MatchExpr.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
}

// MatchExpr is `match scrutinee { arm, arm, ... }`.
type MatchExpr struct {
	MatchPos token.Pos
	Scrutinee Expr
	Arms     []MatchArm
	RBrace   token.Pos
}

func (x *MatchExpr) Pos() token.Pos { return x.MatchPos }
func (x *MatchExpr) End() token.Pos { return x.RBrace }

// BlockExpr is `{ stmt; stmt; tailExpr }`.
type BlockExpr struct {
	LBrace token.Pos
	Stmts  []Stmt
	RBrace token.Pos
}

func (x *BlockExpr) Pos() token.Pos { return x.LBrace }
func (x *BlockExpr) End() token.Pos { return x.RBrace }
