// Package ast declares the S-AST node shapes the Reducer consumes: the
// subset of a punctuation-heavy, Rust-like systems language (ownership,
// generics with trait bounds, algebraic data types, pattern matching,
// closures, macro-call syntax) that this module's "host" parser
// (cruxlang.org/go/sparser) is able to produce, per SPEC_FULL.md's
// resolution of the spec's external-host-parser boundary.
package ast

import "cruxlang.org/go/token"

// A Node is any node in the S-AST.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// A Decl is a top-level item: function, struct, enum, type alias, impl
// block, use/import, const, or static declaration, or an opaque Verbatim
// payload standing in for anything the host parser could not place in the
// supported subset.
type Decl interface {
	Node
	declNode()
}

func (*FuncDecl) declNode()      {}
func (*StructDecl) declNode()    {}
func (*EnumDecl) declNode()      {}
func (*TypeAliasDecl) declNode() {}
func (*ImplDecl) declNode()      {}
func (*UseDecl) declNode()       {}
func (*ConstDecl) declNode()     {}
func (*StaticDecl) declNode()    {}
func (*Verbatim) declNode()      {}

// A Stmt is a statement inside a function or block body.
type Stmt interface {
	Node
	stmtNode()
}

func (*LetStmt) stmtNode()      {}
func (*AssignStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*LoopStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*MacroStmt) stmtNode()    {}

// An Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

func (*Ident) exprNode()           {}
func (*BasicLit) exprNode()        {}
func (*BinaryExpr) exprNode()      {}
func (*UnaryExpr) exprNode()       {}
func (*MethodCallExpr) exprNode()  {}
func (*AssocCallExpr) exprNode()   {}
func (*CallExpr) exprNode()        {}
func (*FieldExpr) exprNode()       {}
func (*IndexExpr) exprNode()       {}
func (*TupleExpr) exprNode()       {}
func (*ArrayExpr) exprNode()       {}
func (*RangeExpr) exprNode()       {}
func (*ClosureExpr) exprNode()     {}
func (*MacroExpr) exprNode()       {}
func (*TryExpr) exprNode()         {}
func (*ConstructorExpr) exprNode() {}
func (*IfExpr) exprNode()          {}
func (*MatchExpr) exprNode()       {}
func (*BlockExpr) exprNode()       {}

// A Type is any type node.
type Type interface {
	Node
	typeNode()
}

func (*NamedType) typeNode()     {}
func (*RefType) typeNode()       {}
func (*RawPtrType) typeNode()    {}
func (*OptionType) typeNode()    {}
func (*ResultType) typeNode()    {}
func (*VecType) typeNode()       {}
func (*BoxType) typeNode()       {}
func (*TupleType) typeNode()     {}
func (*SliceType) typeNode()     {}
func (*ArrayType) typeNode()     {}
func (*FnType) typeNode()        {}
func (*ImplTraitType) typeNode() {}
func (*UnknownType) typeNode()   {}

// A Pattern is any pattern node, used in let-bindings, match arms, and
// closure/function parameters.
type Pattern interface {
	Node
	patternNode()
}

func (*BindingPattern) patternNode()     {}
func (*ConstructorPattern) patternNode() {}
func (*TuplePattern) patternNode()       {}
func (*LiteralPattern) patternNode()     {}
func (*WildcardPattern) patternNode()    {}

// -----------------------------------------------------------------------------
// File

// A File is the root of a parsed S-source file: a sequence of items.
type File struct {
	Decls []Decl
}

func (f *File) Pos() token.Pos {
	if len(f.Decls) == 0 {
		return token.NoPos
	}
	return f.Decls[0].Pos()
}

func (f *File) End() token.Pos {
	if len(f.Decls) == 0 {
		return token.NoPos
	}
	return f.Decls[len(f.Decls)-1].End()
}

// -----------------------------------------------------------------------------
// Verbatim

// Verbatim wraps a span of original S-source that the host parser could not
// (or the Reducer chose not to) place in the supported node set. Source
// holds the exact original bytes for that span; oxidation re-emits it
// unescaped and in-place, per the verbatim passthrough invariant.
type Verbatim struct {
	From, To token.Pos
	Source   string
}

func (v *Verbatim) Pos() token.Pos { return v.From }
func (v *Verbatim) End() token.Pos { return v.To }
