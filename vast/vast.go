// Package vast declares the V-AST: the verbose surface's own tree
// representation, built by the V-Parser (from crux/vscanner tokens) and
// consumed by crux/oxidize. The Reducer builds no V-AST: it writes V-text
// directly through crux/vprint.
//
// Per the data model's "no parent references" note, nodes carry no
// position information of their own: diagnostics are reported using
// absolute tokenizer positions (token.Pos), never an AST handle.
package vast

import "cruxlang.org/go/ast"

// Binary/unary operator, literal, bracket, and call-kind vocabularies are
// shared with the S-AST (crux/ast) rather than redeclared, since a single
// canonical value (say, ast.OpAdd) must always spell the same way in both
// V and S; see crux/catalog for the word <-> token mapping.
type (
	BinaryOp    = ast.BinaryOp
	UnaryOp     = ast.UnaryOp
	LitKind     = ast.LitKind
	BracketKind = ast.BracketKind
	CallKind    = ast.CallKind
)

// -----------------------------------------------------------------------------
// Items

// Item is any top-level V declaration.
type Item interface {
	itemNode()
}

func (*Function) itemNode()  {}
func (*Struct) itemNode()    {}
func (*Enum) itemNode()      {}
func (*TypeAlias) itemNode() {}
func (*Impl) itemNode()      {}
func (*Use) itemNode()       {}
func (*Const) itemNode()     {}
func (*Static) itemNode()    {}
func (*Verbatim) itemNode()  {}

// GenericParam is a generic type parameter with its trait bounds.
type GenericParam struct {
	Name   string
	Bounds []string
}

// Param is one function parameter.
type Param struct {
	Name    string
	Mutable bool
	Type    Type
}

// Function is a function item.
type Function struct {
	Name     string
	Generics []GenericParam
	Params   []Param
	Ret      Type // nil for unit return
	Body     []Stmt
	Tail     Expr // non-nil if the body ends in a tail expression
}

// StructField is one field of a Struct.
type StructField struct {
	Name string
	Type Type
}

// Struct is a struct item.
type Struct struct {
	Name     string
	Generics []GenericParam
	Fields   []StructField
}

// EnumVariant is one variant of an Enum.
type EnumVariant struct {
	Name string
	Type Type // nil if the variant has no payload
}

// Enum is an enum item.
type Enum struct {
	Name     string
	Generics []GenericParam
	Variants []EnumVariant
}

// TypeAlias is a `type Name as T` item.
type TypeAlias struct {
	Name     string
	Generics []GenericParam
	Value    Type
}

// Impl is an inherent impl block.
type Impl struct {
	Type    Type
	Methods []*Function
}

// Use is an import item.
type Use struct {
	Path string
}

// Const is a top-level constant.
type Const struct {
	Name  string
	Type  Type
	Value Expr
}

// Static is a top-level static.
type Static struct {
	Name  string
	Type  Type
	Value Expr
}

// Verbatim carries an opaque, untranslated span of original S-source
// through the V-text form. Per the round-trip invariant, the Oxidizer
// re-emits Source unescaped and in-place.
type Verbatim struct {
	Source string
}

// -----------------------------------------------------------------------------
// Statements

// Stmt is any statement inside a function body.
type Stmt interface {
	stmtNode()
}

func (*Let) stmtNode()      {}
func (*Assign) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*ForEach) stmtNode()  {}
func (*Loop) stmtNode()     {}
func (*Return) stmtNode()   {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*MacroStmt) stmtNode() {}

// Let is `define [mutable] pattern as expr`.
type Let struct {
	Pattern Pattern
	Type    Type // nil if elided
	Value   Expr
	Mutable bool
}

// Assign is `set lvalue equal to expr`.
type Assign struct {
	Lvalue Expr
	Value  Expr
}

// ExprStmt is a bare expression statement. TrailingSemicolon mirrors the
// S-side trailing semicolon so tail-expression status round-trips (see
// the Tail field of Function and the testable property in spec.md §8).
type ExprStmt struct {
	X                Expr
	TrailingSemicolon bool
}

// If is a statement-position `if ... then ... [otherwise ...]`.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no otherwise branch
}

// While is `while cond repeat ...`.
type While struct {
	Cond Expr
	Body []Stmt
}

// ForEach is `for each var in iter repeat ...`.
type ForEach struct {
	Var  string
	Iter Expr
	Body []Stmt
}

// Loop is an unconditional `repeat forever ...`-style loop (S `loop {}`).
type Loop struct {
	Body []Stmt
}

// Return is `return [expr]`.
type Return struct {
	Value Expr // nil for a bare return
}

// Break is `break`.
type Break struct{}

// Continue is `continue`.
type Continue struct{}

// MacroStmt is a macro invocation used as a statement.
type MacroStmt struct {
	X *Macro
}

// -----------------------------------------------------------------------------
// Expressions

// Expr is any V expression node.
type Expr interface {
	exprNode()
}

func (*Ident) exprNode()           {}
func (*Literal) exprNode()         {}
func (*Binary) exprNode()          {}
func (*Unary) exprNode()           {}
func (*MethodCall) exprNode()      {}
func (*AssocCall) exprNode()       {}
func (*FnCall) exprNode()          {}
func (*Field) exprNode()           {}
func (*Index) exprNode()           {}
func (*Tuple) exprNode()           {}
func (*Array) exprNode()           {}
func (*Range) exprNode()           {}
func (*Closure) exprNode()         {}
func (*Macro) exprNode()           {}
func (*Try) exprNode()             {}
func (*Constructor) exprNode()     {}
func (*IfExpr) exprNode()          {}
func (*Match) exprNode()           {}
func (*Block) exprNode()           {}

// Ident is an identifier reference, already sanitized/unsanitized per
// crux/catalog rules as appropriate for the direction being rendered.
type Ident struct {
	Name string
}

// Literal is a literal value.
type Literal struct {
	Kind  LitKind
	Value string
}

// Binary is a binary operator expression.
type Binary struct {
	X  Expr
	Op BinaryOp
	Y  Expr
}

// Unary is a unary/prefix operator expression.
type Unary struct {
	Op UnaryOp
	X  Expr
}

// MethodCall is `call method name on receiver with args...`.
type MethodCall struct {
	Receiver Expr
	Name     string
	Args     []Expr
}

// AssocCall is `call associated function name on Type with args...`.
type AssocCall struct {
	Type string
	Name string
	Args []Expr
}

// FnCall is a plain function call.
type FnCall struct {
	Name string
	Args []Expr
}

// Field is `field name of receiver`.
type Field struct {
	Receiver Expr
	Name     string
}

// Index is `receiver[index]` (rendered with its own V phrase).
type Index struct {
	Receiver Expr
	Index    Expr
}

// Tuple is a tuple expression; empty Elts is the unit value.
type Tuple struct {
	Elts []Expr
}

// Array is an array/list literal expression.
type Array struct {
	Elts []Expr
}

// Range is `start..end`/`start..=end`.
type Range struct {
	Start     Expr // nil if open-ended at the start
	End       Expr // nil if open-ended at the end
	Inclusive bool
}

// Closure is `[move ]closure with parameters ... and body ...`.
type Closure struct {
	IsMove bool
	Params []string
	Body   Expr
}

// Macro is `macro name with args... paren|bracket`.
type Macro struct {
	Name    string
	Args    []Expr
	Bracket BracketKind
}

// Try is `expr unwrap or return error`.
type Try struct {
	X Expr
}

// Constructor is `some of x`, `none`, `ok of x`, `error of x`, or a user
// enum variant constructor.
type Constructor struct {
	Name string
	Args []Expr
}

// IfExpr is an if-expression (both branches yield a value).
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// MatchArm is one arm of a Match.
type MatchArm struct {
	Pattern Pattern
	Body    Expr
}

// Match is a match expression.
type Match struct {
	Scrutinee Expr
	Arms      []MatchArm
}

// Block is a brace/begin-end block used in expression position.
type Block struct {
	Stmts []Stmt
	Tail  Expr // nil if the block has no tail expression
}

// -----------------------------------------------------------------------------
// Types

// Type is any V type node.
type Type interface {
	typeNode()
}

func (*Named) typeNode()      {}
func (*Reference) typeNode()  {}
func (*RawPointer) typeNode() {}
func (*Option) typeNode()     {}
func (*Result) typeNode()     {}
func (*Vec) typeNode()        {}
func (*Box) typeNode()        {}
func (*TupleType) typeNode()  {}
func (*Slice) typeNode()      {}
func (*Array_) typeNode()     {}
func (*FnType) typeNode()     {}
func (*ImplTrait) typeNode()  {}
func (*Unknown) typeNode()    {}

// Named is a user or standard-library named type, e.g. `i32`, `MyStruct`.
type Named struct {
	Path string
	Args []Type
}

// Reference is `&T` / `&mut T`, rendered as `reference to`/`mutable
// reference to`.
type Reference struct {
	Mutable bool
	Inner   Type
}

// RawPointer is `*const T` / `*mut T`.
type RawPointer struct {
	Mutable bool
	Inner   Type
}

// Option is `Option<T>`, rendered `optional T`.
type Option struct {
	Elem Type
}

// Result is `Result<T, E>`, rendered `result of T or error E`. When Err is
// the empty tuple type, the S side renders the literal `()`.
type Result struct {
	Ok  Type
	Err Type
}

// Vec is `Vec<T>`, rendered `list of T`.
type Vec struct {
	Elem Type
}

// Box is `Box<T>`.
type Box struct {
	Elem Type
}

// TupleType is a tuple type; empty Elts is the distinguished `unit` type
// per the data-model invariant (the only path to `unit`/`()`).
type TupleType struct {
	Elts []Type
}

// IsUnit reports whether t is the empty tuple type.
func (t *TupleType) IsUnit() bool { return len(t.Elts) == 0 }

// Slice is `[T]`.
type Slice struct {
	Elem Type
}

// Array_ is `[T; N]`. Named with a trailing underscore to avoid colliding
// with the Array expression node in the same package.
type Array_ struct {
	Elem Type
	Len  string
}

// FnType is a function-pointer type.
type FnType struct {
	Params []Type
	Ret    Type // nil for unit
}

// ImplTrait is `impl Bound` used as a return type; see SPEC_FULL.md §9.
type ImplTrait struct {
	Bound string
}

// Unknown is the `unknown_type` placeholder, which the Reducer writes for
// the S type `_`; the Oxidizer rejects it as unrepresentable.
type Unknown struct{}

// -----------------------------------------------------------------------------
// Patterns

// Pattern is any V pattern node.
type Pattern interface {
	patternNode()
}

func (*Binding) patternNode()      {}
func (*PatternCtor) patternNode()  {}
func (*PatternTuple) patternNode() {}
func (*PatternLit) patternNode()   {}
func (*Wildcard) patternNode()     {}

// Binding is a simple name binding pattern.
type Binding struct {
	Name    string
	Mutable bool
}

// PatternCtor matches an enum variant constructor pattern.
type PatternCtor struct {
	Name string
	Subs []Pattern
}

// PatternTuple destructures a tuple pattern.
type PatternTuple struct {
	Elts []Pattern
}

// PatternLit matches a literal value.
type PatternLit struct {
	Kind  LitKind
	Value string
}

// Wildcard is `_`.
type Wildcard struct{}
