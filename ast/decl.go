package ast

import "cruxlang.org/go/token"

// GenericParam names a generic type parameter together with the trait
// bounds it must implement (possibly none).
type GenericParam struct {
	Name   string
	Bounds []string
}

// Param is a single function or closure parameter.
type Param struct {
	NamePos token.Pos
	Name    string
	Mutable bool
	Type    Type // nil for closure parameters, which are untyped in S
}

// FuncDecl is a function item:
//
//	fn name<T: Bound>(mut p: T, ...) -> T { ... }
type FuncDecl struct {
	FnPos    token.Pos
	Name     string
	Generics []GenericParam
	Params   []*Param
	Ret      Type // nil if the function returns unit
	Body     *BlockExpr
	RBrace   token.Pos
}

func (d *FuncDecl) Pos() token.Pos { return d.FnPos }
func (d *FuncDecl) End() token.Pos { return d.RBrace }

// StructField is one field of a StructDecl.
type StructField struct {
	Name string
	Type Type
}

// StructDecl is a struct item.
type StructDecl struct {
	StructPos token.Pos
	Name      string
	Generics  []GenericParam
	Fields    []StructField
	RBrace    token.Pos
}

func (d *StructDecl) Pos() token.Pos { return d.StructPos }
func (d *StructDecl) End() token.Pos { return d.RBrace }

// EnumVariant is one variant of an EnumDecl, optionally carrying a payload
// type (a tuple-like variant with exactly one field, the common case this
// module supports).
type EnumVariant struct {
	Name string
	Type Type // nil if the variant carries no payload
}

// EnumDecl is an enum item.
type EnumDecl struct {
	EnumPos  token.Pos
	Name     string
	Generics []GenericParam
	Variants []EnumVariant
	RBrace   token.Pos
}

func (d *EnumDecl) Pos() token.Pos { return d.EnumPos }
func (d *EnumDecl) End() token.Pos { return d.RBrace }

// TypeAliasDecl is a `type Name<...> = T;` item.
type TypeAliasDecl struct {
	TypePos  token.Pos
	Name     string
	Generics []GenericParam
	Value    Type
	Semi     token.Pos
}

func (d *TypeAliasDecl) Pos() token.Pos { return d.TypePos }
func (d *TypeAliasDecl) End() token.Pos { return d.Semi }

// ImplDecl is an `impl Type { fn ... }` block. Only inherent impls (no
// trait name) containing only FuncDecl members are in the supported
// subset; anything richer falls back to Verbatim at the Reducer.
type ImplDecl struct {
	ImplPos token.Pos
	Type    Type
	Methods []*FuncDecl
	RBrace  token.Pos
}

func (d *ImplDecl) Pos() token.Pos { return d.ImplPos }
func (d *ImplDecl) End() token.Pos { return d.RBrace }

// UseDecl is a `use path::to::item;` import item.
type UseDecl struct {
	UsePos token.Pos
	Path   string
	Semi   token.Pos
}

func (d *UseDecl) Pos() token.Pos { return d.UsePos }
func (d *UseDecl) End() token.Pos { return d.Semi }

// ConstDecl is a `const NAME: T = expr;` item.
type ConstDecl struct {
	ConstPos token.Pos
	Name     string
	Type     Type
	Value    Expr
	Semi     token.Pos
}

func (d *ConstDecl) Pos() token.Pos { return d.ConstPos }
func (d *ConstDecl) End() token.Pos { return d.Semi }

// StaticDecl is a `static NAME: T = expr;` item.
type StaticDecl struct {
	StaticPos token.Pos
	Name      string
	Type      Type
	Value     Expr
	Semi      token.Pos
}

func (d *StaticDecl) Pos() token.Pos { return d.StaticPos }
func (d *StaticDecl) End() token.Pos { return d.Semi }
