package ast

import "cruxlang.org/go/token"

// NamedType is `Name` or `Name<Args...>`, e.g. a user struct/enum, or a
// plain generic-free path.
type NamedType struct {
	NamePos  token.Pos
	Path     string
	Args     []Type
	EndPos   token.Pos
}

func (t *NamedType) Pos() token.Pos { return t.NamePos }
func (t *NamedType) End() token.Pos { return t.EndPos }

// RefType is `&T` or `&mut T`.
type RefType struct {
	AmpPos  token.Pos
	Mutable bool
	Inner   Type
}

func (t *RefType) Pos() token.Pos { return t.AmpPos }
func (t *RefType) End() token.Pos { return t.Inner.End() }

// RawPtrType is `*const T` or `*mut T`.
type RawPtrType struct {
	StarPos token.Pos
	Mutable bool
	Inner   Type
}

func (t *RawPtrType) Pos() token.Pos { return t.StarPos }
func (t *RawPtrType) End() token.Pos { return t.Inner.End() }

// OptionType is `Option<T>`.
type OptionType struct {
	NamePos token.Pos
	Elem    Type
	EndPos  token.Pos
}

func (t *OptionType) Pos() token.Pos { return t.NamePos }
func (t *OptionType) End() token.Pos { return t.EndPos }

// ResultType is `Result<T, E>`.
type ResultType struct {
	NamePos token.Pos
	Ok      Type
	Err     Type
	EndPos  token.Pos
}

func (t *ResultType) Pos() token.Pos { return t.NamePos }
func (t *ResultType) End() token.Pos { return t.EndPos }

// VecType is `Vec<T>`.
type VecType struct {
	NamePos token.Pos
	Elem    Type
	EndPos  token.Pos
}

func (t *VecType) Pos() token.Pos { return t.NamePos }
func (t *VecType) End() token.Pos { return t.EndPos }

// BoxType is `Box<T>`.
type BoxType struct {
	NamePos token.Pos
	Elem    Type
	EndPos  token.Pos
}

func (t *BoxType) Pos() token.Pos { return t.NamePos }
func (t *BoxType) End() token.Pos { return t.EndPos }

// TupleType is `(T1, T2, ...)`. An empty Elts denotes the unit type `()`,
// which per the data-model invariant is the single canonical path to the
// `unit` / `()` rendering in both directions.
type TupleType struct {
	LParen token.Pos
	Elts   []Type
	RParen token.Pos
}

func (t *TupleType) Pos() token.Pos { return t.LParen }
func (t *TupleType) End() token.Pos { return t.RParen }

// IsUnit reports whether t is the empty tuple type.
func (t *TupleType) IsUnit() bool { return len(t.Elts) == 0 }

// SliceType is `[T]`.
type SliceType struct {
	LBrack token.Pos
	Elem   Type
	RBrack token.Pos
}

func (t *SliceType) Pos() token.Pos { return t.LBrack }
func (t *SliceType) End() token.Pos { return t.RBrack }

// ArrayType is `[T; N]`.
type ArrayType struct {
	LBrack token.Pos
	Elem   Type
	Len    string // the array length, kept as literal text (e.g. "4")
	RBrack token.Pos
}

func (t *ArrayType) Pos() token.Pos { return t.LBrack }
func (t *ArrayType) End() token.Pos { return t.RBrack }

// FnType is a function-pointer/closure type `fn(T1, T2) -> R`.
type FnType struct {
	FnPos  token.Pos
	Params []Type
	Ret    Type // nil if unit
	EndPos token.Pos
}

func (t *FnType) Pos() token.Pos { return t.FnPos }
func (t *FnType) End() token.Pos { return t.EndPos }

// ImplTraitType is `impl Bound` in a type position; the S-parser builds it
// wherever `impl` starts a type. Per SPEC_FULL.md §9 (Open Question
// resolution), its bound is carried through reduction as
// `implementing <Bound>` and restored by the Oxidizer.
type ImplTraitType struct {
	ImplPos token.Pos
	Bound   string
	EndPos  token.Pos
}

func (t *ImplTraitType) Pos() token.Pos { return t.ImplPos }
func (t *ImplTraitType) End() token.Pos { return t.EndPos }

// UnknownType is the S type `_`. The Reducer writes it as the placeholder
// `unknown_type`, which the Oxidizer rejects as unrepresentable, so it does
// not round-trip back to S.
type UnknownType struct {
	At token.Pos
}

func (t *UnknownType) Pos() token.Pos { return t.At }
func (t *UnknownType) End() token.Pos { return t.At }
