package sparser

import (
	"testing"

	"cruxlang.org/go/ast"
	"cruxlang.org/go/token"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	f := token.NewFile("t.rs", len(src))
	file, err := ParseFile(f, src)
	if err != nil {
		t.Fatalf("ParseFile(%q) error = %v", src, err)
	}
	return file
}

func TestParseSimpleFunction(t *testing.T) {
	src := `fn add(a: i32, b: i32) -> i32 { a + b }`
	file := parse(t, src)
	if len(file.Decls) != 1 {
		t.Fatalf("got %d decls, want 1: %#v", len(file.Decls), file.Decls)
	}
	fn, ok := file.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("decl is %T, want *ast.FuncDecl", file.Decls[0])
	}
	if fn.Name != "add" {
		t.Errorf("fn.Name = %q, want %q", fn.Name, "add")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if fn.Params[0].Name != "a" || fn.Params[1].Name != "b" {
		t.Errorf("params = %+v", fn.Params)
	}
	if fn.Ret == nil {
		t.Fatal("fn.Ret is nil, want i32 NamedType")
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("got %d body stmts, want 1 (the tail expr)", len(fn.Body.Stmts))
	}
	exprStmt, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("tail stmt is %T, want *ast.ExprStmt", fn.Body.Stmts[0])
	}
	bin, ok := exprStmt.X.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("tail expr is %T, want *ast.BinaryExpr", exprStmt.X)
	}
	if bin.Op != ast.OpAdd {
		t.Errorf("bin.Op = %v, want OpAdd", bin.Op)
	}
}

func TestParseGenericFunction(t *testing.T) {
	src := `fn first<T>(items: Vec<T>) -> Option<T> { None }`
	file := parse(t, src)
	fn := file.Decls[0].(*ast.FuncDecl)
	if len(fn.Generics) != 1 || fn.Generics[0].Name != "T" {
		t.Errorf("fn.Generics = %+v, want [{T []}]", fn.Generics)
	}
	if _, ok := fn.Ret.(*ast.OptionType); !ok {
		t.Errorf("fn.Ret is %T, want *ast.OptionType", fn.Ret)
	}
}

func TestParseStruct(t *testing.T) {
	src := `struct Point { x: i32, y: i32 }`
	file := parse(t, src)
	st, ok := file.Decls[0].(*ast.StructDecl)
	if !ok {
		t.Fatalf("decl is %T, want *ast.StructDecl", file.Decls[0])
	}
	if st.Name != "Point" {
		t.Errorf("st.Name = %q, want %q", st.Name, "Point")
	}
	if len(st.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(st.Fields))
	}
	if st.Fields[0].Name != "x" || st.Fields[1].Name != "y" {
		t.Errorf("fields = %+v", st.Fields)
	}
}

func TestParseEnum(t *testing.T) {
	src := `enum Shape { Circle(f64), Square(f64), Point }`
	file := parse(t, src)
	en, ok := file.Decls[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("decl is %T, want *ast.EnumDecl", file.Decls[0])
	}
	if len(en.Variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(en.Variants))
	}
	if en.Variants[0].Name != "Circle" || en.Variants[0].Type == nil {
		t.Errorf("variant 0 = %+v, want Circle with a payload type", en.Variants[0])
	}
	if en.Variants[2].Name != "Point" || en.Variants[2].Type != nil {
		t.Errorf("variant 2 = %+v, want Point with no payload", en.Variants[2])
	}
}

func TestParseTypeAlias(t *testing.T) {
	src := `type Pair = (i32, i32);`
	file := parse(t, src)
	ta, ok := file.Decls[0].(*ast.TypeAliasDecl)
	if !ok {
		t.Fatalf("decl is %T, want *ast.TypeAliasDecl", file.Decls[0])
	}
	if ta.Name != "Pair" {
		t.Errorf("ta.Name = %q, want %q", ta.Name, "Pair")
	}
	if _, ok := ta.Value.(*ast.TupleType); !ok {
		t.Errorf("ta.Value is %T, want *ast.TupleType", ta.Value)
	}
}

func TestParseImpl(t *testing.T) {
	src := `impl Point { fn magnitude(self) -> f64 { 0.0 } }`
	file := parse(t, src)
	im, ok := file.Decls[0].(*ast.ImplDecl)
	if !ok {
		t.Fatalf("decl is %T, want *ast.ImplDecl", file.Decls[0])
	}
	if len(im.Methods) != 1 || im.Methods[0].Name != "magnitude" {
		t.Errorf("im.Methods = %+v", im.Methods)
	}
}

func TestParseUseConstStatic(t *testing.T) {
	src := `use std::collections::HashMap;
const MAX: i32 = 100;
static NAME: i32 = 1;`
	file := parse(t, src)
	if len(file.Decls) != 3 {
		t.Fatalf("got %d decls, want 3: %#v", len(file.Decls), file.Decls)
	}
	use, ok := file.Decls[0].(*ast.UseDecl)
	if !ok || use.Path != "std::collections::HashMap" {
		t.Errorf("decl 0 = %+v, want UseDecl std::collections::HashMap", file.Decls[0])
	}
	c, ok := file.Decls[1].(*ast.ConstDecl)
	if !ok || c.Name != "MAX" {
		t.Errorf("decl 1 = %+v, want ConstDecl MAX", file.Decls[1])
	}
	s, ok := file.Decls[2].(*ast.StaticDecl)
	if !ok || s.Name != "NAME" {
		t.Errorf("decl 2 = %+v, want StaticDecl NAME", file.Decls[2])
	}
}

func TestParseVerbatimFallbackForUnsupportedConstruct(t *testing.T) {
	// Trait declarations (as opposed to inherent impls) are not in the
	// supported subset: the whole item degrades to Verbatim instead of
	// aborting the file.
	src := `trait Shape { fn area(&self) -> f64; }
fn ok_fn() -> i32 { 1 }`
	file := parse(t, src)
	if len(file.Decls) != 2 {
		t.Fatalf("got %d decls, want 2: %#v", len(file.Decls), file.Decls)
	}
	vb, ok := file.Decls[0].(*ast.Verbatim)
	if !ok {
		t.Fatalf("decl 0 is %T, want *ast.Verbatim", file.Decls[0])
	}
	if vb.Source == "" {
		t.Error("Verbatim.Source should capture the original trait declaration text")
	}
	fn, ok := file.Decls[1].(*ast.FuncDecl)
	if !ok || fn.Name != "ok_fn" {
		t.Errorf("decl 1 = %+v, want FuncDecl ok_fn (parsing resumed after the Verbatim item)", file.Decls[1])
	}
}

func TestParseVerbatimResyncSkipsStringDelimiters(t *testing.T) {
	src := `trait Weird { fn f(&self) -> &'static str { "contains a } brace" } }
fn after() -> i32 { 2 }`
	file := parse(t, src)
	if len(file.Decls) != 2 {
		t.Fatalf("got %d decls, want 2: %#v", len(file.Decls), file.Decls)
	}
	if _, ok := file.Decls[0].(*ast.Verbatim); !ok {
		t.Fatalf("decl 0 is %T, want *ast.Verbatim", file.Decls[0])
	}
	fn, ok := file.Decls[1].(*ast.FuncDecl)
	if !ok || fn.Name != "after" {
		t.Errorf("decl 1 = %+v, want FuncDecl after", file.Decls[1])
	}
}

func TestParseMethodCallAndTryExpr(t *testing.T) {
	src := `fn run(x: Result<i32, i32>) -> i32 { x.unwrap_or(0)? }`
	file := parse(t, src)
	fn := file.Decls[0].(*ast.FuncDecl)
	exprStmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	tryExpr, ok := exprStmt.X.(*ast.TryExpr)
	if !ok {
		t.Fatalf("tail expr is %T, want *ast.TryExpr", exprStmt.X)
	}
	call, ok := tryExpr.X.(*ast.MethodCallExpr)
	if !ok {
		t.Fatalf("TryExpr.X is %T, want *ast.MethodCallExpr", tryExpr.X)
	}
	if call.Name != "unwrap_or" {
		t.Errorf("call.Name = %q, want %q", call.Name, "unwrap_or")
	}
}
