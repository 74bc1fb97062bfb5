package catalog

import (
	"testing"

	"cruxlang.org/go/ast"
)

func TestIsReservedWord(t *testing.T) {
	reserved := []string{"function", "begin", "end", "and", "with", "returns", "takes"}
	for _, w := range reserved {
		if !IsReservedWord(w) {
			t.Errorf("IsReservedWord(%q) = false, want true", w)
		}
	}
	notReserved := []string{"foo", "bar", "add", "vector"}
	for _, w := range notReserved {
		if IsReservedWord(w) {
			t.Errorf("IsReservedWord(%q) = true, want false", w)
		}
	}
}

func TestSanitizeUnsanitizeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"function", "user_function"},
		{"return", "user_return"},
		{"add", "add"},
		{"Some", "Some"},
		{"Vec", "Vec"},
	}
	for _, tt := range tests {
		got := Sanitize(tt.name)
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.name, got, tt.want)
		}
		if back := Unsanitize(got); back != tt.name {
			t.Errorf("Unsanitize(Sanitize(%q)) = %q, want %q", tt.name, back, tt.name)
		}
	}
}

func TestUnsanitizeOnlyStripsPrefix(t *testing.T) {
	if got := Unsanitize("username"); got != "username" {
		t.Errorf("Unsanitize(%q) = %q, want unchanged (no exact user_ prefix match issue)", "username", got)
	}
	if got := Unsanitize("user_name"); got != "name" {
		t.Errorf("Unsanitize(%q) = %q, want %q", "user_name", got, "name")
	}
}

func TestBinaryOpWordsAndSForm(t *testing.T) {
	tests := []struct {
		op    ast.BinaryOp
		words []string
		sform string
	}{
		{ast.OpAdd, []string{"plus"}, "+"},
		{ast.OpGe, []string{"greater", "than", "or", "equal", "to"}, ">="},
		{ast.OpAnd, []string{"logical", "and"}, "&&"},
	}
	for _, tt := range tests {
		if got := BinaryOpWords(tt.op); !equalStrings(got, tt.words) {
			t.Errorf("BinaryOpWords(%v) = %v, want %v", tt.op, got, tt.words)
		}
		if got := BinaryOpSForm(tt.op); got != tt.sform {
			t.Errorf("BinaryOpSForm(%v) = %q, want %q", tt.op, got, tt.sform)
		}
	}
}

func TestUnaryOpWordsAndSForm(t *testing.T) {
	if got := UnaryOpWords(ast.OpNeg); !equalStrings(got, []string{"negative", "of"}) {
		t.Errorf("UnaryOpWords(OpNeg) = %v", got)
	}
	if got := UnaryOpSForm(ast.OpNot); got != "!" {
		t.Errorf("UnaryOpSForm(OpNot) = %q, want %q", got, "!")
	}
}

func TestCtorNameRoundTrip(t *testing.T) {
	tests := []struct{ s, v string }{
		{"Some", "some"},
		{"None", "none"},
		{"Ok", "ok"},
		{"Err", "error"},
	}
	for _, tt := range tests {
		if got := CtorVName(tt.s); got != tt.v {
			t.Errorf("CtorVName(%q) = %q, want %q", tt.s, got, tt.v)
		}
		if got := CtorSName(tt.v); got != tt.s {
			t.Errorf("CtorSName(%q) = %q, want %q", tt.v, got, tt.s)
		}
	}
}

func TestCtorNameUserVariant(t *testing.T) {
	if got := CtorVName("Color"); got != "Color" {
		t.Errorf("CtorVName(%q) = %q, want unchanged (not a reserved word)", "Color", got)
	}
	if got := CtorVName("function"); got != "user_function" {
		t.Errorf("CtorVName(%q) = %q, want %q", "function", got, "user_function")
	}
}

func TestBinaryPrecedenceOrdering(t *testing.T) {
	if BinaryPrecedence(ast.OpMul) <= BinaryPrecedence(ast.OpAdd) {
		t.Error("multiplication must bind tighter than addition")
	}
	if BinaryPrecedence(ast.OpAdd) <= BinaryPrecedence(ast.OpEq) {
		t.Error("addition must bind tighter than comparison")
	}
	if BinaryPrecedence(ast.OpEq) <= BinaryPrecedence(ast.OpAnd) {
		t.Error("comparison must bind tighter than logical and")
	}
	if BinaryPrecedence(ast.OpAnd) <= BinaryPrecedence(ast.OpOr) {
		t.Error("logical and must bind tighter than logical or")
	}
}

func TestMatchOperatorPhraseLongestFirst(t *testing.T) {
	words := []string{"greater", "than", "or", "equal", "to", "x"}
	op, n, ok := MatchOperatorPhrase(words)
	if !ok {
		t.Fatal("expected a match")
	}
	if n != 5 {
		t.Errorf("MatchOperatorPhrase consumed %d words, want 5 (the full phrase, not the short prefix)", n)
	}
	if bop, isBinary := op.(ast.BinaryOp); !isBinary || bop != ast.OpGe {
		t.Errorf("MatchOperatorPhrase returned %v, want ast.OpGe", op)
	}
}

func TestMatchOperatorPhraseShortPrefix(t *testing.T) {
	words := []string{"greater", "than", "x"}
	op, n, ok := MatchOperatorPhrase(words)
	if !ok {
		t.Fatal("expected a match")
	}
	if n != 2 {
		t.Errorf("consumed %d words, want 2", n)
	}
	if bop, isBinary := op.(ast.BinaryOp); !isBinary || bop != ast.OpGt {
		t.Errorf("MatchOperatorPhrase returned %v, want ast.OpGt", op)
	}
}

func TestMatchOperatorPhraseNoMatch(t *testing.T) {
	if _, _, ok := MatchOperatorPhrase([]string{"foo", "bar"}); ok {
		t.Error("expected no match for unrelated words")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
