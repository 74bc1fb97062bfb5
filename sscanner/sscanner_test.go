package sscanner

import (
	"testing"

	"cruxlang.org/go/token"
)

func scan(src string) []Token {
	f := token.NewFile("t.rs", len(src))
	return ScanAll(f, src)
}

func TestScanKeywordsAndIdents(t *testing.T) {
	toks := scan("fn add mut foo")
	wantKinds := []Kind{FN, IDENT, MUT, IDENT, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestScanPunctuation(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"->", ARROW},
		{"=>", FATARROW},
		{"::", COLONCOLON},
		{"..", DOTDOT},
		{"..=", DOTDOTEQ},
		{"&&", AMPAMP},
		{"||", PIPEPIPE},
		{"==", EQ},
		{"!=", NE},
		{"<=", LE},
		{">=", GE},
		{"&", AMP},
		{"|", PIPE},
		{"<", LT},
		{">", GT},
	}
	for _, tt := range tests {
		toks := scan(tt.src)
		if toks[0].Kind != tt.kind {
			t.Errorf("scan(%q)[0].Kind = %v, want %v", tt.src, toks[0].Kind, tt.kind)
		}
	}
}

func TestScanNumbers(t *testing.T) {
	toks := scan("42 3.14 42i32")
	if toks[0].Kind != INT || toks[0].Lit != "42" {
		t.Errorf("toks[0] = %+v, want INT 42", toks[0])
	}
	if toks[1].Kind != FLOAT || toks[1].Lit != "3.14" {
		t.Errorf("toks[1] = %+v, want FLOAT 3.14", toks[1])
	}
	if toks[2].Kind != INT || toks[2].Lit != "42i32" {
		t.Errorf("toks[2] = %+v, want INT 42i32 (suffix retained)", toks[2])
	}
}

func TestScanStringAndChar(t *testing.T) {
	toks := scan(`"hello\nworld" 'a'`)
	if toks[0].Kind != STRING || toks[0].Lit != "hello\nworld" {
		t.Errorf("toks[0] = %+v, want STRING hello\\nworld unescaped", toks[0])
	}
	if toks[1].Kind != CHAR || toks[1].Lit != "a" {
		t.Errorf("toks[1] = %+v, want CHAR a", toks[1])
	}
}

func TestScanLineComment(t *testing.T) {
	toks := scan("a // a comment\nb")
	if len(toks) != 3 { // a, b, EOF
		t.Fatalf("got %d tokens, want 3: %v", len(toks), toks)
	}
	if toks[0].Lit != "a" || toks[1].Lit != "b" {
		t.Errorf("comment not skipped correctly: %v", toks)
	}
}

func TestScanEOFIsSticky(t *testing.T) {
	f := token.NewFile("t.rs", 1)
	var sc Scanner
	sc.Init(f, "a")
	first := sc.Scan()
	second := sc.Scan()
	third := sc.Scan()
	if first.Kind != IDENT {
		t.Fatalf("first token = %v, want IDENT", first.Kind)
	}
	if second.Kind != EOF || third.Kind != EOF {
		t.Errorf("repeated Scan() at end of input = %v, %v, want EOF, EOF", second.Kind, third.Kind)
	}
}
