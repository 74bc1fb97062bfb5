package crux

import (
	"strings"
	"testing"
)

func TestReduceThenOxidizeRoundTripsSimpleFunction(t *testing.T) {
	src := []byte(`fn add(a: i32, b: i32) -> i32 { a + b }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	v2, err := Reduce("t.rs", s)
	if err != nil {
		t.Fatalf("second Reduce() error = %v", err)
	}
	if string(v) != string(v2) {
		t.Errorf("Reduce is not idempotent across an oxidize round trip:\nfirst  = %q\nsecond = %q", v, v2)
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	src := []byte(`fn f(x: i32) -> i32 { if x > 0 { 1 } else { 0 } }`)
	a, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	b, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("Reduce() is not deterministic:\n%q\nvs\n%q", a, b)
	}
}

func TestOxidizeIsDeterministic(t *testing.T) {
	src := []byte("function f\n    takes x of i32\n    returns i32\nbegin\n    yield x\nend function\n")
	a, err := Oxidize("t.v", src)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	b, err := Oxidize("t.v", src)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("Oxidize() is not deterministic:\n%q\nvs\n%q", a, b)
	}
}

func TestVIsIdempotentUnderReduceOxidize(t *testing.T) {
	// Reducing the S-text that Oxidize produced and oxidizing it again must
	// give the same S-text as the first round trip, confirming that
	// repeated round trips settle rather than drifting.
	src := []byte(`fn f() -> i32 { 1 }`)
	v1, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	s1, err := Oxidize("t.v", v1)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	v2, err := Reduce("t.rs", s1)
	if err != nil {
		t.Fatalf("second Reduce() error = %v", err)
	}
	s2, err := Oxidize("t.v", v2)
	if err != nil {
		t.Fatalf("second Oxidize() error = %v", err)
	}
	if string(s1) != string(s2) {
		t.Errorf("S-text did not stabilize after a second round trip:\n%q\nvs\n%q", s1, s2)
	}
}

func TestVerbatimPassthroughSurvivesRoundTrip(t *testing.T) {
	src := []byte(`trait Shape { fn area(&self) -> f64; }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if !strings.Contains(string(v), `verbatim item "trait Shape { fn area(&self) -> f64; }"`) {
		t.Fatalf("Reduce() = %q, want a verbatim item", v)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if strings.TrimRight(string(s), "\n") != string(src) {
		t.Errorf("Oxidize() = %q, want the verbatim source restored byte for byte", s)
	}
}

func TestIdentifierSanitizationReversesCleanly(t *testing.T) {
	src := []byte(`fn function(end: i32) -> i32 { end }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if !strings.Contains(string(v), "user_function") || !strings.Contains(string(v), "user_end") {
		t.Fatalf("Reduce() = %q, want sanitized user_function/user_end", v)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if strings.Contains(string(s), "user_function") || strings.Contains(string(s), "user_end") {
		t.Errorf("Oxidize() = %q, want sanitization prefix stripped back out", s)
	}
	if !strings.Contains(string(s), "fn function(") || !strings.Contains(string(s), "end") {
		t.Errorf("Oxidize() = %q, want the original names restored", s)
	}
}

func TestTailExpressionPreservedAcrossRoundTrip(t *testing.T) {
	// A trailing expression with no semicolon (the function's tail value)
	// must round-trip as "yield ..." in V and back as a semicolon-free
	// expression in S, never picking up a stray trailing semicolon.
	src := []byte(`fn f(x: i32) -> i32 { x }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if !strings.Contains(string(v), "yield x") {
		t.Fatalf("Reduce() = %q, want a yield marker on the tail expression", v)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if strings.Contains(string(s), "x;\n}") {
		t.Errorf("Oxidize() = %q, the tail expression must not gain a trailing semicolon", s)
	}
}

func TestTryOperatorRoundTrips(t *testing.T) {
	src := []byte(`fn run(x: Result<i32, i32>) -> i32 { x.unwrap_or(0)? }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	if !strings.Contains(string(v), "unwrap or return error") {
		t.Fatalf("Reduce() = %q, want the try-operator phrase", v)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if !strings.Contains(string(s), ".unwrap_or(0)?") {
		t.Errorf("Oxidize() = %q, want the try operator restored", s)
	}
}

func TestEmptyErrorResultRoundTrips(t *testing.T) {
	src := []byte(`fn f() -> Result<i32, ()> { Ok(1) }`)
	v, err := Reduce("t.rs", src)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	s, err := Oxidize("t.v", v)
	if err != nil {
		t.Fatalf("Oxidize() error = %v", err)
	}
	if !strings.Contains(string(s), "Result<i32, ()>") {
		t.Errorf("Oxidize() = %q, want the empty-tuple error type preserved", s)
	}
}

func TestValidateAcceptsWellFormedV(t *testing.T) {
	src := []byte("function f\nbegin\nend function\n")
	if err := Validate("t.v", src); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidateRejectsProhibitedCharacter(t *testing.T) {
	src := []byte("function f\nbegin\n    yield 1 @ 2\nend function\n")
	if err := Validate("t.v", src); err == nil {
		t.Error("Validate() = nil, want an error for the prohibited '@' character")
	}
}

func TestValidateRejectsBlockKindMismatch(t *testing.T) {
	src := []byte("function f\nbegin\nend structure\n")
	if err := Validate("t.v", src); err == nil {
		t.Error("Validate() = nil, want a block-kind-mismatch error")
	}
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	src := []byte("function f\nbegin\nend function\n")
	original := string(src)
	if err := Validate("t.v", src); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if string(src) != original {
		t.Errorf("Validate() mutated its input slice")
	}
}

func TestReduceRecoversUnparsableConstructAsVerbatim(t *testing.T) {
	// The S-parser never fails outright: an item it cannot place falls
	// back to a verbatim span and parsing resumes at the next item
	// boundary, so even badly malformed input still reduces to something.
	v, err := Reduce("t.rs", []byte(`fn f( { `))
	if err != nil {
		t.Fatalf("Reduce() error = %v, want the S-parser to recover via a verbatim fallback", err)
	}
	if !strings.Contains(string(v), "verbatim item") {
		t.Errorf("Reduce() = %q, want a verbatim item for the unparsable construct", v)
	}
}

func TestOxidizeRejectsUnparsableSource(t *testing.T) {
	if _, err := Oxidize("t.v", []byte("function f\nbegin\n")); err == nil {
		t.Error("Oxidize() = nil error, want a parse error for a function missing its end marker")
	}
}
