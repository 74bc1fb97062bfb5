package reduce

import (
	"strings"
	"testing"

	"cruxlang.org/go/sparser"
	"cruxlang.org/go/token"
)

func reduceSrc(t *testing.T, src string) string {
	t.Helper()
	f := token.NewFile("t.rs", len(src))
	file, err := sparser.ParseFile(f, src)
	if err != nil {
		t.Fatalf("ParseFile(%q) error = %v", src, err)
	}
	return Reduce(file)
}

func TestReduceSimpleFunction(t *testing.T) {
	got := reduceSrc(t, `fn add(a: i32, b: i32) -> i32 { a + b }`)
	want := "function add\n" +
		"    takes a of i32 and b of i32\n" +
		"    returns i32\n" +
		"begin\n" +
		"    yield a plus b\n" +
		"end function\n"
	if got != want {
		t.Errorf("Reduce() =\n%q\nwant\n%q", got, want)
	}
}

func TestReduceFunctionNoParamsNoReturn(t *testing.T) {
	got := reduceSrc(t, `fn noop() { }`)
	want := "function noop\nbegin\nend function\n"
	if got != want {
		t.Errorf("Reduce() = %q, want %q", got, want)
	}
}

func TestReduceStruct(t *testing.T) {
	got := reduceSrc(t, `struct Point { x: i32, y: i32 }`)
	want := "structure Point with fields\n" +
		"    x of i32\n" +
		"    y of i32\n" +
		"end structure\n"
	if got != want {
		t.Errorf("Reduce() =\n%q\nwant\n%q", got, want)
	}
}

func TestReduceEnum(t *testing.T) {
	got := reduceSrc(t, `enum Shape { Circle(f64), Point }`)
	want := "enumeration Shape with variants\n" +
		"    Circle of f64\n" +
		"    Point\n" +
		"end enumeration\n"
	if got != want {
		t.Errorf("Reduce() =\n%q\nwant\n%q", got, want)
	}
}

func TestReduceTypeAlias(t *testing.T) {
	got := reduceSrc(t, `type Pair = (i32, i32);`)
	want := "type Pair as tuple of i32, i32\n"
	if got != want {
		t.Errorf("Reduce() = %q, want %q", got, want)
	}
}

func TestReduceIdentifierSanitization(t *testing.T) {
	got := reduceSrc(t, `fn function(end: i32) -> i32 { end }`)
	want := "function user_function\n" +
		"    takes user_end of i32\n" +
		"    returns i32\n" +
		"begin\n" +
		"    yield user_end\n" +
		"end function\n"
	if got != want {
		t.Errorf("Reduce() =\n%q\nwant\n%q", got, want)
	}
}

func TestReduceMethodCallAndTry(t *testing.T) {
	got := reduceSrc(t, `fn run(x: Result<i32, i32>) -> i32 { x.unwrap_or(0)? }`)
	if !strings.Contains(got, "call method unwrap_or on x with 0 unwrap or return error") {
		t.Errorf("Reduce() = %q, want it to contain the method-call-then-try phrase", got)
	}
}

func TestReduceConstructorAndOption(t *testing.T) {
	got := reduceSrc(t, `fn f() -> Option<i32> { Some(1) }`)
	if !strings.Contains(got, "returns optional i32") {
		t.Errorf("Reduce() = %q, want it to mention 'returns optional i32'", got)
	}
	if !strings.Contains(got, "yield some of 1") {
		t.Errorf("Reduce() = %q, want it to mention 'yield some of 1'", got)
	}
}

func TestReduceVerbatimPassthrough(t *testing.T) {
	got := reduceSrc(t, `trait Shape { fn area(&self) -> f64; }`)
	if !strings.HasPrefix(got, `verbatim item "trait Shape`) {
		t.Errorf("Reduce() = %q, want a verbatim item line for the unsupported trait decl", got)
	}
}

func TestReduceClosureExpr(t *testing.T) {
	got := reduceSrc(t, `fn f() -> i32 { (move |x, y| x + y)(1, 2) }`)
	if !strings.Contains(got, "move closure with parameters x and y and body x plus y") {
		t.Errorf("Reduce() = %q, want the move-closure phrase", got)
	}
}

func TestReduceMacroExpr(t *testing.T) {
	got := reduceSrc(t, `fn f() -> i32 { vec![1, 2, 3]; 0 }`)
	if !strings.Contains(got, "macro vec with 1, 2, 3 bracket") {
		t.Errorf("Reduce() = %q, want a bracket-form macro phrase", got)
	}
}

func TestReduceIfExpr(t *testing.T) {
	got := reduceSrc(t, `fn f(x: i32) -> i32 { if x > 0 { 1 } else { 0 } }`)
	if !strings.Contains(got, "if x greater than 0 then 1 otherwise 0") {
		t.Errorf("Reduce() = %q, want the if-then-otherwise phrase", got)
	}
}
