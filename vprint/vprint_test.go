package vprint

import "testing"

func TestWriteLine(t *testing.T) {
	p := NewPrinter()
	p.Write("hello")
	p.Write(" world")
	p.Newline()
	if got, want := p.Finalize(), "hello world\n"; got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

func TestLineAddsNewline(t *testing.T) {
	p := NewPrinter()
	p.Line("one")
	p.Line("two")
	if got, want := p.Finalize(), "one\ntwo\n"; got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

func TestBeginEndIndents(t *testing.T) {
	p := NewPrinter()
	p.Write("function add")
	p.Newline()
	p.Begin("function")
	p.Line("yield a")
	p.End("function")

	want := "function add\nbegin\n    yield a\nend function\n"
	if got := p.Finalize(); got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

func TestNestedBeginEnd(t *testing.T) {
	p := NewPrinter()
	p.Begin("function")
	p.Line("if x then")
	p.Begin("if")
	p.Line("yield x")
	p.End("if")
	p.End("function")

	want := "begin\n    if x then\n    begin\n        yield x\n    end if\nend function\n"
	if got := p.Finalize(); got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

func TestFinalizeDoesNotConsumeBuffer(t *testing.T) {
	p := NewPrinter()
	p.Line("a")
	first := p.Finalize()
	second := p.Finalize()
	if first != second {
		t.Errorf("two Finalize() calls returned different text: %q vs %q", first, second)
	}
	p.Line("b")
	if got, want := p.Finalize(), "a\nb\n"; got != want {
		t.Errorf("Finalize() after further writes = %q, want %q", got, want)
	}
}

func TestDeterministicOutput(t *testing.T) {
	build := func() string {
		p := NewPrinter()
		p.Write("structure Point with fields")
		p.Newline()
		p.Line("    x of i32")
		p.Line("    y of i32")
		p.Line("end structure")
		return p.Finalize()
	}
	a, b := build(), build()
	if a != b {
		t.Errorf("identical operations produced different output:\n%q\n%q", a, b)
	}
}
