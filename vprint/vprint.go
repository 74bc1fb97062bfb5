// Package vprint implements the V-Emitter (component B): a linear,
// indentation-aware text buffer used by the Reducer to assemble V-text.
// It is modeled on cue/format's printer, trimmed of that printer's
// whitespace-reconciliation machinery: this emitter only ever writes
// freshly generated text, so there is no original-source whitespace to
// preserve between tokens.
package vprint

import "strings"

// indentUnit is the number of spaces per indentation level, fixed by
// spec.md §2/§6.
const indentUnit = "    "

// Printer is a linear text buffer with a current indent depth. Operations
// append to an internal strings.Builder; Finalize returns the accumulated
// text without consuming the buffer, so a caller may snapshot output more
// than once (e.g. once for a test assertion, once to actually return it).
type Printer struct {
	buf          strings.Builder
	depth        int
	atLineStart  bool
}

// NewPrinter returns a Printer ready to receive output at indent depth 0.
func NewPrinter() *Printer {
	return &Printer{atLineStart: true}
}

// Write appends text to the current line, indenting first if this is the
// first write since a newline.
func (p *Printer) Write(text string) {
	p.indentIfNeeded()
	p.buf.WriteString(text)
}

// Line writes text followed by a newline; the next Write begins indented.
func (p *Printer) Line(text string) {
	p.Write(text)
	p.buf.WriteByte('\n')
	p.atLineStart = true
}

// Newline writes a bare newline, useful between statements that have
// already written their own trailing content.
func (p *Printer) Newline() {
	p.buf.WriteByte('\n')
	p.atLineStart = true
}

// Begin writes the literal "begin" on its own line and increments the
// indent depth for everything written until the matching End. kind is
// not written here — "begin" carries no kind suffix per spec.md §4.2 —
// but is accepted for symmetry with End and to let callers track nesting
// without a separate stack.
func (p *Printer) Begin(kind string) {
	p.Line("begin")
	p.depth++
}

// End decrements the indent depth and writes "end <kind>" on its own line.
func (p *Printer) End(kind string) {
	p.depth--
	p.Line("end " + kind)
}

// Finalize returns the text accumulated so far. The buffer is left
// intact, so Finalize may be called more than once.
func (p *Printer) Finalize() string {
	return p.buf.String()
}

func (p *Printer) indentIfNeeded() {
	if !p.atLineStart {
		return
	}
	p.atLineStart = false
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(indentUnit)
	}
}
