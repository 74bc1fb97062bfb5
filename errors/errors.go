// Package errors defines the shared error model used across crux: a
// position-carrying Error interface, a List accumulator for collecting
// multiple diagnostics from a single pass, and a renderer that the CLI and
// tests share.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"cruxlang.org/go/token"
)

// Kind identifies one of the closed set of error kinds named in the
// specification's error taxonomy. Callers can match a specific kind with
// errors.Is against the matching sentinel below.
type Kind int

const (
	_ Kind = iota
	HostParseFailed
	ProhibitedCharacter
	UnknownWord
	UnexpectedToken
	BlockKindMismatch
	UnexpectedEnd
	UnrepresentableType
)

func (k Kind) String() string {
	switch k {
	case HostParseFailed:
		return "HostParseFailed"
	case ProhibitedCharacter:
		return "ProhibitedCharacter"
	case UnknownWord:
		return "UnknownWord"
	case UnexpectedToken:
		return "UnexpectedToken"
	case BlockKindMismatch:
		return "BlockKindMismatch"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case UnrepresentableType:
		return "UnrepresentableType"
	default:
		return "Unknown"
	}
}

// kindSentinel lets errors.Is match against a Kind without comparing full
// error values: errors.Is(err, errors.ErrProhibitedCharacter) reports
// whether err (or anything it wraps) carries that Kind.
type kindSentinel Kind

func (k kindSentinel) Error() string { return Kind(k).String() }

// Sentinel errors for each taxonomy member, usable with errors.Is.
var (
	ErrHostParseFailed      error = kindSentinel(HostParseFailed)
	ErrProhibitedCharacter  error = kindSentinel(ProhibitedCharacter)
	ErrUnknownWord          error = kindSentinel(UnknownWord)
	ErrUnexpectedToken      error = kindSentinel(UnexpectedToken)
	ErrBlockKindMismatch    error = kindSentinel(BlockKindMismatch)
	ErrUnexpectedEnd        error = kindSentinel(UnexpectedEnd)
	ErrUnrepresentableType  error = kindSentinel(UnrepresentableType)
)

// Error is the common interface implemented by all crux diagnostics.
type Error interface {
	error
	// Position returns the primary source position of the error, or
	// token.NoPos if none applies.
	Position() token.Pos
	// Kind reports which taxonomy member this error belongs to.
	Kind() Kind
	// Msg returns the unformatted message and its arguments, for callers
	// that want to re-render with their own formatting.
	Msg() (format string, args []interface{})
}

// posError is the concrete Error implementation.
type posError struct {
	pos    token.Pos
	kind   Kind
	format string
	args   []interface{}
}

func (e *posError) Position() token.Pos { return e.pos }
func (e *posError) Kind() Kind          { return e.kind }
func (e *posError) Msg() (string, []interface{}) { return e.format, e.args }
func (e *posError) Error() string       { return fmt.Sprintf(e.format, e.args...) }

// Is reports whether target is the Kind sentinel matching e's own kind,
// so that errors.Is(err, errors.ErrUnexpectedToken) works transparently.
func (e *posError) Is(target error) bool {
	if ks, ok := target.(kindSentinel); ok {
		return Kind(ks) == e.kind
	}
	return false
}

// Newf creates a new Error of the given kind at the given position.
func Newf(kind Kind, pos token.Pos, format string, args ...interface{}) Error {
	return &posError{pos: pos, kind: kind, format: format, args: args}
}

// New is a convenience wrapper for the stdlib errors.New; it does not
// produce a crux Error.
func New(msg string) error { return errors.New(msg) }

// Is and As forward to the stdlib implementations, re-exported so callers
// need only import this package.
func Is(err, target error) bool            { return errors.Is(err, target) }
func As(err error, target interface{}) bool { return errors.As(err, target) }

// List accumulates zero or more Errors produced during a single reduce,
// oxidize, or validate pass. The zero value is an empty, ready-to-use list.
type List []Error

// Add appends err to the list.
func (l *List) Add(err Error) { *l = append(*l, err) }

// AddNewf is a convenience wrapper combining Newf and Add.
func (l *List) AddNewf(kind Kind, pos token.Pos, format string, args ...interface{}) {
	l.Add(Newf(kind, pos, format, args...))
}

// Err returns l as an error: nil if empty, the sole element's error if
// there is exactly one, or l itself (which implements error) otherwise.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		return l
	}
}

// Error implements the error interface by rendering every contained error,
// one per line, sorted by position.
func (l List) Error() string {
	sorted := append(List(nil), l...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position().Compare(sorted[j].Position()) < 0
	})
	s := ""
	for i, e := range sorted {
		if i > 0 {
			s += "\n"
		}
		s += formatOne(e)
	}
	return s
}

func formatOne(e Error) string {
	if pos := e.Position(); pos.IsValid() {
		return pos.String() + ": " + e.Error()
	}
	return e.Error()
}

// Config controls how Print renders errors.
type Config struct {
	// Cwd, if set, is stripped as a prefix from file names in positions.
	Cwd string
}

// Print writes a human-readable rendering of err to w. If err is a List,
// every element is printed; otherwise err is printed as a single line.
// A nil err prints nothing.
func Print(w io.Writer, err error, cfg *Config) {
	if err == nil {
		return
	}
	var list List
	if As(err, &list) {
		for _, e := range list {
			fmt.Fprintln(w, formatOne(e))
		}
		return
	}
	var e Error
	if As(err, &e) {
		fmt.Fprintln(w, formatOne(e))
		return
	}
	fmt.Fprintln(w, err.Error())
}
