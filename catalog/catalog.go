// Package catalog is the Mapping Catalog (component A): the single
// bidirectional source of truth for V keywords, type constructors,
// operators, and standard-library identifiers, plus the identifier
// sanitization rules shared by the Reducer and the V-Tokenizer.
//
// Every table here is a slice, never a map iterated for output — lookup
// structures (maps) are built once at init and used only for reads, so
// that emission order is never affected by map iteration order (the
// determinism requirement of spec.md §5).
package catalog

import (
	"sort"
	"strings"

	"cruxlang.org/go/ast"
)

// Structural keywords: every word that introduces or closes block
// structure, independent of the operator/type phrase tables below. These
// (plus every word appearing in a Phrase below) make up the full reserved
// word set.
var structuralWords = []string{
	"function", "structure", "enumeration", "begin", "end",
	"if", "then", "otherwise", "for", "each", "in", "repeat", "while",
	"case", "compare", "closure", "macro", "bracket", "paren", "call",
	"method", "associated", "on", "with", "and", "body", "define", "set",
	"as", "equal", "to", "returns", "takes", "mutable", "reference",
	"raw", "pointer", "const", "loop", "forever", "return", "break",
	"continue", "move", "field", "of", "some", "none", "ok", "error",
	"unwrap", "or", "unit", "implementing", "type", "use", "constant",
	"static", "unknown_type", "wildcard", "user", "true", "false",
	"text", "character", "tuple", "array", "range", "from", "through",
	"index", "implementation", "optional", "result", "list", "box",
	"slice", "length", "nothing", "takes", "taking", "returning",
	"parameters", "verbatim", "item", "yield",
}

// Phrase is one entry in a bidirectional, multi-word keyword mapping: a
// sequence of lowercase V words on one side and a canonical S spelling on
// the other.
type Phrase struct {
	Words []string
	SForm string
}

func (p Phrase) v() string { return strings.Join(p.Words, " ") }

// binaryOps pairs every supported binary operator with its V spelling.
// "logical and"/"logical or" are reserved two-word phrases distinct from
// the bare parameter-separator "and", resolving the ambiguity flagged as
// an Open Question in spec.md §9 at the lexical level rather than via
// context-sensitive parsing.
var binaryOps = []struct {
	Op    ast.BinaryOp
	Words []string
	SForm string
}{
	{ast.OpAdd, []string{"plus"}, "+"},
	{ast.OpSub, []string{"minus"}, "-"},
	{ast.OpMul, []string{"times"}, "*"},
	{ast.OpDiv, []string{"divided", "by"}, "/"},
	{ast.OpRem, []string{"modulo"}, "%"},
	{ast.OpGe, []string{"greater", "than", "or", "equal", "to"}, ">="},
	{ast.OpLe, []string{"less", "than", "or", "equal", "to"}, "<="},
	{ast.OpGt, []string{"greater", "than"}, ">"},
	{ast.OpLt, []string{"less", "than"}, "<"},
	{ast.OpNe, []string{"not", "equal", "to"}, "!="},
	{ast.OpEq, []string{"equal", "to"}, "=="},
	{ast.OpAnd, []string{"logical", "and"}, "&&"},
	{ast.OpOr, []string{"logical", "or"}, "||"},
}

// unaryOps pairs every supported unary operator with its V spelling.
var unaryOps = []struct {
	Op    ast.UnaryOp
	Words []string
	SForm string
}{
	{ast.OpNeg, []string{"negative", "of"}, "-"},
	{ast.OpNot, []string{"not"}, "!"},
}

// Standard-variant exemption set: identifiers in this set pass through
// unsanitized in V even though, lowercased, they might otherwise collide
// with a reserved word. Some/None/Ok/Err are required by the data model
// invariant; the rest are a small, deliberately short list of common
// container type names that read naturally unprefixed.
var exemptIdents = map[string]bool{
	"Some": true, "None": true, "Ok": true, "Err": true,
	"Vec": true, "Box": true, "Option": true, "Result": true,
}

var reservedWords map[string]bool

func init() {
	reservedWords = make(map[string]bool)
	for _, w := range structuralWords {
		reservedWords[w] = true
	}
	for _, e := range binaryOps {
		for _, w := range e.Words {
			reservedWords[w] = true
		}
	}
	for _, e := range unaryOps {
		for _, w := range e.Words {
			reservedWords[w] = true
		}
	}
}

// IsReservedWord reports whether w (already lowercase) is a reserved V
// word: a structural keyword or any word appearing in an operator phrase.
func IsReservedWord(w string) bool { return reservedWords[w] }

// Sanitize applies the `user_` prefix rule (data model invariant 4): any
// identifier whose spelling collides with a reserved V word is prefixed,
// unless it is in the exemption set.
func Sanitize(name string) string {
	if exemptIdents[name] {
		return name
	}
	if IsReservedWord(strings.ToLower(name)) {
		return "user_" + name
	}
	return name
}

// Unsanitize reverses Sanitize: a V identifier that begins with the
// literal `user_` prefix has it stripped to recover the original S
// identifier. Exempt idents were never prefixed, so they pass through
// unchanged.
func Unsanitize(name string) string {
	if rest, ok := strings.CutPrefix(name, "user_"); ok {
		return rest
	}
	return name
}

// BinaryOpWords returns the canonical V spelling for op.
func BinaryOpWords(op ast.BinaryOp) []string {
	for _, e := range binaryOps {
		if e.Op == op {
			return e.Words
		}
	}
	return nil
}

// BinaryOpSForm returns the canonical S spelling for op.
func BinaryOpSForm(op ast.BinaryOp) string {
	for _, e := range binaryOps {
		if e.Op == op {
			return e.SForm
		}
	}
	return ""
}

// UnaryOpWords returns the canonical V spelling for op.
func UnaryOpWords(op ast.UnaryOp) []string {
	for _, e := range unaryOps {
		if e.Op == op {
			return e.Words
		}
	}
	return nil
}

// UnaryOpSForm returns the canonical S spelling for op.
func UnaryOpSForm(op ast.UnaryOp) string {
	for _, e := range unaryOps {
		if e.Op == op {
			return e.SForm
		}
	}
	return ""
}

// ctorWords pairs the four built-in constructor names with their reserved
// V spellings; any other constructor name is a user enum variant and is
// sanitized/unsanitized like any other identifier.
var ctorWords = []struct{ S, V string }{
	{"Some", "some"},
	{"None", "none"},
	{"Ok", "ok"},
	{"Err", "error"},
}

// CtorVName maps a constructor's S-side name to its V spelling.
func CtorVName(sName string) string {
	for _, e := range ctorWords {
		if e.S == sName {
			return e.V
		}
	}
	return Sanitize(sName)
}

// CtorSName maps a constructor's V spelling back to its S-side name.
func CtorSName(vWord string) string {
	for _, e := range ctorWords {
		if e.V == vWord {
			return e.S
		}
	}
	return Unsanitize(vWord)
}

// binaryPrecedence gives each binary operator's precedence level, highest
// binding tightest, mirroring the host S-language's own table exactly (so
// that the V-Parser's precedence-climbing reconstructs the same tree the
// Reducer walked, without needing any grouping punctuation in V-text).
var binaryPrecedence = map[ast.BinaryOp]int{
	ast.OpMul: 5, ast.OpDiv: 5, ast.OpRem: 5,
	ast.OpAdd: 4, ast.OpSub: 4,
	ast.OpEq: 3, ast.OpNe: 3, ast.OpLt: 3, ast.OpLe: 3, ast.OpGt: 3, ast.OpGe: 3,
	ast.OpAnd: 2,
	ast.OpOr:  1,
}

// BinaryPrecedence returns op's precedence level for precedence-climbing
// parsers (both crux/sparser and crux/vparser use this table).
func BinaryPrecedence(op ast.BinaryOp) int { return binaryPrecedence[op] }

// phraseEntry is one row of the word-sequence lookup table used by the
// V-Parser to resolve a run of words to a single operator token. It is
// built once, sorted longest-phrase-first, so a scan always commits to
// the longest match (spec.md §4.1/§4.4: "greater than or equal to" before
// "greater than").
type phraseEntry struct {
	Words []string
	Op    interface{} // ast.BinaryOp or ast.UnaryOp
}

var orderedOperatorPhrases []phraseEntry

func init() {
	for _, e := range binaryOps {
		orderedOperatorPhrases = append(orderedOperatorPhrases, phraseEntry{e.Words, e.Op})
	}
	for _, e := range unaryOps {
		orderedOperatorPhrases = append(orderedOperatorPhrases, phraseEntry{e.Words, e.Op})
	}
	sort.SliceStable(orderedOperatorPhrases, func(i, j int) bool {
		return len(orderedOperatorPhrases[i].Words) > len(orderedOperatorPhrases[j].Words)
	})
}

// MatchOperatorPhrase attempts to match the longest operator phrase
// starting at words[0]; it returns the match (a BinaryOp or UnaryOp) and
// how many words it consumed, or ok=false if nothing matches.
func MatchOperatorPhrase(words []string) (op interface{}, n int, ok bool) {
	for _, e := range orderedOperatorPhrases {
		if len(e.Words) > len(words) {
			continue
		}
		if wordsEqual(words[:len(e.Words)], e.Words) {
			return e.Op, len(e.Words), true
		}
	}
	return nil, 0, false
}

func wordsEqual(a, b []string) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
