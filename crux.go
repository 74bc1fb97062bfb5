// Package crux is the library entry point tying together the two
// translation directions and the validation pass: Reduce turns S-source
// into its canonical V-source rendering, Oxidize turns V-source back into
// S-source, and Validate checks that a V-source file is well-formed
// without producing output. Each wraps a scan/parse/print pipeline built
// from the crux/sscanner, crux/sparser, crux/reduce, crux/vscanner,
// crux/vparser, and crux/oxidize packages.
package crux

import (
	"cruxlang.org/go/oxidize"
	"cruxlang.org/go/reduce"
	"cruxlang.org/go/sparser"
	"cruxlang.org/go/token"
	"cruxlang.org/go/vparser"
	"cruxlang.org/go/vscanner"
)

// Reduce translates S-source to its canonical V-source rendering.
func Reduce(name string, src []byte) ([]byte, error) {
	file := token.NewFile(name, len(src))
	astFile, err := sparser.ParseFile(file, string(src))
	if err != nil {
		return nil, err
	}
	return []byte(reduce.Reduce(astFile)), nil
}

// Oxidize translates V-source back to S-source.
func Oxidize(name string, src []byte) ([]byte, error) {
	file := token.NewFile(name, len(src))
	vastFile, err := vparser.Parse(file, string(src))
	if err != nil {
		return nil, err
	}
	out, err := oxidize.Oxidize(vastFile)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// Validate reports whether src is well-formed V-source: free of prohibited
// sigils and parseable into a complete vast.File. It performs no
// translation and returns nil on success.
func Validate(name string, src []byte) error {
	file := token.NewFile(name, len(src))
	if _, err := vscanner.ScanAll(file, string(src)); err != nil {
		return err
	}
	_, err := vparser.Parse(file, string(src))
	return err
}
