package vparser

import "cruxlang.org/go/catalog"

func unsanitizeIdent(lit string) string { return catalog.Unsanitize(lit) }
