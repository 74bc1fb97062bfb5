package vast

// File is the root V-AST node: a sequence of top-level items, in source
// order. Iteration over Items is always in this slice order — never a map
// — which is what the determinism requirement (spec.md §5) demands of any
// mapping-like child during emission.
type File struct {
	Items []Item
}
