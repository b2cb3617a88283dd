// Package netfmt reads and writes periodic multigraphs in a small
// line-oriented net notation.
//
//	# iron oxide chain
//	node Fe 0
//	node O  1
//	edge Fe O
//	edge O Fe 1 0 0
//	edge Fe Fe 0 0 1 roles 0 0
//
// A node line declares an environment and its isite. An edge line bonds two
// declared nodes; the optional three integers are the translation (omitted
// means the bond stays in the cell), and the optional roles clause overrides
// the start/end isites that default to the isites of the endpoints. IDs are
// bare words, integers, or double-quoted strings. '#' starts a comment.
//
// Parse builds a *core.Graph in declaration order; Format writes one back in
// node insertion and edge creation order, so Parse(Format(g)) reproduces g
// up to edge data.
package netfmt
