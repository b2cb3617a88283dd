// Package dfs provides depth-first enumerations over the collapsed simple
// view of a core.Graph: all simple paths between two nodes and a
// fundamental cycle basis.
//
// Simple view
//
//	Parallel edges between the same pair of nodes count as one adjacency and
//	a node with one or more loops is adjacent to itself. Callers that need the
//	individual edges (and their translations) expand each hop afterwards with
//	core.Graph.EdgesBetween.
//
// What
//
//   - WalkSimplePaths / AllSimplePaths: every simple path source→target with
//     at most Cutoff edges. With source == target this yields closed paths,
//     which is how periodicity is probed from a node.
//   - CycleBasis: Paton's spanning-tree cycle basis; loops yield [z].
//
// Determinism
//
//	Both enumerations follow core.NeighborIDs order (node insertion order),
//	and CycleBasis picks tree roots in node insertion order.
//
// Errors
//
//   - ErrGraphNil, ErrNodeNotFound, ErrOptionViolation.
//   - ctx.Err() when the context passed with WithContext is done.
//   - SkipAll is a visitor signal, never a result.
package dfs
