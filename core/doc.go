// Package core provides the periodic multigraph used by every lvperiodic
// algorithm: a thread-safe, undirected multigraph with self-loops whose edges
// carry integer lattice translations.
//
// Model
//
//   - Node{ID, ISite, Metadata}: one coordination environment; ISite is its
//     stable site index in the non-periodic structure.
//   - Edge{ID, From, To, Start, End, Delta, Data}: traversed from the node
//     with isite Start to the node with isite End, the translation is Delta;
//     traversed the other way it is -Delta (see Graph.Delta).
//   - Parallel edges and loops are always allowed. A loop with a non-zero
//     Delta connects a node to one of its own periodic images.
//   - Adjacency is a nested map adjacency[u][v][edgeID]; loops are stored once.
//   - Edge IDs are atomic and monotonic: "e1", "e2", ...
//
// Determinism
//
//	Nodes() and NodeIDs() follow insertion order; Edges(), Neighbors() and
//	EdgesBetween() follow edge creation order; NeighborIDs() follows node
//	insertion order. Algorithms built on top inherit reproducible output.
//
// Concurrency
//
//	Separate sync.RWMutex locks guard nodes (muNode) and edges+adjacency
//	(muEdgeAdj); they are always taken in that order.
//
// Errors
//
//	ErrEmptyNodeID, ErrNegativeISite, ErrNodeNotFound, ErrDuplicateNode,
//	ErrEdgeNotFound, ErrInconsistentEdge. All are sentinels: match with
//	errors.Is, context is added with %w.
//
// Example
//
//	g := core.NewGraph()
//	_ = g.AddNode("Fe0", 0)
//	_ = g.AddNode("O1", 1)
//	_, _ = g.AddEdge("Fe0", "O1", vec3.Zero)
//	_, _ = g.AddEdge("O1", "Fe0", vec3.New(1, 0, 0))
//	d, _ := g.Delta("Fe0", "O1", g.Edges()[1]) // (-1, 0, 0)
package core
