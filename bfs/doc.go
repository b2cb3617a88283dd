// Package bfs provides breadth-first search over a core.Graph, returning
// visit order, depths, the BFS tree (parents and children) and its levels.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node
//     over the collapsed simple view of the multigraph: parallel edges count
//     once, loops never enqueue anything.
//   - BFSResult carries Order, Depth, Parent, Children and Levels. Levels[d]
//     holds the nodes first reached at depth d; elastic centering walks the
//     tree level by level through Children.
//   - WithFilterEdge restricts traversal to accepted edges (for instance only
//     zero-translation edges), which is how connectivity of the in-cell
//     subgraph is checked without building it.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (may abort with an error).
//
// Determinism
//
//	core.NeighborIDs returns neighbors in node insertion order and BFS
//	enqueues them in that order, so the tree and its levels are reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E) without an edge filter; each filtered hop additionally
//     scans the parallel edges between the two nodes.
//   - Memory: O(V).
//
// Usage
//
//	res, err := bfs.BFS(g, "Fe0", bfs.WithFilterEdge(func(e *core.Edge) bool {
//		return !e.Periodic()
//	}))
//	ok, err := bfs.Connected(g)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip neighbors for which fn(curr,neighbor)==false.
//   - WithFilterEdge(fn):          follow only edges for which fn(e)==true.
//   - WithOnEnqueue(fn):           hook before a node is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a node.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
