// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone/CloneEmpty preserve node insertion order, edge IDs and creation order,
//     and carry the edge sequence so future AddEdge calls never collide.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same nodes (same order, shared
// metadata) and no edges. The edge sequence counter is carried over.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.edgeSeq, atomic.LoadUint64(&g.edgeSeq))
	for _, id := range g.order {
		n := g.nodes[id]
		clone.nodes[id] = &Node{ID: n.ID, ISite: n.ISite, Metadata: n.Metadata}
		clone.index[id] = len(clone.order)
		clone.order = append(clone.order, id)
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a copy of the Graph whose edges may be modified (SetDelta,
// TranslateNode) without affecting g. Edge Data and node Metadata maps are
// shared.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.filtered(func(*Edge) bool { return true })
}

// filtered copies g keeping only edges accepted by keep.
func (g *Graph) filtered(keep func(*Edge) bool) *Graph {
	out := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		if !keep(e) {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.link(&ne)
	}

	return out
}
