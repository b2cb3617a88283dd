// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves node order, edge IDs and creation order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// EdgeSubgraph returns a new Graph with every node of g and only the edges
// accepted by keep. The input graph is not mutated.
//
// Complexity: O(V + E).
func EdgeSubgraph(g *Graph, keep func(*Edge) bool) *Graph {
	return g.filtered(keep)
}

// ZeroDeltaView keeps only the edges that stay inside one unit cell.
func ZeroDeltaView(g *Graph) *Graph {
	return EdgeSubgraph(g, func(e *Edge) bool { return !e.Periodic() })
}

// InducedSubgraph returns the nodes of g accepted by keep, in insertion
// order, with every edge whose endpoints are both kept.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep func(*Node) bool) *Graph {
	out := NewGraph()
	atomic.StoreUint64(&out.edgeSeq, atomic.LoadUint64(&g.edgeSeq))

	g.muNode.RLock()
	for _, id := range g.order {
		n := g.nodes[id]
		if !keep(n) {
			continue
		}
		out.nodes[id] = &Node{ID: n.ID, ISite: n.ISite, Metadata: n.Metadata}
		out.index[id] = len(out.order)
		out.order = append(out.order, id)
		out.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		if _, ok := out.nodes[e.From]; !ok {
			continue
		}
		if _, ok := out.nodes[e.To]; !ok {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.link(&ne)
	}

	return out
}
