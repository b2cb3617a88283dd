// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/EdgesBetween/SelfLoops.
// Determinism:
//   - Edges(), EdgesBetween() and SelfLoops() return creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock (after muNode read lock for validation).
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/lvperiodic/vec3"
)

// edgeIDPrefix keeps edge identifiers human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge connects from and to with a new keyed edge carrying delta and
// returns the edge ID. Parallel edges and self-loops are always accepted.
//
// Start/End default to the isites of from and to; WithRoles overrides them.
//
// Errors:
//   - ErrEmptyNodeID: from or to is empty.
//   - ErrNodeNotFound: an endpoint is not registered (the graph is never
//     extended implicitly).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, delta vec3.Vec3, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	nf, ok := g.nodes[from]
	if !ok {
		return "", fmt.Errorf("core: AddEdge(%q→%q): endpoint %q: %w", from, to, from, ErrNodeNotFound)
	}
	nt, ok := g.nodes[to]
	if !ok {
		return "", fmt.Errorf("core: AddEdge(%q→%q): endpoint %q: %w", from, to, to, ErrNodeNotFound)
	}

	e := &Edge{From: from, To: to, Start: nf.ISite, End: nt.ISite, Delta: delta}
	for _, opt := range opts {
		opt(e)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e.seq = g.nextEdgeID()
	e.ID = formatEdgeID(e.seq)
	g.edges[e.ID] = e
	g.link(e)

	return e.ID, nil
}

// link records e in the adjacency index. Caller holds muEdgeAdj write lock.
func (g *Graph) link(e *Edge) {
	ensureAdjacency(g, e.From, e.To)
	g.adjacency[e.From][e.To][e.ID] = struct{}{}
	if e.From != e.To {
		ensureAdjacency(g, e.To, e.From)
		g.adjacency[e.To][e.From][e.ID] = struct{}{}
	}
}

// ensureAdjacency allocates the nested bucket adjacency[u][v] on demand.
func ensureAdjacency(g *Graph, u, v string) {
	if g.adjacency[u] == nil {
		g.adjacency[u] = make(map[string]map[string]struct{})
	}
	if g.adjacency[u][v] == nil {
		g.adjacency[u][v] = make(map[string]struct{})
	}
}

// Edge returns the edge with the given key.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, fmt.Errorf("core: edge %q: %w", eid, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns every edge in creation order. Treat them as read-only.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges, parallel edges and loops included.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns all edges joining u and v (in either orientation),
// in creation order. For u == v it returns the loops at u.
//
// Errors: ErrNodeNotFound if u or v is unknown.
func (g *Graph) EdgesBetween(u, v string) ([]*Edge, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if _, ok := g.nodes[u]; !ok {
		return nil, fmt.Errorf("core: EdgesBetween: %q: %w", u, ErrNodeNotFound)
	}
	if _, ok := g.nodes[v]; !ok {
		return nil, fmt.Errorf("core: EdgesBetween: %q: %w", v, ErrNodeNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.bucket(u, v), nil
}

// bucket resolves adjacency[u][v] to sorted edges. Caller holds muEdgeAdj.
func (g *Graph) bucket(u, v string) []*Edge {
	set := g.adjacency[u][v]
	out := make([]*Edge, 0, len(set))
	for eid := range set {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out
}

// SelfLoops returns the loops at id in creation order; nil for unknown ids.
func (g *Graph) SelfLoops(id string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if len(g.adjacency[id][id]) == 0 {
		return nil
	}

	return g.bucket(id, id)
}

// Multiplicity returns the number of edges joining u and v.
func (g *Graph) Multiplicity(u, v string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v])
}

// nextEdgeID atomically increments and returns the edge sequence number.
func (g *Graph) nextEdgeID() uint64 {
	return atomic.AddUint64(&g.edgeSeq, 1)
}

// formatEdgeID renders a sequence number as "e<seq>".
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// sortEdges orders edges by creation sequence.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
