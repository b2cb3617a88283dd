// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) over the multigraph and its
//       collapsed simple view.
// Determinism:
//   - Neighbors() returns incident edges in creation order; loops appear once.
//   - NeighborIDs() returns unique adjacent IDs in node insertion order; a node
//     with a loop lists itself.
// Concurrency:
//   - Read operations hold muNode then muEdgeAdj read locks.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns every edge incident to id, in creation order.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("core: Neighbors(%q): %w", id, ErrNodeNotFound)
	}

	var out []*Edge
	for _, set := range g.adjacency[id] {
		for eid := range set {
			out = append(out, g.edges[eid])
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the neighbors of id in the collapsed simple view of the
// graph: parallel edges count once, and a loop makes id its own neighbor.
//
// Order follows node insertion, which is what path and cycle enumeration
// rely on for reproducible output.
//
// Errors: ErrEmptyNodeID, ErrNodeNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("core: NeighborIDs(%q): %w", id, ErrNodeNotFound)
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, set := range g.adjacency[id] {
		if len(set) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })

	return out, nil
}

// Degree returns the number of incident edges of id; a loop counts once.
func (g *Graph) Degree(id string) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	d := 0
	for _, set := range g.adjacency[id] {
		d += len(set)
	}

	return d
}
