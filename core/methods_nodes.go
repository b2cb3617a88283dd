// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Node/Nodes/NodeIDs/NodeCount/Index.
// Determinism:
//   - Nodes() and NodeIDs() return insertion order.
//   - Index(id) is the insertion position, stable for the graph's lifetime.
// Concurrency:
//   - Mutations under muNode write lock; queries under muNode read lock.

package core

import "fmt"

// AddNode registers a node with the given id and site index.
//
// Re-adding an existing id with the same isite is a no-op (options are
// ignored). Re-adding it with a different isite returns ErrDuplicateNode.
//
// Errors:
//   - ErrEmptyNodeID: id == "".
//   - ErrNegativeISite: isite < 0.
//   - ErrDuplicateNode: id exists with another isite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, isite int, opts ...NodeOption) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if isite < 0 {
		return fmt.Errorf("core: AddNode(%q, %d): %w", id, isite, ErrNegativeISite)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if n, ok := g.nodes[id]; ok {
		if n.ISite != isite {
			return fmt.Errorf("core: AddNode(%q): isite %d != %d: %w", id, isite, n.ISite, ErrDuplicateNode)
		}

		return nil
	}

	n := &Node{ID: id, ISite: isite}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[id] = n
	g.index[id] = len(g.order)
	g.order = append(g.order, id)

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether id is registered.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the node registered under id.
func (g *Graph) Node(id string) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("core: node %q: %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// Nodes returns all nodes in insertion order. Treat them as read-only.
func (g *Graph) Nodes() []*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
func (g *Graph) NodeIDs() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.order)
}

// Index returns the insertion position of id, a dense handle in [0, NodeCount).
func (g *Graph) Index(id string) (int, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	i, ok := g.index[id]

	return i, ok
}
