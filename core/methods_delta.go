// File: methods_delta.go
// Role: Orientation of edge translations: Delta, Roles, SetDelta, TranslateNode.
// Determinism: pure functions of edge roles and node isites.
// Concurrency:
//   - Delta/Roles take read locks; SetDelta/TranslateNode take the muEdgeAdj write lock.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/vec3"
)

// Delta returns the translation of e when traversed from n1 to n2.
//
// Role resolution:
//   - n1.ISite == e.Start && n2.ISite == e.End → +e.Delta
//   - n2.ISite == e.Start && n1.ISite == e.End → -e.Delta
//   - otherwise ErrInconsistentEdge.
//
// For a loop both checks see the same node, so the stored Delta is returned.
func (g *Graph) Delta(n1, n2 string, e *Edge) (vec3.Vec3, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	sign, err := g.orientation(n1, n2, e)
	if err != nil {
		return vec3.Zero, err
	}

	return e.Delta.Scale(sign), nil
}

// orientation resolves the sign of e traversed n1→n2. Caller holds muNode.
func (g *Graph) orientation(n1, n2 string, e *Edge) (int, error) {
	a, ok := g.nodes[n1]
	if !ok {
		return 0, fmt.Errorf("core: delta %s: %q: %w", e.ID, n1, ErrNodeNotFound)
	}
	b, ok := g.nodes[n2]
	if !ok {
		return 0, fmt.Errorf("core: delta %s: %q: %w", e.ID, n2, ErrNodeNotFound)
	}
	switch {
	case a.ISite == e.Start && b.ISite == e.End:
		return 1, nil
	case b.ISite == e.Start && a.ISite == e.End:
		return -1, nil
	default:
		return 0, fmt.Errorf("core: edge %s (start=%d end=%d) between %q(isite %d) and %q(isite %d): %w",
			e.ID, e.Start, e.End, n1, a.ISite, n2, b.ISite, ErrInconsistentEdge)
	}
}

// Roles returns the IDs of the nodes playing the Start and End roles of e.
func (g *Graph) Roles(e *Edge) (start, end string, err error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	sign, err := g.orientation(e.From, e.To, e)
	if err != nil {
		return "", "", err
	}
	if sign > 0 {
		return e.From, e.To, nil
	}

	return e.To, e.From, nil
}

// SetDelta stores d as the translation of edge eid traversed from n1 to its
// other endpoint, flipping the sign when n1 plays the End role.
func (g *Graph) SetDelta(eid, n1 string, d vec3.Vec3) error {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return fmt.Errorf("core: SetDelta(%q): %w", eid, ErrEdgeNotFound)
	}
	sign, err := g.orientation(n1, e.Other(n1), e)
	if err != nil {
		return err
	}
	e.Delta = d.Scale(sign)

	return nil
}

// TranslateNode moves node id by t in lattice coordinates: every non-loop
// edge incident to id is updated so that its translation traversed from id
// becomes d - t. Loops are unchanged since both ends move together.
//
// Errors: ErrNodeNotFound, ErrInconsistentEdge (no edge is modified then).
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) TranslateNode(id string, t vec3.Vec3) error {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("core: TranslateNode(%q): %w", id, ErrNodeNotFound)
	}

	type update struct {
		e     *Edge
		delta vec3.Vec3
	}
	var pending []update
	for nbr, set := range g.adjacency[id] {
		if nbr == id {
			continue
		}
		for eid := range set {
			e := g.edges[eid]
			sign, err := g.orientation(id, nbr, e)
			if err != nil {
				return err
			}
			d := e.Delta.Scale(sign).Sub(t)
			pending = append(pending, update{e: e, delta: d.Scale(sign)})
		}
	}
	for _, u := range pending {
		u.e.Delta = u.delta
	}

	return nil
}
