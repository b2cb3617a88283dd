package core

import (
	"testing"

	"github.com/katalvlaran/lvperiodic/vec3"
	"github.com/stretchr/testify/require"
)

// MustAddNode registers a node or fails the test.
func MustAddNode(t *testing.T, g *Graph, id string, isite int) {
	t.Helper()
	require.NoError(t, g.AddNode(id, isite))
}

// MustAddEdge adds an edge and returns its ID or fails the test.
func MustAddEdge(t *testing.T, g *Graph, from, to string, d vec3.Vec3, opts ...EdgeOption) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, d, opts...)
	require.NoError(t, err)
	return eid
}

// MustEdge fetches an edge by ID or fails the test.
func MustEdge(t *testing.T, g *Graph, eid string) *Edge {
	t.Helper()
	e, err := g.Edge(eid)
	require.NoError(t, err)
	return e
}

// pairGraph builds A(0)–B(1) joined by a zero edge and a +x edge B→A.
func pairGraph(t *testing.T) (*Graph, string, string) {
	t.Helper()
	g := NewGraph()
	MustAddNode(t, g, "A", 0)
	MustAddNode(t, g, "B", 1)
	e1 := MustAddEdge(t, g, "A", "B", vec3.Zero)
	e2 := MustAddEdge(t, g, "B", "A", vec3.New(1, 0, 0))
	return g, e1, e2
}

// edgeIDs projects edges to their IDs.
func edgeIDs(es []*Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}
