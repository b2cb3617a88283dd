// File: build.go
// Role: single-axis m-fold expansion of a periodic multigraph.
// Determinism: images in order 0..m-1, nodes in insertion order, edges in
//              creation order.

package supergraph

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// oriented is an input edge resolved into its traversal along the axis.
type oriented struct {
	e          *core.Edge
	from, to   int // node indices in g
	delta      vec3.Vec3
	connecting bool
}

// Build expands g into multiplicity[0] consecutive images along vectors[0].
//
// Connecting edges are the edges whose translation equals ±p: they are
// oriented so that traversal yields +p, then link node a of image i to node b
// of image i+1 with a zero translation, the last image linking back to image
// 0 with p. Zero-translation edges are copied into each image.
//
// Errors: ErrGraphNil, ErrNotImplemented (more than one multiplicity),
// ErrBadMultiplicity (none, or below 1),
// ErrNoPeriodicity, ErrOffAxisEdge, core.ErrInconsistentEdge.
//
// Complexity: O(m·(V + E)).
func Build(g *core.Graph, multiplicity []int, vectors []vec3.Vec3, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out, err := build(g, multiplicity, vectors, o)
	if err != nil {
		o.metrics.RecordSupergraph(metrics.OutcomeFailed, 0)
		return nil, err
	}
	o.metrics.RecordSupergraph(metrics.OutcomeOK, out.NodeCount())
	o.logger.Debug("supergraph built",
		zap.Int("multiplicity", multiplicity[0]),
		zap.Stringer("axis", vectors[0]),
		zap.Int("nodes", out.NodeCount()),
		zap.Int("edges", out.EdgeCount()))

	return out, nil
}

func build(g *core.Graph, multiplicity []int, vectors []vec3.Vec3, o options) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(multiplicity) == 0 {
		return nil, fmt.Errorf("%w: none given", ErrBadMultiplicity)
	}
	if len(multiplicity) != 1 {
		return nil, fmt.Errorf("%w: %d multiplicities", ErrNotImplemented, len(multiplicity))
	}
	m := multiplicity[0]
	if m < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMultiplicity, m)
	}
	if len(vectors) == 0 || vectors[0].IsZero() {
		return nil, ErrNoPeriodicity
	}
	p := vectors[0]

	nodes := g.Nodes()
	n := len(nodes)
	edges, err := classify(g, p, o)
	if err != nil {
		return nil, err
	}

	out := core.NewGraph()
	for i := 0; i < m; i++ {
		for k, node := range nodes {
			idx := i*n + k
			md := map[string]interface{}{
				KeySource: node.ID,
				KeyImage:  i,
				KeyISite:  node.ISite,
			}
			if err = out.AddNode(strconv.Itoa(idx), idx, core.WithNodeMetadata(md)); err != nil {
				return nil, fmt.Errorf("supergraph: image %d node %q: %w", i, node.ID, err)
			}
		}
	}

	for i := 0; i < m; i++ {
		for _, oe := range edges {
			from, to, d := i*n+oe.from, i*n+oe.to, oe.delta
			if oe.connecting {
				to = ((i+1)%m)*n + oe.to
				if i < m-1 {
					d = vec3.Zero
				}
			}
			_, err = out.AddEdge(strconv.Itoa(from), strconv.Itoa(to), d,
				core.WithEdgeData(edgeData(oe.e)))
			if err != nil {
				return nil, fmt.Errorf("supergraph: image %d edge %s: %w", i, oe.e.ID, err)
			}
		}
	}

	return out, nil
}

// classify resolves every edge of g against the axis p.
func classify(g *core.Graph, p vec3.Vec3, o options) ([]oriented, error) {
	index := func(id string) int {
		i, _ := g.Index(id)
		return i
	}

	var out []oriented
	for _, e := range g.Edges() {
		start, end, err := g.Roles(e)
		if err != nil {
			return nil, err
		}
		oe := oriented{e: e, from: index(start), to: index(end), delta: e.Delta}
		switch {
		case e.Delta == p:
			oe.connecting = true
		case e.Delta == p.Neg():
			oe.connecting = true
			oe.from, oe.to, oe.delta = oe.to, oe.from, p
		case e.Delta.IsZero():
		default:
			if !o.allowOffAxis {
				return nil, fmt.Errorf("%w: edge %s delta %v, axis %v", ErrOffAxisEdge, e.ID, e.Delta, p)
			}
			o.logger.Warn("off-axis edge replicated inside each image",
				zap.String("edge", e.ID),
				zap.Stringer("delta", e.Delta),
				zap.Stringer("axis", p))
		}
		out = append(out, oe)
	}

	return out, nil
}

// edgeData copies the payload of e and records its ID under KeySource.
func edgeData(e *core.Edge) map[string]interface{} {
	data := make(map[string]interface{}, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[KeySource] = e.ID

	return data
}
