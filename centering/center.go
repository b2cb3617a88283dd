// File: center.go
// Role: elastic centering along a BFS tree, with the in-cell connectivity check.
// Determinism: tree levels and children follow bfs order; parallel edges are
//              examined in creation order.

package centering

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/bfs"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// Center returns a copy of g whose nodes are moved, through their periodic
// images, so that zero-translation edges connect the whole graph.
//
// For every tree edge node→child (levels in order):
//   - more than one zero translation between them: ErrMultipleZeroDeltas;
//   - exactly one: the child is already in the cell;
//   - none: the first non-zero translation c is undone by translating the
//     child by -c, which rewrites every non-loop edge incident to it.
//
// A graph whose zero-translation edges already connect every node is
// returned as an unchanged copy.
//
// Complexity: O(V + E) plus the connectivity check.
func Center(g *core.Graph, opts ...Option) (*core.Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out, err := center(g, o)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	o.metrics.RecordCentering(outcome)

	return out, err
}

func center(g *core.Graph, o options) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}
	root := ids[0]
	if o.root != "" {
		if !g.HasNode(o.root) {
			return nil, fmt.Errorf("%w: %q", ErrRootNotFound, o.root)
		}
		root = o.root
	}

	inside, err := bfs.Connected(g, bfs.WithFilterEdge(inCell))
	if err != nil {
		return nil, fmt.Errorf("centering: connectivity check: %w", err)
	}
	if inside {
		o.logger.Debug("graph already centered", zap.Int("nodes", len(ids)))
		return g.Clone(), nil
	}

	out, err := centerFrom(g, root, o.logger)
	if err == nil || !o.anyRoot || !errors.Is(err, ErrCenteringImpossible) {
		return out, err
	}
	for _, id := range ids {
		if id == root {
			continue
		}
		o.logger.Debug("retrying elastic centering", zap.String("root", id))
		out, err = centerFrom(g, id, o.logger)
		if !errors.Is(err, ErrCenteringImpossible) {
			return out, err
		}
	}

	return nil, err
}

// inCell accepts the edges that stay inside one unit cell.
func inCell(e *core.Edge) bool { return !e.Periodic() }

// centerFrom runs one centering pass rooted at root.
func centerFrom(g *core.Graph, root string, log *zap.Logger) (*core.Graph, error) {
	log.Debug("elastic centering", zap.String("root", root))
	tree, err := bfs.BFS(g, root)
	if err != nil {
		return nil, fmt.Errorf("centering: bfs from %q: %w", root, err)
	}

	work := g.Clone()
	for level, nodes := range tree.Levels {
		log.Debug("tree level", zap.Int("level", level), zap.Int("nodes", len(nodes)))
		for _, node := range nodes {
			for _, child := range tree.Children[node] {
				if err = pullInside(work, node, child, log); err != nil {
					return nil, err
				}
			}
		}
	}

	ok, err := bfs.Connected(core.ZeroDeltaView(work))
	if err != nil {
		return nil, fmt.Errorf("centering: connectivity check: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (root %q)", ErrCenteringImpossible, root)
	}

	return work, nil
}

// pullInside translates child so that one edge to node has zero translation.
func pullInside(work *core.Graph, node, child string, log *zap.Logger) error {
	edges, err := work.EdgesBetween(node, child)
	if err != nil {
		return err
	}

	zeros := 0
	var correction vec3.Vec3
	found := false
	for _, e := range edges {
		d, err := work.Delta(node, child, e)
		if err != nil {
			return err
		}
		switch {
		case d.IsZero():
			zeros++
		case !found:
			correction, found = d, true
		}
	}
	if zeros > 1 {
		return fmt.Errorf("%w: %q–%q (%d edges)", ErrMultipleZeroDeltas, node, child, zeros)
	}
	if zeros == 1 || !found {
		log.Debug("neighbor inside the cell", zap.String("node", node), zap.String("neighbor", child))
		return nil
	}

	log.Debug("pulling neighbor inside the cell",
		zap.String("node", node),
		zap.String("neighbor", child),
		zap.Stringer("delta", correction))

	return work.TranslateNode(child, correction.Neg())
}
