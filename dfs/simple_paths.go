// File: simple_paths.go
// Role: enumeration of simple paths between two nodes of the collapsed simple view.
// Determinism: children are expanded in core.NeighborIDs order.

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
)

// PathFunc receives each enumerated path. The slice is reused between calls;
// copy it to retain it. Returning SkipAll stops enumeration without error;
// any other error aborts it and is returned wrapped.
type PathFunc func(path []string) error

// WalkSimplePaths calls fn for every simple path from source to target with
// at most Cutoff edges, over the simple view of g (parallel edges collapsed).
//
// Paths are node sequences with no repeated interior node. When
// source == target the enumeration yields closed paths [s, ..., s],
// including the degenerate back-and-forth [s, n, s] for every neighbor n
// and [s, s] when s carries a loop.
//
// Errors: ErrGraphNil, ErrNodeNotFound, ErrOptionViolation, ctx.Err(),
// or the wrapped visitor error.
//
// Complexity: exponential in the worst case; bounded by Cutoff.
func WalkSimplePaths(g *core.Graph, source, target string, fn PathFunc, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	for _, id := range []string{source, target} {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}
	cutoff := o.Cutoff
	if cutoff == 0 {
		cutoff = g.NodeCount() - 1
	}
	if cutoff < 1 {
		return nil
	}

	w := &pathWalker{
		g:      g,
		o:      o,
		target: target,
		cutoff: cutoff,
		fn:     fn,
		onPath: map[string]bool{source: true},
		path:   []string{source},
	}
	err = w.extend(source)
	if errors.Is(err, SkipAll) {
		return nil
	}

	return err
}

// AllSimplePaths collects every path WalkSimplePaths would visit.
func AllSimplePaths(g *core.Graph, source, target string, opts ...Option) ([][]string, error) {
	var out [][]string
	err := WalkSimplePaths(g, source, target, func(p []string) error {
		out = append(out, append([]string(nil), p...))
		return nil
	}, opts...)

	return out, err
}

// pathWalker holds the current path stack for WalkSimplePaths.
type pathWalker struct {
	g      *core.Graph
	o      Options
	target string
	cutoff int
	fn     PathFunc
	onPath map[string]bool
	path   []string
}

// extend explores every child of node; len(path) edges+1 nodes are on the stack.
func (w *pathWalker) extend(node string) error {
	select {
	case <-w.o.Ctx.Done():
		return w.o.Ctx.Err()
	default:
	}

	children, err := w.g.NeighborIDs(node)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", node, err)
	}
	for _, child := range children {
		if child == w.target {
			if err = w.emit(); err != nil {
				return err
			}
			continue
		}
		if len(w.path) >= w.cutoff || w.onPath[child] {
			continue
		}
		w.onPath[child] = true
		w.path = append(w.path, child)
		err = w.extend(child)
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, child)
		if err != nil {
			return err
		}
	}

	return nil
}

// emit hands path+target to the visitor.
func (w *pathWalker) emit() error {
	full := append(w.path, w.target)
	err := w.fn(full)
	w.path = full[:len(full)-1]
	if err == nil || errors.Is(err, SkipAll) {
		return err
	}

	return fmt.Errorf("dfs: path visitor: %w", err)
}
