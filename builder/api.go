// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first, add nodes through
// addNodes, and return sentinel errors wrapped with their method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped as "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n nodes and returns their IDs. The isite of each node is
// its global insertion index.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	base := g.NodeCount()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(base + i)
		if err := g.AddNode(ids[i], base+i); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
