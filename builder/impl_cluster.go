// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// impl_cluster.go - Cluster(n): complete graph K_n inside one cell.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • Edges i→j for i<j in lexicographic (i, j) order, all zero translation.
//   • The result is always 0D (isolated).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const (
	methodCluster   = "Cluster"
	minClusterNodes = 1
)

// Cluster returns a Constructor that builds a zero-translation K_n.
func Cluster(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minClusterNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCluster, n, minClusterNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodCluster, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = cfg.addEdge(g, ids[i], ids[j], vec3.Zero); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCluster, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
