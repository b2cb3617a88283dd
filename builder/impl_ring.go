// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// impl_ring.go - Ring(n, wrap): a closed chain of n sites.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • Edges i→i+1 with zero translation for i = 0..n-2, then n-1→0 with wrap.
//   • n == 1 yields a single node with one loop carrying wrap.
//   • A non-zero wrap makes the ring a 1D chain along wrap; zero wrap a 0D ring.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const (
	methodRing   = "Ring"
	minRingNodes = 1
)

// Ring returns a Constructor that builds an n-site ring closed by wrap.
func Ring(n int, wrap vec3.Vec3) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodRing, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			d := vec3.Zero
			if i == n-1 {
				d = wrap
			}
			u, v := ids[i], ids[(i+1)%n]
			if err = cfg.addEdge(g, u, v, d); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, %v): %w", methodRing, u, v, d, err)
			}
		}

		return nil
	}
}
