// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// impl_random.go - RandomPeriodic(n, extra, maxAbs): seeded random connected
// periodic multigraph.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes); extra ≥ 0 and maxAbs ≥ 0 (else ErrBadParameter).
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Stage 1: a random spanning tree, node i (i ≥ 1) attached to a uniform j < i.
//   • Stage 2: extra edges between uniform endpoints (loops and parallel edges
//     allowed).
//   • Every translation coordinate is uniform in [-maxAbs, maxAbs].
//   • The result is connected; the same seed yields the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const (
	methodRandomPeriodic = "RandomPeriodic"
	minRandomNodes       = 1
)

// RandomPeriodic returns a Constructor for a random connected periodic multigraph.
func RandomPeriodic(n, extra, maxAbs int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomPeriodic, n, minRandomNodes, ErrTooFewNodes)
		}
		if extra < 0 || maxAbs < 0 {
			return fmt.Errorf("%s: extra=%d maxAbs=%d: %w", methodRandomPeriodic, extra, maxAbs, ErrBadParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomPeriodic, ErrNeedRandSource)
		}
		ids, err := addNodes(g, cfg, methodRandomPeriodic, n)
		if err != nil {
			return err
		}

		delta := func() vec3.Vec3 {
			var d vec3.Vec3
			for k := range d {
				d[k] = cfg.rng.Intn(2*maxAbs+1) - maxAbs
			}
			return d
		}
		for i := 1; i < n; i++ {
			u, v := ids[cfg.rng.Intn(i)], ids[i]
			if err = cfg.addEdge(g, u, v, delta()); err != nil {
				return fmt.Errorf("%s: tree AddEdge(%s→%s): %w", methodRandomPeriodic, u, v, err)
			}
		}
		for k := 0; k < extra; k++ {
			u, v := ids[cfg.rng.Intn(n)], ids[cfg.rng.Intn(n)]
			if err = cfg.addEdge(g, u, v, delta()); err != nil {
				return fmt.Errorf("%s: extra AddEdge(%s→%s): %w", methodRandomPeriodic, u, v, err)
			}
		}

		return nil
	}
}
