// File: cycle_basis.go
// Role: periodicity from a cycle basis plus parallel-edge two-cycles.

package periodicity

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/dfs"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// cycleBasis feeds the reducer with the translations of every closed basis
// cycle of the simple view, then with the two-cycles formed by each pair of
// parallel edges, which the simple view collapses away.
func cycleBasis(g *core.Graph, o options) ([]vec3.Vec3, int, error) {
	cycles, err := dfs.CycleBasis(g, dfs.WithContext(o.ctx))
	if err != nil {
		return nil, 0, err
	}

	var r vec3.Reducer
	examined := 0
	for _, c := range cycles {
		examined++
		closed := make([]string, 0, len(c)+1)
		closed = append(append(closed, c...), c[0])
		deltas, err := PathDeltas(g, closed)
		if err != nil {
			return nil, examined, err
		}
		if r.Add(deltas...) {
			return r.Vectors(), examined, nil
		}
	}
	o.logger.Debug("basis cycles reduced",
		zap.Int("cycles", len(cycles)),
		zap.Int("rank", r.Len()))

	ids := g.NodeIDs()
	for i, u := range ids {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, examined, err
		}
		for _, v := range nbrs {
			// each unordered pair once; loops are covered by the basis
			if j, _ := g.Index(v); j <= i {
				continue
			}
			edges, err := g.EdgesBetween(u, v)
			if err != nil {
				return nil, examined, err
			}
			for a := 0; a < len(edges); a++ {
				for b := a + 1; b < len(edges); b++ {
					there, err := g.Delta(u, v, edges[a])
					if err != nil {
						return nil, examined, err
					}
					back, err := g.Delta(v, u, edges[b])
					if err != nil {
						return nil, examined, err
					}
					examined++
					if r.Add(there.Add(back)) {
						return r.Vectors(), examined, nil
					}
				}
			}
		}
	}

	return r.Vectors(), examined, nil
}
