// File: deltas.go
// Role: cumulative translations of a node path, branching over parallel edges.

package periodicity

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// PathDeltas returns every cumulative translation of the node sequence path.
//
// Consecutive nodes may be joined by several parallel edges, each with its
// own translation, so the result is the cross product of the per-hop
// choices: a list of partial sums is expanded hop by hop, edges outer and
// partial sums inner. A hop u→u uses the loops at u. A path of fewer than
// two nodes yields the single zero translation.
//
// Errors: ErrBrokenPath when a hop has no edge, core errors from role
// resolution (core.ErrInconsistentEdge, core.ErrNodeNotFound).
//
// Complexity: O(Π m_i) where m_i is the multiplicity of hop i.
func PathDeltas(g *core.Graph, path []string) ([]vec3.Vec3, error) {
	sums := []vec3.Vec3{vec3.Zero}
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		edges, err := g.EdgesBetween(from, to)
		if err != nil {
			return nil, err
		}
		if len(edges) == 0 {
			return nil, fmt.Errorf("%w: %q→%q", ErrBrokenPath, from, to)
		}
		next := make([]vec3.Vec3, 0, len(sums)*len(edges))
		for _, e := range edges {
			d, err := g.Delta(from, to, e)
			if err != nil {
				return nil, err
			}
			for _, s := range sums {
				next = append(next, s.Add(d))
			}
		}
		sums = next
	}

	return sums, nil
}
