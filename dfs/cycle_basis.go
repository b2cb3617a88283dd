// File: cycle_basis.go
// Role: fundamental cycle basis of the collapsed simple view (Paton's algorithm).
// Determinism: roots are taken in node insertion order; neighbors in
//              core.NeighborIDs order; the stack is LIFO.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
)

// CycleBasis returns a basis of the cycle space of the simple view of g:
// parallel edges collapse into one, and a node with loops contributes the
// one-node cycle [z]. Cycles are open node sequences; close them by
// appending their first node.
//
// Implementation (Paton 1969):
//   - Grow a spanning tree from the first node not yet covered, popping
//     nodes from a stack.
//   - Every non-tree edge z–nbr closes the cycle nbr, z, pred(z), ... up to
//     the first ancestor already adjacent to nbr.
//   - Repeat per connected component.
//
// Errors: ErrGraphNil, ctx.Err().
//
// Complexity: O(V + E) tree work plus the total length of reported cycles.
func CycleBasis(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	covered := make(map[string]bool, g.NodeCount())
	var cycles [][]string
	for _, root := range g.NodeIDs() {
		if covered[root] {
			continue
		}
		pred := map[string]string{root: root}
		used := map[string]map[string]bool{root: {}}
		stack := []string{root}
		for len(stack) > 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			z := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbrs, err := g.NeighborIDs(z)
			if err != nil {
				return nil, fmt.Errorf("dfs: neighbors of %q: %w", z, err)
			}
			for _, nbr := range nbrs {
				switch {
				case used[nbr] == nil:
					pred[nbr] = z
					stack = append(stack, nbr)
					used[nbr] = map[string]bool{z: true}
				case nbr == z:
					cycles = append(cycles, []string{z})
				case !used[z][nbr]:
					pn := used[nbr]
					cycle := []string{nbr, z}
					p := pred[z]
					for !pn[p] {
						cycle = append(cycle, p)
						p = pred[p]
					}
					cycle = append(cycle, p)
					cycles = append(cycles, cycle)
					used[nbr][z] = true
				}
			}
		}
		for id := range pred {
			covered[id] = true
		}
	}

	return cycles, nil
}
