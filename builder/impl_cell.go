// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// impl_cell.go - Cell(deltas...) and Cubic(): one site bonded to its own images.
//
// Contract:
//   • One node, one loop per delta in argument order.
//   • Cubic() is Cell((1,0,0), (0,1,0), (0,0,1)), the primitive cubic net (3D).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const methodCell = "Cell"

// Cell returns a Constructor that builds one node with a loop per delta.
func Cell(deltas ...vec3.Vec3) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addNodes(g, cfg, methodCell, 1)
		if err != nil {
			return err
		}
		for _, d := range deltas {
			if err = cfg.addEdge(g, ids[0], ids[0], d); err != nil {
				return fmt.Errorf("%s: AddEdge(%s loop %v): %w", methodCell, ids[0], d, err)
			}
		}

		return nil
	}
}

// Cubic returns the primitive cubic net: a single site bonded along x, y and z.
func Cubic() Constructor {
	return Cell(vec3.New(1, 0, 0), vec3.New(0, 1, 0), vec3.New(0, 0, 1))
}
