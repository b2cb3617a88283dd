// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// impl_torus.go - Torus(rows, cols): a 2D periodic grid.
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewNodes).
//   • Node (r, c) has local index r*cols + c (row-major).
//   • For each node in row-major order: the horizontal edge (r,c)→(r,c+1)
//     then the vertical edge (r,c)→(r+1,c). The edge leaving the last
//     column wraps to column 0 with (1,0,0); the edge leaving the last row
//     wraps to row 0 with (0,1,0). Other edges have zero translation.
//   • A 1-wide dimension degenerates into loops; the result is always 2D.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const (
	methodTorus  = "Torus"
	minTorusSide = 1
)

// Torus returns a Constructor that builds a rows×cols periodic grid.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusSide || cols < minTorusSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodTorus, rows, cols, minTorusSide, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodTorus, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) string { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				right, dx := (c+1)%cols, vec3.Zero
				if c == cols-1 {
					dx = vec3.New(1, 0, 0)
				}
				if err = cfg.addEdge(g, at(r, c), at(r, right), dx); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodTorus, at(r, c), at(r, right), err)
				}
				down, dy := (r+1)%rows, vec3.Zero
				if r == rows-1 {
					dy = vec3.New(0, 1, 0)
				}
				if err = cfg.addEdge(g, at(r, c), at(down, c), dy); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodTorus, at(r, c), at(down, c), err)
				}
			}
		}

		return nil
	}
}
