// SPDX-License-Identifier: MIT
// Package matrix: bond multiplicity matrices of periodic multigraphs.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/core"
)

// Adjacency returns the N×N bond-count matrix of g in node insertion order.
// Entry (i,j) = (j,i) counts the edges between the two nodes; a loop adds 2
// to its diagonal entry, so row sums are degrees. An empty graph yields
// ErrBadShape.
//
// Complexity: O(V² + E).
func Adjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	for _, e := range g.Edges() {
		i, _ := g.Index(e.From)
		j, _ := g.Index(e.To)
		m.add(i, j, 1)
		m.add(j, i, 1)
	}

	return m, nil
}

// Fold sums m into an n×n matrix, entry (i,j) collecting every (a,b) with
// a mod n == i and b mod n == j. m must be square with a size divisible by n.
//
// Complexity: O(r·c).
func Fold(m *Dense, n int) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Fold: %dx%d: %w", m.r, m.c, ErrDimensionMismatch)
	}
	if n <= 0 || m.r%n != 0 {
		return nil, fmt.Errorf("Fold: size %d by %d: %w", m.r, n, ErrBadShape)
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for a := 0; a < m.r; a++ {
		for b := 0; b < m.c; b++ {
			out.add(a%n, b%n, m.data[a*m.c+b])
		}
	}

	return out, nil
}
