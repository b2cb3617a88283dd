// SPDX-License-Identifier: MIT
// Package matrix: Dense storage (row-major) and safe accessors.
//
// Purpose:
//   - Flat row-major buffer with the index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Deterministic loop orders everywhere.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an error with the Dense method and the coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c zero matrix.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	i, ok := m.indexOf(row, col)
	if !ok {
		return 0, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[i], nil
}

// Set stores v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	i, ok := m.indexOf(row, col)
	if !ok {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// add increments (row, col); indices are trusted.
func (m *Dense) add(row, col int, v float64) { m.data[row*m.c+col] += v }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Scale returns a copy with every element multiplied by f.
func (m *Dense) Scale(f float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= f
	}

	return out
}

// Equal reports whether o has the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
