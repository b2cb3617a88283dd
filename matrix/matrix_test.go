// SPDX-License-Identifier: MIT

package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperiodic/builder"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/supergraph"
	"github.com/katalvlaran/lvperiodic/vec3"
)

func TestDense_Accessors(t *testing.T) {
	_, err := NewDense(0, 2)
	require.ErrorIs(t, err, ErrBadShape)

	m, err := NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 1))
	assert.False(t, m.Equal(c))
	assert.True(t, m.Equal(m.Clone()))
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 4.5]\n", m.String())
	assert.Equal(t, "[0, 0, 0]\n[0, 0, 9]\n", m.Scale(2).String())
}

func TestAdjacency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0))
	require.NoError(t, g.AddNode("B", 1))
	_, _ = g.AddEdge("A", "B", vec3.Zero)
	_, _ = g.AddEdge("B", "A", vec3.New(1, 0, 0))
	_, _ = g.AddEdge("B", "B", vec3.New(0, 1, 0))

	m, err := Adjacency(g)
	require.NoError(t, err)
	assert.Equal(t, "[0, 2]\n[2, 2]\n", m.String())

	_, err = Adjacency(nil)
	assert.ErrorIs(t, err, ErrGraphNil)
	_, err = Adjacency(core.NewGraph())
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFold(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(4, vec3.New(1, 0, 0)))
	require.NoError(t, err)
	m, err := Adjacency(g)
	require.NoError(t, err)

	f, err := Fold(m, 2)
	require.NoError(t, err)
	// ring 0-1-2-3-0: every bond joins an even and an odd node
	assert.Equal(t, "[0, 4]\n[4, 0]\n", f.String())

	_, err = Fold(m, 3)
	assert.ErrorIs(t, err, ErrBadShape)

	rect, err := NewDense(2, 4)
	require.NoError(t, err)
	_, err = Fold(rect, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFold_SupergraphCollapses(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(3, vec3.New(0, 0, 1)))
	require.NoError(t, err)
	_, err = g.AddEdge("1", "1", vec3.New(0, 0, -2))
	require.NoError(t, err)
	base, err := Adjacency(g)
	require.NoError(t, err)

	for m := 1; m <= 4; m++ {
		sg, err := supergraph.Build(g, []int{m}, []vec3.Vec3{vec3.New(0, 0, 1)}, supergraph.WithAllowOffAxis())
		require.NoError(t, err)
		big, err := Adjacency(sg)
		require.NoError(t, err)
		folded, err := Fold(big, g.NodeCount())
		require.NoError(t, err)
		assert.True(t, folded.Equal(base.Scale(float64(m))), "m=%d:\n%s", m, folded)
	}
}
