package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/dfs"
	"github.com/katalvlaran/lvperiodic/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// graphOf builds nodes (isite = position) and zero-delta edges.
func graphOf(t *testing.T, ids []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, i))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], vec3.Zero)
		require.NoError(t, err)
	}
	return g
}

func TestAllSimplePaths_Closed(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	paths, err := dfs.AllSimplePaths(g, "A", "A", dfs.WithCutoff(3))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "A"},
		{"A", "B", "C", "A"},
		{"A", "C", "A"},
		{"A", "C", "B", "A"},
	}, paths)
}

func TestAllSimplePaths_LoopAndParallel(t *testing.T) {
	g := graphOf(t, []string{"A", "B"}, [2]string{"A", "B"}, [2]string{"B", "A"}, [2]string{"A", "A"})

	paths, err := dfs.AllSimplePaths(g, "A", "A", dfs.WithCutoff(2))
	require.NoError(t, err)
	// parallel edges collapse into one adjacency
	assert.Equal(t, [][]string{{"A", "A"}, {"A", "B", "A"}}, paths)
}

func TestAllSimplePaths_DefaultCutoff(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	// default cutoff is NodeCount-1 = 2 edges: the triangle itself is out of reach
	paths, err := dfs.AllSimplePaths(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "A"}, {"A", "C", "A"}}, paths)

	open, err := dfs.AllSimplePaths(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"A", "C"}}, open)
}

func TestWalkSimplePaths_SkipAll(t *testing.T) {
	g := graphOf(t, []string{"A", "B", "C"}, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})
	n := 0
	err := dfs.WalkSimplePaths(g, "A", "A", func([]string) error {
		n++
		return dfs.SkipAll
	}, dfs.WithCutoff(3))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	boom := errors.New("boom")
	err = dfs.WalkSimplePaths(g, "A", "A", func([]string) error { return boom }, dfs.WithCutoff(3))
	assert.ErrorIs(t, err, boom)
}

func TestWalkSimplePaths_Errors(t *testing.T) {
	g := graphOf(t, []string{"A"})
	noop := func([]string) error { return nil }

	assert.ErrorIs(t, dfs.WalkSimplePaths(nil, "A", "A", noop), dfs.ErrGraphNil)
	assert.ErrorIs(t, dfs.WalkSimplePaths(g, "A", "Z", noop), dfs.ErrNodeNotFound)
	assert.ErrorIs(t, dfs.WalkSimplePaths(g, "A", "A", noop, dfs.WithCutoff(0)), dfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g2 := graphOf(t, []string{"A", "B"}, [2]string{"A", "B"})
	assert.ErrorIs(t, dfs.WalkSimplePaths(g2, "A", "A", noop, dfs.WithContext(ctx)), context.Canceled)
}
