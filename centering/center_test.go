package centering

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvperiodic/bfs"
	"github.com/katalvlaran/lvperiodic/builder"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

var (
	x = vec3.New(1, 0, 0)
	y = vec3.New(0, 1, 0)
)

func newGraph(t *testing.T, isites ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, s := range isites {
		require.NoError(t, g.AddNode(string(rune('A'+i)), s))
	}
	return g
}

func addEdge(t *testing.T, g *core.Graph, from, to string, d vec3.Vec3, opts ...core.EdgeOption) string {
	t.Helper()
	id, err := g.AddEdge(from, to, d, opts...)
	require.NoError(t, err)
	return id
}

func deltas(g *core.Graph) map[string]vec3.Vec3 {
	out := make(map[string]vec3.Vec3, g.EdgeCount())
	for _, e := range g.Edges() {
		out[e.ID] = e.Delta
	}
	return out
}

func assertCentered(t *testing.T, g *core.Graph) {
	t.Helper()
	ok, err := bfs.Connected(core.ZeroDeltaView(g))
	require.NoError(t, err)
	assert.True(t, ok, "zero-translation edges must connect every node")
}

func TestCenter_Chain(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(3, x))
	require.NoError(t, err)
	before := deltas(g)

	out, err := Center(g, WithRoot("1"))
	require.NoError(t, err)
	assertCentered(t, out)
	assert.Equal(t, before, deltas(g), "input must not be mutated")

	res, err := periodicity.Compute(out)
	require.NoError(t, err)
	require.True(t, res.Is1D())
	assert.True(t, vec3.Parallel(res.Vectors[0], x))
}

func TestCenter_PullsPathInside(t *testing.T) {
	g := newGraph(t, 0, 1, 2)
	addEdge(t, g, "A", "B", x)
	addEdge(t, g, "B", "C", y)

	out, err := Center(g)
	require.NoError(t, err)
	for _, e := range out.Edges() {
		assert.True(t, e.Delta.IsZero(), "edge %s: %v", e.ID, e.Delta)
	}
}

func TestCenter_RespectsRoles(t *testing.T) {
	g := newGraph(t, 0, 1)
	// From plays the End role
	addEdge(t, g, "A", "B", x, core.WithRoles(1, 0))
	addEdge(t, g, "A", "A", y)

	out, err := Center(g)
	require.NoError(t, err)
	es, err := out.EdgesBetween("A", "B")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.True(t, es[0].Delta.IsZero())
	assert.Equal(t, y, out.SelfLoops("A")[0].Delta, "loops are never rewritten")
}

func TestCenter_Idempotent(t *testing.T) {
	g := newGraph(t, 0, 1, 2)
	addEdge(t, g, "A", "B", x)
	addEdge(t, g, "B", "C", y)
	addEdge(t, g, "C", "A", vec3.New(0, 0, 1))

	once, err := Center(g)
	require.NoError(t, err)
	twice, err := Center(once)
	require.NoError(t, err)
	assert.Equal(t, deltas(once), deltas(twice))
	assert.Equal(t, once.NodeIDs(), twice.NodeIDs())
}

func TestCenter_AlreadyCenteredSquareUnchanged(t *testing.T) {
	g := newGraph(t, 0, 1, 2, 3)
	addEdge(t, g, "A", "B", vec3.Zero)
	addEdge(t, g, "B", "C", vec3.Zero)
	addEdge(t, g, "C", "D", vec3.Zero)
	addEdge(t, g, "D", "A", x)

	out, err := Center(g)
	require.NoError(t, err)
	assert.Equal(t, deltas(g), deltas(out))
}

func TestCenter_MultipleZeroDeltas(t *testing.T) {
	g := newGraph(t, 0, 1, 2)
	addEdge(t, g, "A", "B", vec3.Zero)
	addEdge(t, g, "B", "A", vec3.Zero)
	addEdge(t, g, "B", "C", x)

	_, err := Center(g)
	assert.ErrorIs(t, err, ErrMultipleZeroDeltas)
}

func TestCenter_Impossible(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		g := newGraph(t, 0, 1)
		_, err := Center(g)
		require.ErrorIs(t, err, ErrCenteringImpossible)
		assert.Contains(t, err.Error(), `"A"`)

		_, err = Center(g, WithAnyRoot())
		assert.ErrorIs(t, err, ErrCenteringImpossible)
	})
	t.Run("shared isite", func(t *testing.T) {
		// both endpoints claim isite 0, so translating one end doubles the bond
		g := newGraph(t, 0, 0)
		addEdge(t, g, "A", "B", x)
		_, err := Center(g)
		assert.ErrorIs(t, err, ErrCenteringImpossible)
	})
}

func TestCenter_InconsistentEdge(t *testing.T) {
	g := newGraph(t, 0, 1)
	addEdge(t, g, "A", "B", x, core.WithRoles(4, 9))

	_, err := Center(g)
	assert.ErrorIs(t, err, core.ErrInconsistentEdge)
}

func TestCenter_InputErrors(t *testing.T) {
	_, err := Center(nil)
	assert.ErrorIs(t, err, ErrGraphNil)

	_, err = Center(core.NewGraph())
	assert.ErrorIs(t, err, ErrEmptyGraph)

	_, err = Center(newGraph(t, 0), WithRoot("Z"))
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestCenter_LoggingAndMetrics(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New(prometheus.NewRegistry())

	g := newGraph(t, 0, 1, 2)
	addEdge(t, g, "A", "B", x)
	addEdge(t, g, "B", "C", y)
	_, err := Center(g, WithLogger(zap.New(obs)), WithMetrics(m))
	require.NoError(t, err)
	_, err = Center(core.NewGraph(), WithMetrics(m))
	require.Error(t, err)

	pulled := logs.FilterMessage("pulling neighbor inside the cell").All()
	require.Len(t, pulled, 2)
	assert.Equal(t, "B", pulled[0].ContextMap()["neighbor"])
	assert.Equal(t, "(1, 0, 0)", pulled[0].ContextMap()["delta"])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CenteringTotal.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CenteringTotal.WithLabelValues(metrics.OutcomeFailed)))
}
