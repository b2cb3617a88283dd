package supergraph

import (
	"sort"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvperiodic/builder"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

var x = vec3.New(1, 0, 0)

func ring(t *testing.T, n int, wrap vec3.Vec3) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Ring(n, wrap))
	require.NoError(t, err)
	return g
}

// pairKeys returns the sorted multiset of unordered endpoint indices,
// reduced modulo n.
func pairKeys(t *testing.T, g *core.Graph, n int) []string {
	t.Helper()
	var keys []string
	for _, e := range g.Edges() {
		a, err := strconv.Atoi(e.From)
		require.NoError(t, err)
		b, err := strconv.Atoi(e.To)
		require.NoError(t, err)
		a, b = a%n, b%n
		if a > b {
			a, b = b, a
		}
		keys = append(keys, strconv.Itoa(a)+"-"+strconv.Itoa(b))
	}
	sort.Strings(keys)
	return keys
}

func TestBuild_Ring(t *testing.T) {
	g := ring(t, 3, x)
	out, err := Build(g, []int{2}, []vec3.Vec3{x})
	require.NoError(t, err)

	assert.Equal(t, 6, out.NodeCount())
	assert.Equal(t, 6, out.EdgeCount())

	n, err := out.Node("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n.ISite)
	assert.Equal(t, "1", n.Metadata[KeySource])
	assert.Equal(t, 1, n.Metadata[KeyImage])
	assert.Equal(t, 1, n.Metadata[KeyISite])

	// image 0 hands over to image 1 inside the supercell
	es, err := out.EdgesBetween("2", "3")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.True(t, es[0].Delta.IsZero())

	// the last image wraps back with the axis
	es, err = out.EdgesBetween("5", "0")
	require.NoError(t, err)
	require.Len(t, es, 1)
	d, err := out.Delta("5", "0", es[0])
	require.NoError(t, err)
	assert.Equal(t, x, d)
	assert.Equal(t, "e3", es[0].Data[KeySource])

	res, err := periodicity.Compute(out)
	require.NoError(t, err)
	require.True(t, res.Is1D())
	assert.True(t, vec3.Parallel(res.Vectors[0], x))
}

func TestBuild_NegativeAxisEdgeIsFlipped(t *testing.T) {
	g := ring(t, 3, x.Neg()) // 2→0 carries -x, so 0→2 carries +x
	out, err := Build(g, []int{2}, []vec3.Vec3{x})
	require.NoError(t, err)

	es, err := out.EdgesBetween("0", "5")
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.True(t, es[0].Delta.IsZero())

	es, err = out.EdgesBetween("3", "2")
	require.NoError(t, err)
	require.Len(t, es, 1)
	d, err := out.Delta("3", "2", es[0])
	require.NoError(t, err)
	assert.Equal(t, x, d)
}

func TestBuild_SingleImageKeepsGraph(t *testing.T) {
	g := ring(t, 1, x)
	out, err := Build(g, []int{1}, []vec3.Vec3{x})
	require.NoError(t, err)
	require.Equal(t, 1, out.NodeCount())
	loops := out.SelfLoops("0")
	require.Len(t, loops, 1)
	assert.Equal(t, x, loops[0].Delta)
}

func TestBuild_CollapseMatchesCopies(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Ring(4, x))
	require.NoError(t, err)
	_, err = g.AddEdge("0", "2", vec3.Zero)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "1", vec3.Zero)
	require.NoError(t, err)

	const m = 3
	out, err := Build(g, []int{m}, []vec3.Vec3{x})
	require.NoError(t, err)

	var want []string
	for i := 0; i < m; i++ {
		want = append(want, pairKeys(t, g, g.NodeCount())...)
	}
	sort.Strings(want)
	assert.Equal(t, want, pairKeys(t, out, g.NodeCount()))
	assert.Equal(t, m*g.EdgeCount(), out.EdgeCount())
}

func TestBuild_Errors(t *testing.T) {
	g := ring(t, 3, x)

	_, err := Build(nil, []int{2}, []vec3.Vec3{x})
	assert.ErrorIs(t, err, ErrGraphNil)

	_, err = Build(g, []int{2, 2}, []vec3.Vec3{x, vec3.New(0, 1, 0)})
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = Build(g, nil, []vec3.Vec3{x})
	assert.ErrorIs(t, err, ErrBadMultiplicity)

	_, err = Build(g, []int{0}, []vec3.Vec3{x})
	assert.ErrorIs(t, err, ErrBadMultiplicity)

	_, err = Build(g, []int{2}, nil)
	assert.ErrorIs(t, err, ErrNoPeriodicity)
}

func TestBuild_InconsistentEdge(t *testing.T) {
	g := ring(t, 2, vec3.Zero)
	_, err := g.AddEdge("0", "1", x, core.WithRoles(7, 8))
	require.NoError(t, err)

	_, err = Build(g, []int{2}, []vec3.Vec3{x})
	assert.ErrorIs(t, err, core.ErrInconsistentEdge)
}

func TestBuild_OffAxis(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Torus(2, 2))
	require.NoError(t, err)

	_, err = Build(g, []int{2}, []vec3.Vec3{x})
	assert.ErrorIs(t, err, ErrOffAxisEdge)

	obs, logs := observer.New(zapcore.WarnLevel)
	out, err := Build(g, []int{2}, []vec3.Vec3{x}, WithAllowOffAxis(), WithLogger(zap.New(obs)))
	require.NoError(t, err)
	assert.Equal(t, 8, out.NodeCount())
	assert.Equal(t, 16, out.EdgeCount())
	assert.Equal(t, 2, logs.FilterMessage("off-axis edge replicated inside each image").Len())
}

func TestBuild_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	g := ring(t, 3, x)

	_, err := Build(g, []int{4}, []vec3.Vec3{x}, WithMetrics(m))
	require.NoError(t, err)
	_, err = Build(g, []int{-1}, []vec3.Vec3{x}, WithMetrics(m))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SupergraphTotal.WithLabelValues(metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SupergraphTotal.WithLabelValues(metrics.OutcomeFailed)))
}
