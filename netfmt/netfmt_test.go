package netfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperiodic/builder"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const feo = `
# iron oxide chain
node Fe 0
node O  1   # oxygen
edge Fe O
edge O Fe 1 0 0
edge Fe Fe 0 0 -1 roles 0 0
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(feo))
	require.NoError(t, err)
	assert.Equal(t, []string{"Fe", "O"}, g.NodeIDs())

	es := g.Edges()
	require.Len(t, es, 3)
	assert.Equal(t, vec3.Zero, es[0].Delta)
	assert.Equal(t, vec3.New(1, 0, 0), es[1].Delta)
	assert.Equal(t, vec3.New(0, 0, -1), es[2].Delta)
	assert.Equal(t, 0, es[2].Start)
	assert.Equal(t, 0, es[2].End)

	res, err := periodicity.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, periodicity.Dimension(2), res.Dimension())
}

func TestParse_QuotedAndNumericIDs(t *testing.T) {
	g, err := Parse(strings.NewReader(`node 0 0
node "Fe 2" 3
edge 0 "Fe 2" 0 1 0`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "Fe 2"}, g.NodeIDs())
	d, err := g.Delta("0", "Fe 2", g.Edges()[0])
	require.NoError(t, err)
	assert.Equal(t, vec3.New(0, 1, 0), d)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src    string
		target error
	}{
		"short delta":    {"node A 0\nedge A A 1 0", ErrSyntax},
		"missing isite":  {"node A", ErrSyntax},
		"unknown word":   {"vertex A 0", ErrSyntax},
		"unknown node":   {"node A 0\nedge A B", core.ErrNodeNotFound},
		"duplicate node": {"node A 0\nnode A 1", core.ErrDuplicateNode},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Torus(2, 3))
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", vec3.New(0, 0, 1), core.WithRoles(1, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, g))
	back, err := Parse(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
	want, got := g.Edges(), back.Edges()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].From, got[i].From)
		assert.Equal(t, want[i].To, got[i].To)
		assert.Equal(t, want[i].Start, got[i].Start)
		assert.Equal(t, want[i].End, got[i].End)
		assert.Equal(t, want[i].Delta, got[i].Delta)
	}
}

func TestFormat_QuotesAwkwardIDs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("edge", 0))
	require.NoError(t, g.AddNode("a b", 1))
	_, err := g.AddEdge("edge", "a b", vec3.Zero)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, g))
	assert.Equal(t, "node \"edge\" 0\nnode \"a b\" 1\nedge \"edge\" \"a b\"\n", buf.String())
}
