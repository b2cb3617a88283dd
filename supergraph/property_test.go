package supergraph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvperiodic/builder"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

func TestBuildProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("m images of an n-ring have m·n nodes and stay 1D along the axis", prop.ForAll(
		func(n, m, k int) bool {
			axis := vec3.New(0, k, 0)
			g, err := builder.BuildGraph(nil, builder.Ring(n, axis))
			if err != nil {
				return false
			}
			out, err := Build(g, []int{m}, []vec3.Vec3{axis})
			if err != nil {
				return false
			}
			if out.NodeCount() != m*n || out.EdgeCount() != m*g.EdgeCount() {
				return false
			}
			res, err := periodicity.Compute(out, periodicity.WithAlgorithm(periodicity.CycleBasis))
			return err == nil && res.Is1D() && vec3.Parallel(res.Vectors[0], axis)
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 5),
		gen.IntRange(1, 3),
	))

	properties.TestingRun(t)
}
