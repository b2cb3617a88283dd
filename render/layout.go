package render

import (
	"math"

	"github.com/katalvlaran/lvperiodic/core"
)

// Point is a 2D drawing position.
type Point struct {
	X, Y float64
}

// Layout maps node IDs to positions.
type Layout map[string]Point

// ShellLayout puts the nodes of g evenly on the unit circle, the first node
// at angle 0, counter-clockwise in insertion order. A single node sits at the
// origin.
func ShellLayout(g *core.Graph) Layout {
	ids := g.NodeIDs()
	out := make(Layout, len(ids))
	if len(ids) == 1 {
		out[ids[0]] = Point{}

		return out
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		a := step * float64(i)
		out[id] = Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	return out
}
