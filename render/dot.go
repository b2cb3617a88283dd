package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// ErrGraphNil is returned by WriteDOT for a nil graph.
var ErrGraphNil = errors.New("render: graph is nil")

// scale converts layout units to Graphviz points-per-inch positions.
const scale = 2.0

// WriteDOT writes g as a Graphviz graph. Nodes missing from layout are left
// for Graphviz to place; vectors are the component's periodicity vectors and
// may be nil.
func WriteDOT(w io.Writer, g *core.Graph, layout Layout, vectors []vec3.Vec3) error {
	if g == nil {
		return ErrGraphNil
	}
	var axis *vec3.Vec3
	if len(vectors) == 1 {
		axis = &vectors[0]
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("graph periodic {\n")
	bw.WriteString("  node [shape=circle];\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "  %s [label=%s", strconv.Quote(n.ID), strconv.Quote(n.ID))
		if p, ok := layout[n.ID]; ok {
			fmt.Fprintf(bw, ", pos=\"%.3f,%.3f!\"", p.X*scale, p.Y*scale)
		}
		bw.WriteString("];\n")
	}
	for _, e := range g.Edges() {
		d, err := g.Delta(e.From, e.To, e)
		if err != nil {
			return fmt.Errorf("render: edge %s: %w", e.ID, err)
		}
		fmt.Fprintf(bw, "  %s -- %s [%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), edgeAttrs(d, axis))
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

func edgeAttrs(d vec3.Vec3, axis *vec3.Vec3) string {
	switch {
	case d.IsZero():
		return "color=black"
	case axis != nil && (d == *axis || d == axis.Neg()):
		return fmt.Sprintf("color=red, style=dashed, penwidth=2, label=%s", strconv.Quote(d.String()))
	default:
		return fmt.Sprintf("color=red, label=%s", strconv.Quote(d.String()))
	}
}
