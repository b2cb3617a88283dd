package netfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// ErrSyntax wraps the positioned error of a malformed net.
var ErrSyntax = errors.New("netfmt: syntax error")

// Parse reads a net and builds its graph. Node and edge errors from core
// (duplicate node, unknown endpoint, negative isite) are returned wrapped
// with the line they come from.
func Parse(r io.Reader) (*core.Graph, error) {
	return ParseNamed("", r)
}

// ParseNamed is Parse with a file name used in error positions.
func ParseNamed(name string, r io.Reader) (*core.Graph, error) {
	file, err := parseNet.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g := core.NewGraph()
	for _, ent := range file.Entries {
		switch {
		case ent.Node != nil:
			if err = g.AddNode(ent.Node.ID, ent.Node.ISite); err != nil {
				return nil, fmt.Errorf("netfmt: %s: node %q: %w", ent.Pos, ent.Node.ID, err)
			}
		case ent.Edge != nil:
			if err = addEdge(g, ent.Edge); err != nil {
				return nil, fmt.Errorf("netfmt: %s: edge %q→%q: %w", ent.Pos, ent.Edge.From, ent.Edge.To, err)
			}
		}
	}

	return g, nil
}

func addEdge(g *core.Graph, d *edgeDecl) error {
	delta := vec3.Zero
	if len(d.Delta) == 3 {
		delta = vec3.New(d.Delta[0], d.Delta[1], d.Delta[2])
	}
	var opts []core.EdgeOption
	if d.Roles != nil {
		opts = append(opts, core.WithRoles(d.Roles.Start, d.Roles.End))
	}
	_, err := g.AddEdge(d.From, d.To, delta, opts...)

	return err
}

var bareID = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_.:\-]*|\d+)$`)

// Format writes g in net notation: nodes in insertion order, then edges in
// creation order. Deltas are written for periodic edges only and roles only
// when they differ from the endpoints' isites.
func Format(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "node %s %d\n", quoteID(n.ID), n.ISite)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "edge %s %s", quoteID(e.From), quoteID(e.To))
		if e.Periodic() {
			fmt.Fprintf(bw, " %d %d %d", e.Delta[0], e.Delta[1], e.Delta[2])
		}
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		if e.Start != from.ISite || e.End != to.ISite {
			fmt.Fprintf(bw, " roles %d %d", e.Start, e.End)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func quoteID(id string) string {
	if bareID.MatchString(id) && id != "node" && id != "edge" && id != "roles" {
		return id
	}

	return strconv.Quote(id)
}
