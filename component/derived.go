// File: derived.go
// Role: graphs derived from a component: centered cell and supergraph.

package component

import (
	"fmt"

	"github.com/katalvlaran/lvperiodic/centering"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/supergraph"
)

// Centered returns an elastically centered copy of the component's graph.
// The component's logger and metrics are passed on; opts may override them.
func (c *Component) Centered(opts ...centering.Option) (*core.Graph, error) {
	all := append([]centering.Option{
		centering.WithLogger(c.logger),
		centering.WithMetrics(c.metrics),
	}, opts...)
	g, err := centering.Center(c.graph, all...)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", c.id, err)
	}

	return g, nil
}

// Supergraph expands the component along its first periodicity vector,
// computing the periodicity first when it is not cached yet.
func (c *Component) Supergraph(multiplicity ...int) (*core.Graph, error) {
	return c.Expand(multiplicity)
}

// Expand is Supergraph with builder options; opts may override the
// component's logger and metrics.
func (c *Component) Expand(multiplicity []int, opts ...supergraph.Option) (*core.Graph, error) {
	res, err := c.Periodicity()
	if err != nil {
		return nil, err
	}
	all := append([]supergraph.Option{
		supergraph.WithLogger(c.logger),
		supergraph.WithMetrics(c.metrics),
	}, opts...)
	g, err := supergraph.Build(c.graph, multiplicity, res.Vectors, all...)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", c.id, err)
	}

	return g, nil
}
