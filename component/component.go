// File: component.go
// Role: Component construction and the cached periodicity.
// Concurrency: the periodicity cache is guarded by mu; concurrent
//              Periodicity calls compute once.

package component

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/cache"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/periodicity"
)

// Component is a connected component of environments with its periodicity.
type Component struct {
	id        uuid.UUID
	graph     *core.Graph
	algorithm periodicity.Algorithm
	logger    *zap.Logger
	metrics   *metrics.Collector
	cache     ResultCache

	mu     sync.Mutex
	result *periodicity.Result
}

// New builds a component from environments and links.
//
// Errors: ErrUnknownNode for a link endpoint that is not among envs,
// periodicity.ErrUnknownAlgorithm, and core node errors (ErrEmptyNodeID,
// ErrNegativeISite, ErrDuplicateNode).
func New(envs []Environment, links []Link, opts ...Option) (*Component, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := periodicity.ParseAlgorithm(string(o.algorithm)); err != nil {
		return nil, fmt.Errorf("component: %w", err)
	}

	g := core.NewGraph()
	for _, env := range envs {
		md := merge(env.Data, o.envData[env.ID])
		if err := g.AddNode(env.ID, env.ISite, core.WithNodeMetadata(md)); err != nil {
			return nil, fmt.Errorf("component: environment %q: %w", env.ID, err)
		}
	}
	for i, l := range links {
		for _, id := range []string{l.From, l.To} {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: link %d (%q→%q) names %q", ErrUnknownNode, i, l.From, l.To, id)
			}
		}
		edgeOpts := []core.EdgeOption{core.WithEdgeData(merge(o.linkData, l.Data))}
		if l.Start != nil || l.End != nil {
			start, end := isiteOf(g, l.From), isiteOf(g, l.To)
			if l.Start != nil {
				start = *l.Start
			}
			if l.End != nil {
				end = *l.End
			}
			edgeOpts = append(edgeOpts, core.WithRoles(start, end))
		}
		if _, err := g.AddEdge(l.From, l.To, l.Delta, edgeOpts...); err != nil {
			return nil, fmt.Errorf("component: link %d: %w", i, err)
		}
	}

	return newComponent(g, o), nil
}

// FromGraph wraps an existing graph. The graph is used as is, not copied.
func FromGraph(g *core.Graph, opts ...Option) (*Component, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := periodicity.ParseAlgorithm(string(o.algorithm)); err != nil {
		return nil, fmt.Errorf("component: %w", err)
	}

	return newComponent(g, o), nil
}

func newComponent(g *core.Graph, o options) *Component {
	id := uuid.New()
	c := &Component{
		id:        id,
		graph:     g,
		algorithm: o.algorithm,
		logger:    o.logger.With(zap.Stringer("component", id)),
		metrics:   o.metrics,
		cache:     o.cache,
	}
	c.logger.Debug("component created",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	return c
}

// ID returns the instance identifier used to correlate log lines.
func (c *Component) ID() uuid.UUID { return c.id }

// Graph returns the component's graph.
func (c *Component) Graph() *core.Graph { return c.graph }

// Algorithm returns the algorithm Periodicity uses.
func (c *Component) Algorithm() periodicity.Algorithm { return c.algorithm }

// Computed reports whether the periodicity is cached.
func (c *Component) Computed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.result != nil
}

// Periodicity returns the cached periodicity, computing it on first use.
func (c *Component) Periodicity() (periodicity.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result != nil {
		return *c.result, nil
	}
	if res, ok := c.lookupLocked(c.algorithm); ok {
		return res, nil
	}

	return c.computeLocked(c.algorithm)
}

// Compute recomputes the periodicity with alg and replaces the cache. The
// cache is left untouched on error.
func (c *Component) Compute(alg periodicity.Algorithm) (periodicity.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.computeLocked(alg)
}

func (c *Component) computeLocked(alg periodicity.Algorithm) (periodicity.Result, error) {
	res, err := periodicity.Compute(c.graph,
		periodicity.WithAlgorithm(alg),
		periodicity.WithLogger(c.logger),
		periodicity.WithMetrics(c.metrics))
	if err != nil {
		return periodicity.Result{}, fmt.Errorf("component %s: %w", c.id, err)
	}
	c.result = &res
	if c.cache != nil {
		if err = c.cache.Put(cache.Fingerprint(c.graph, alg), res); err != nil {
			c.logger.Warn("result cache write failed", zap.Error(err))
		}
	}
	c.logger.Info("periodicity computed",
		zap.String("algorithm", string(alg)),
		zap.String("periodicity", res.Label()))

	return res, nil
}

// lookupLocked consults the result cache and adopts a hit.
func (c *Component) lookupLocked(alg periodicity.Algorithm) (periodicity.Result, bool) {
	if c.cache == nil {
		return periodicity.Result{}, false
	}
	res, ok, err := c.cache.Get(cache.Fingerprint(c.graph, alg))
	if err != nil {
		c.logger.Warn("result cache read failed", zap.Error(err))

		return periodicity.Result{}, false
	}
	if !ok {
		return periodicity.Result{}, false
	}
	c.result = &res
	c.logger.Debug("periodicity from cache", zap.String("periodicity", res.Label()))

	return res, true
}

// merge returns a fresh map holding base overlaid with over, or nil when
// both are empty.
func merge(base, over map[string]interface{}) map[string]interface{} {
	if len(base) == 0 && len(over) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}

	return out
}

func isiteOf(g *core.Graph, id string) int {
	n, err := g.Node(id)
	if err != nil {
		return -1
	}

	return n.ISite
}
