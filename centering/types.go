// File: types.go
// Role: sentinel errors and Center options.

package centering

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/metrics"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centering: graph is nil")

	// ErrEmptyGraph is returned for a graph without nodes.
	ErrEmptyGraph = errors.New("centering: graph has no nodes")

	// ErrRootNotFound is returned when WithRoot names an absent node.
	ErrRootNotFound = errors.New("centering: root node not found")

	// ErrMultipleZeroDeltas is returned when a node and its tree child are
	// joined by more than one zero-translation edge.
	ErrMultipleZeroDeltas = errors.New("centering: more than one zero-translation edge between a node and its tree child")

	// ErrCenteringImpossible is returned when the zero-translation edges of
	// the result do not connect every node.
	ErrCenteringImpossible = errors.New("centering: could not find a centered graph")
)

// Option configures Center.
type Option func(*options)

type options struct {
	root    string
	anyRoot bool
	logger  *zap.Logger
	metrics *metrics.Collector
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithRoot starts the BFS tree at id instead of the first node.
func WithRoot(id string) Option {
	return func(o *options) { o.root = id }
}

// WithAnyRoot retries with every other node as root, in insertion order,
// when the configured root leads to ErrCenteringImpossible.
func WithAnyRoot() Option {
	return func(o *options) { o.anyRoot = true }
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records centering runs on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}
