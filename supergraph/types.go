// File: types.go
// Role: sentinel errors, metadata keys and Build options.

package supergraph

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/metrics"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("supergraph: graph is nil")

	// ErrNotImplemented is returned for two- and three-axis expansion.
	ErrNotImplemented = errors.New("supergraph: expansion along more than one axis is not implemented")

	// ErrBadMultiplicity is returned for a multiplicity below 1.
	ErrBadMultiplicity = errors.New("supergraph: multiplicity must be at least 1")

	// ErrNoPeriodicity is returned when no expansion axis is available.
	ErrNoPeriodicity = errors.New("supergraph: no periodicity vector")

	// ErrOffAxisEdge is returned for an edge translated neither by zero nor
	// along the expansion axis.
	ErrOffAxisEdge = errors.New("supergraph: edge translation off the expansion axis")
)

// Metadata keys set on every expanded node, and on every expanded edge for
// KeySource.
const (
	KeySource = "source"
	KeyImage  = "image"
	KeyISite  = "isite"
)

// Option configures Build.
type Option func(*options)

type options struct {
	logger       *zap.Logger
	metrics      *metrics.Collector
	allowOffAxis bool
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records expansions on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}

// WithAllowOffAxis replicates off-axis edges inside each image, with a
// warning, instead of failing.
func WithAllowOffAxis() Option {
	return func(o *options) { o.allowOffAxis = true }
}
