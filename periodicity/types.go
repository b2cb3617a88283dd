// File: types.go
// Role: Algorithm, Dimension, Result, options and sentinel errors.

package periodicity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/vec3"
)

var (
	// ErrUnknownAlgorithm is returned for an algorithm name outside the
	// supported set.
	ErrUnknownAlgorithm = errors.New("periodicity: unknown algorithm")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("periodicity: graph is nil")

	// ErrBrokenPath indicates a path hop with no edge between its nodes.
	ErrBrokenPath = errors.New("periodicity: path hop without edges")
)

// Algorithm selects the periodicity strategy.
type Algorithm string

const (
	// AllSimplePaths probes every node with all its closed simple paths.
	AllSimplePaths Algorithm = "all_simple_paths"

	// CycleBasis walks a cycle basis and patches in parallel-edge cycles.
	CycleBasis Algorithm = "cycle_basis"

	// DefaultAlgorithm is used when none is configured.
	DefaultAlgorithm = AllSimplePaths
)

// ParseAlgorithm maps a configuration name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AllSimplePaths, CycleBasis:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Dimension is the number of independent periodicity vectors (0..3).
type Dimension int

// String renders the conventional label, e.g. "2D".
func (d Dimension) String() string { return fmt.Sprintf("%dD", int(d)) }

// Name returns the structural name of the dimensionality.
func (d Dimension) Name() string {
	switch d {
	case 0:
		return "isolated"
	case 1:
		return "chain"
	case 2:
		return "layer"
	case 3:
		return "framework"
	default:
		return "invalid"
	}
}

// Result is a computed periodicity: 0 to 3 independent lattice vectors.
type Result struct {
	Algorithm Algorithm   `json:"algorithm"`
	Vectors   []vec3.Vec3 `json:"vectors"`
}

// Dimension returns the number of periodicity vectors.
func (r Result) Dimension() Dimension { return Dimension(len(r.Vectors)) }

// IsPeriodic reports whether the component repeats in at least one direction.
func (r Result) IsPeriodic() bool { return len(r.Vectors) > 0 }

// Is0D reports an isolated (finite) component.
func (r Result) Is0D() bool { return len(r.Vectors) == 0 }

// Is1D reports a chain.
func (r Result) Is1D() bool { return len(r.Vectors) == 1 }

// Is2D reports a layer.
func (r Result) Is2D() bool { return len(r.Vectors) == 2 }

// Is3D reports a framework.
func (r Result) Is3D() bool { return len(r.Vectors) == 3 }

// Label returns the formatted dimensionality, e.g. "1D".
func (r Result) Label() string { return r.Dimension().String() }

// Option configures Compute.
type Option func(*options)

type options struct {
	algorithm Algorithm
	ctx       context.Context
	logger    *zap.Logger
	metrics   *metrics.Collector
}

func defaultOptions() options {
	return options{
		algorithm: DefaultAlgorithm,
		ctx:       context.Background(),
		logger:    zap.NewNop(),
	}
}

// WithAlgorithm selects the strategy; Compute validates it.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithContext allows cancelling an enumeration.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records computations on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}
