// File: types.go
// Role: input records, sentinel errors and constructor options.

package component

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

var (
	// ErrUnknownNode is returned when a link names an environment that was
	// not declared.
	ErrUnknownNode = errors.New("component: link to an unknown environment")

	// ErrUnknownClass is returned when decoding a document of another class.
	ErrUnknownClass = errors.New("component: unexpected @class")

	// ErrGraphNil is returned by FromGraph for a nil graph.
	ErrGraphNil = errors.New("component: graph is nil")
)

// Environment is one coordination environment of the component.
type Environment struct {
	ID    string
	ISite int
	Data  map[string]interface{}
}

// Link bonds two environments. Delta is the translation from the Start
// role to the End role; Start and End default to the isites of From and To.
type Link struct {
	From, To string
	Delta    vec3.Vec3
	Start    *int
	End      *int
	Data     map[string]interface{}
}

// ResultCache stores periodicity results by fingerprint; cache.Store
// implements it.
type ResultCache interface {
	Get(key string) (periodicity.Result, bool, error)
	Put(key string, res periodicity.Result) error
}

// Option configures a Component.
type Option func(*options)

type options struct {
	envData   map[string]map[string]interface{}
	linkData  map[string]interface{}
	algorithm periodicity.Algorithm
	logger    *zap.Logger
	metrics   *metrics.Collector
	cache     ResultCache
}

func defaultOptions() options {
	return options{
		algorithm: periodicity.DefaultAlgorithm,
		logger:    zap.NewNop(),
	}
}

// WithEnvironmentData merges per-environment data, keyed by environment
// ID, into the node metadata. Entries override Environment.Data.
func WithEnvironmentData(data map[string]map[string]interface{}) Option {
	return func(o *options) { o.envData = data }
}

// WithLinkData sets data shared by every link; each edge gets its own copy.
// Link.Data entries override it.
func WithLinkData(data map[string]interface{}) Option {
	return func(o *options) { o.linkData = data }
}

// WithAlgorithm selects the algorithm used by Periodicity.
func WithAlgorithm(a periodicity.Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithLogger sets the structured logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records computations, centering and expansions on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}

// WithResultCache makes Periodicity look results up in rc before computing
// and store fresh ones. Cache failures are logged and otherwise ignored.
func WithResultCache(rc ResultCache) Option {
	return func(o *options) { o.cache = rc }
}
