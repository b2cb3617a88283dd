// SPDX-License-Identifier: MIT
// Package: lvperiodic/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn     = DefaultIDFn ("0","1","2",...)
//   • rng      = nil (deterministic unless seeded)
//   • edgeData = nil

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	edgeData map[string]interface{}
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addEdge adds u→v with delta d and the configured edge data.
func (c builderConfig) addEdge(g *core.Graph, u, v string, d vec3.Vec3) error {
	var opts []core.EdgeOption
	if c.edgeData != nil {
		data := make(map[string]interface{}, len(c.edgeData))
		for k, val := range c.edgeData {
			data[k] = val
		}
		opts = append(opts, core.WithEdgeData(data))
	}
	_, err := g.AddEdge(u, v, d, opts...)

	return err
}
