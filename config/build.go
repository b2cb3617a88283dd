package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvperiodic/component"
	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/netfmt"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// NewComponent builds the configured component with the configured
// algorithm; opts are applied after it (logger, metrics, result cache).
func (c *Config) NewComponent(opts ...component.Option) (*component.Component, error) {
	alg, err := periodicity.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	all := append([]component.Option{component.WithAlgorithm(alg)}, opts...)
	if c.Component != nil {
		return c.Component.Build(all...)
	}
	g, err := netfmt.ParseNamed("net", strings.NewReader(c.Net))
	if err != nil {
		return nil, err
	}

	return component.FromGraph(g, all...)
}

// Graph builds the configured periodic multigraph.
func (c *Config) Graph() (*core.Graph, error) {
	cc, err := c.NewComponent()
	if err != nil {
		return nil, err
	}

	return cc.Graph(), nil
}

// Build validates the document and turns it into a Component.
func (d *ComponentDoc) Build(opts ...component.Option) (*component.Component, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	envs := make([]component.Environment, len(d.Environments))
	for i, e := range d.Environments {
		envs[i] = component.Environment{ID: e.ID, ISite: e.ISite, Data: e.Data}
	}
	links := make([]component.Link, len(d.Links))
	for i, l := range d.Links {
		links[i] = component.Link{From: l.From, To: l.To, Start: l.Start, End: l.End, Data: l.Data}
		if len(l.Delta) == 3 {
			links[i].Delta = vec3.New(l.Delta[0], l.Delta[1], l.Delta[2])
		}
	}
	if d.LinkData != nil {
		opts = append([]component.Option{component.WithLinkData(d.LinkData)}, opts...)
	}

	return component.New(envs, links, opts...)
}
