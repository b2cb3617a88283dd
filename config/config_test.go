package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperiodic/component"
	"github.com/katalvlaran/lvperiodic/periodicity"
	"github.com/katalvlaran/lvperiodic/vec3"
)

const chainYAML = `
algorithm: cycle_basis
center: true
supergraph: [3]
component:
  link_data: {bond: covalent}
  environments:
    - {id: Fe, isite: 0, data: {element: Fe}}
    - {id: O, isite: 1}
  links:
    - {from: Fe, to: O}
    - {from: O, to: Fe, delta: [1, 0, 0]}
`

const chainHCL = `
algorithm  = "cycle_basis"
center     = true
supergraph = [3]
link_data  = { bond = "covalent" }

environment "Fe" {
  isite = 0
  data  = { element = "Fe" }
}
environment "O" {
  isite = 1
}
link {
  from = "Fe"
  to   = "O"
}
link {
  from  = "O"
  to    = "Fe"
  delta = [1, 0, 0]
}
`

func checkChain(t *testing.T, cfg *Config) {
	t.Helper()
	assert.Equal(t, "cycle_basis", cfg.Algorithm)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Center)
	assert.Equal(t, []int{3}, cfg.Supergraph)
	require.NotNil(t, cfg.Component)
	assert.Equal(t, "covalent", cfg.Component.LinkData["bond"])

	c, err := cfg.NewComponent()
	require.NoError(t, err)
	assert.Equal(t, periodicity.CycleBasis, c.Algorithm())
	g := c.Graph()
	assert.Equal(t, []string{"Fe", "O"}, g.NodeIDs())
	fe, err := g.Node("Fe")
	require.NoError(t, err)
	assert.Equal(t, "Fe", fe.Metadata["element"])
	es := g.Edges()
	require.Len(t, es, 2)
	assert.Equal(t, vec3.New(1, 0, 0), es[1].Delta)
	assert.Equal(t, "covalent", es[0].Data["bond"])

	res, err := c.Periodicity()
	require.NoError(t, err)
	assert.Equal(t, periodicity.Dimension(1), res.Dimension())
}

func TestLoad_YAML(t *testing.T) {
	cfg, err := Load(strings.NewReader(chainYAML))
	require.NoError(t, err)
	checkChain(t, cfg)
}

func TestLoadHCL(t *testing.T) {
	cfg, err := LoadHCL("chain.hcl", []byte(chainHCL))
	require.NoError(t, err)
	checkChain(t, cfg)
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	y := filepath.Join(dir, "run.yaml")
	h := filepath.Join(dir, "run.HCL")
	require.NoError(t, os.WriteFile(y, []byte(chainYAML), 0o600))
	require.NoError(t, os.WriteFile(h, []byte(chainHCL), 0o600))

	cfg, err := LoadFile(y)
	require.NoError(t, err)
	checkChain(t, cfg)
	cfg, err = LoadFile(h)
	require.NoError(t, err)
	checkChain(t, cfg)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Net(t *testing.T) {
	cfg, err := Load(strings.NewReader(`
net: |
  node Cu 0
  edge Cu Cu 1 0 0
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultAlgorithm, cfg.Algorithm)
	g, err := cfg.Graph()
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "algoritm: cycle_basis\nnet: 'node A 0'",
		"bad algorithm":     "algorithm: fastest\nnet: 'node A 0'",
		"bad level":         "log_level: loud\nnet: 'node A 0'",
		"no component":      "center: true",
		"both sources":      "net: 'node A 0'\ncomponent: {environments: [{id: A, isite: 0}]}",
		"no environments":   "component: {links: []}",
		"negative isite":    "component: {environments: [{id: A, isite: -1}]}",
		"short delta":       "component: {environments: [{id: A, isite: 0}], links: [{from: A, to: A, delta: [1, 0]}]}",
		"zero multiplicity": "supergraph: [0]\nnet: 'node A 0'",
		"not yaml":          "component: [",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadHCL_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":        `environment "A" {`,
		"unknown attr":  `colour = "red"`,
		"missing isite": "environment \"A\" {\n}\n",
		"scalar data":   "environment \"A\" {\n  isite = 0\n  data = 3\n}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadHCL("bad.hcl", []byte(src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestComponentDoc_Build(t *testing.T) {
	start := 1
	doc := &ComponentDoc{
		Environments: []EnvironmentDoc{{ID: "A", ISite: 0}, {ID: "B", ISite: 1}},
		Links: []LinkDoc{
			{From: "A", To: "B", Delta: []int{0, 0, 1}, Start: &start, End: new(int)},
		},
	}
	c, err := doc.Build()
	require.NoError(t, err)
	e := c.Graph().Edges()[0]
	assert.Equal(t, 1, e.Start)
	assert.Equal(t, 0, e.End)

	doc.Links = append(doc.Links, LinkDoc{From: "A", To: "Z"})
	_, err = doc.Build()
	assert.ErrorIs(t, err, component.ErrUnknownNode)

	_, err = (&ComponentDoc{}).Build()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
