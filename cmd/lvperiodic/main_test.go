package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvperiodic/netfmt"
)

const runYAML = `
algorithm: cycle_basis
log_level: error
cache_dir: ":memory:"
center: true
supergraph: [3]
allow_off_axis: true
net: |
  node Fe 0
  node O 1
  edge Fe O 1 0 0
  edge O Fe
  edge Fe Fe 0 0 1
`

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestRun_Text(t *testing.T) {
	dir := t.TempDir()
	f := flags{
		config:    writeConfig(t, runYAML),
		dot:       filepath.Join(dir, "out.dot"),
		net:       filepath.Join(dir, "out.net"),
		adjacency: true,
	}
	var out bytes.Buffer
	require.NoError(t, run(f, &out))

	s := out.String()
	assert.Contains(t, s, "algorithm:   cycle_basis")
	assert.Contains(t, s, "periodicity: 2D layer")
	assert.Contains(t, s, "centered:    yes")
	assert.Contains(t, s, "collapses=true")
	assert.Contains(t, s, "adjacency:\n[2, 2]\n[2, 0]\n")

	dot, err := os.ReadFile(f.dot)
	require.NoError(t, err)
	assert.Contains(t, string(dot), "graph periodic {")

	fh, err := os.Open(f.net)
	require.NoError(t, err)
	defer fh.Close()
	g, err := netfmt.Parse(fh)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fe", "O"}, g.NodeIDs())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(flags{config: writeConfig(t, runYAML), json: true}, &out))

	var rep struct {
		Component  map[string]string `json:"component"`
		Dimension  int               `json:"dimension"`
		Name       string            `json:"name"`
		Supergraph struct {
			Nodes     int  `json:"nodes"`
			Edges     int  `json:"edges"`
			Collapses bool `json:"collapses"`
		} `json:"supergraph"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, "ConnectedComponent", rep.Component["@class"])
	assert.Equal(t, 2, rep.Dimension)
	assert.Equal(t, "layer", rep.Name)
	assert.Equal(t, 6, rep.Supergraph.Nodes)
	assert.Equal(t, 9, rep.Supergraph.Edges)
	assert.True(t, rep.Supergraph.Collapses)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(flags{config: filepath.Join(t.TempDir(), "missing.yaml")}, &out))
	assert.Error(t, run(flags{config: writeConfig(t, "net: 'node A 0'\nlog_level: loud")}, &out))
	assert.Error(t, run(flags{config: writeConfig(t, "net: 'node A 0\nedge A B'")}, &out))
}
