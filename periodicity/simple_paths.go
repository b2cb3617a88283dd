// File: simple_paths.go
// Role: periodicity from the closed simple paths through each node.
// Determinism: nodes are probed in insertion order; paths in dfs order.

package periodicity

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/core"
	"github.com/katalvlaran/lvperiodic/dfs"
	"github.com/katalvlaran/lvperiodic/vec3"
)

// allSimplePaths probes every node t with the closed simple paths t→t.
//
// Stages per node:
//  1. Seed a node-local reducer with the translations of t's loops.
//  2. Walk every simple path t→t with at most NodeCount edges; paths whose
//     isite sequence was already seen for t are skipped.
//  3. Feed PathDeltas of each kept path; stop the walk once full.
//  4. A node with three independent vectors ends the whole computation and
//     its vectors are the result. Otherwise its vectors are folded into the
//     component-wide reducer, which ends the computation when full.
//
// A cycle only reaches the vectors of nodes lying on it, so the fold over
// nodes is what lets loops and rings hanging off different nodes add up.
func allSimplePaths(g *core.Graph, o options) ([]vec3.Vec3, int, error) {
	nodes := g.Nodes()
	isite := make(map[string]int, len(nodes))
	for _, n := range nodes {
		isite[n.ID] = n.ISite
	}

	var component vec3.Reducer
	examined := 0
	for _, t := range nodes {
		var local vec3.Reducer
		for _, loop := range g.SelfLoops(t.ID) {
			local.Add(loop.Delta)
		}

		seen := hashset.New()
		visit := func(path []string) error {
			key := isiteKey(path, isite)
			if seen.Contains(key) {
				return nil
			}
			seen.Add(key)
			examined++

			deltas, err := PathDeltas(g, path)
			if err != nil {
				return err
			}
			if local.Add(deltas...) {
				return dfs.SkipAll
			}

			return nil
		}
		if !local.Full() {
			err := dfs.WalkSimplePaths(g, t.ID, t.ID, visit,
				dfs.WithCutoff(len(nodes)),
				dfs.WithContext(o.ctx))
			if err != nil {
				return nil, examined, err
			}
		}

		o.logger.Debug("node probed",
			zap.String("node", t.ID),
			zap.Int("isite", t.ISite),
			zap.Int("paths", seen.Size()),
			zap.Int("rank", local.Len()))

		if local.Full() {
			return local.Vectors(), examined, nil
		}
		if component.Add(local.Vectors()...) {
			break
		}
	}

	return component.Vectors(), examined, nil
}

// isiteKey renders the isite sequence of path as "i0,i1,...".
func isiteKey(path []string, isite map[string]int) string {
	var sb strings.Builder
	for i, id := range path {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(isite[id]))
	}

	return sb.String()
}
