package bfs

import "github.com/katalvlaran/lvperiodic/core"

// Connected reports whether every node of g is reachable from its first
// node under opts (e.g. WithFilterEdge). An empty graph is connected.
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return true, nil
	}
	res, err := BFS(g, ids[0], opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(ids), nil
}
