// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors of periodic nets as
// core.Graph fixtures: rings, zero-translation clusters, tori, single-node
// cells with loops, and seeded random periodic multigraphs.
//
// Usage
//
//	g, err := builder.BuildGraph(nil,
//		builder.Ring(4, vec3.New(1, 0, 0)), // 1D chain, nodes "0".."3"
//		builder.Cluster(3),                 // 0D triangle, nodes "4".."6"
//	)
//
// Contract
//
//   - One orchestrator: BuildGraph(bopts, cons...). Constructors run in order
//     on one graph.
//   - Node IDs come from the configured IDFn applied to the global insertion
//     index, and the node's isite is that same index, so composed
//     constructors never collide.
//   - Edges are emitted in a documented, stable order.
//   - Stochastic constructors require WithSeed or WithRand.
//   - Constructors return sentinel errors and never panic; option
//     constructors panic on meaningless input.
package builder
