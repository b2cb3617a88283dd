// Package periodicity computes the dimensionality of a periodic multigraph:
// the independent lattice vectors along which a connected component repeats.
//
// Two strategies are offered:
//
//   - AllSimplePaths: every node is probed with its closed simple paths
//     (parallel edges expanded through PathDeltas); the node-local vectors
//     are folded into a component-wide reducer.
//   - CycleBasis: a fundamental cycle basis of the simple view, then the
//     two-cycles formed by pairs of parallel edges.
//
// Both stop as soon as three independent vectors are known and agree on the
// resulting Dimension. The returned vectors are representatives: their
// choice and sign depend on the strategy and on insertion order.
//
// Compute accepts a context, a zap logger and a metrics.Collector through
// functional options.
package periodicity
