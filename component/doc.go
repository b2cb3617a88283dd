// Package component models one connected component of coordination
// environments: a periodic multigraph plus its lazily computed periodicity.
//
// A Component is built from environments and links (New) or from a ready
// core.Graph (FromGraph). Periodicity() computes the lattice vectors once,
// with the configured algorithm, and caches them; Compute(alg) recomputes
// explicitly. Centered and Supergraph derive new graphs from the cached
// vectors without touching the component's own graph.
//
// Serialization is deliberately minimal: MarshalJSON writes only the class
// identity and UnmarshalJSON yields an empty component. Graphs are not
// persisted.
package component
