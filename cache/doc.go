// Package cache stores periodicity results keyed by a content fingerprint of
// the graph they were computed from.
//
// Fingerprint hashes everything the computation reads: the algorithm, the
// nodes (ID, isite) in insertion order and the edges (endpoints, roles,
// translation) in creation order. Metadata and edge data do not take part.
//
// Store persists results in a badger key-value database, on disk or in
// memory. It satisfies component.ResultCache.
package cache
