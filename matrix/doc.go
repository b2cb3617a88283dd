// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major Dense matrix and the bond
// multiplicity matrices of periodic multigraphs.
//
// What:
//
//   - Dense: float64 storage with safe At/Set (errors instead of panics),
//     Clone, Equal and a bracketed String form.
//   - Adjacency(g): N×N matrix where entry (i,j) counts the bonds between the
//     i-th and j-th nodes (insertion order). A loop adds 2 to the diagonal,
//     so row sums are degrees. Translations are ignored: the matrix
//     describes the quotient graph.
//   - Fold(m, n): sums a (k·n)×(k·n) matrix into n×n by reducing both indices
//     modulo n. For a supergraph of multiplicity k built from g,
//     Fold(Adjacency(super), N) equals k·Adjacency(g).
//
// Complexity:
//
//   - NewDense: O(r·c); At/Set: O(1); Adjacency: O(V² + E); Fold: O(r·c).
package matrix
