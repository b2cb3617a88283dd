// Package supergraph expands a one-periodic component into m consecutive
// periodic images along its periodicity vector.
//
// What
//
//   - Build(g, []int{m}, vectors) replicates every node of g m times: node k
//     of image i becomes node i·N+k, with ID strconv.Itoa(i·N+k), the same
//     number as ISite, and metadata {source, image, isite}.
//   - Edges whose translation is the axis p = vectors[0] (or -p) connect
//     image i to image i+1 with a zero translation; the last image wraps
//     back to image 0 keeping p. All other edges are replicated inside each
//     image with their own translation.
//   - The result has m·N nodes and m·E edges; reducing node indices modulo N
//     gives back m copies of the original endpoint multiset.
//
// Limits
//
//	Only single-axis expansion is implemented: more than one multiplicity
//	returns ErrNotImplemented. Edges translated along another direction
//	return ErrOffAxisEdge unless WithAllowOffAxis is given.
package supergraph
