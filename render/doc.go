// Package render hands a periodic multigraph to Graphviz.
//
// ShellLayout places the nodes on a unit circle in insertion order. WriteDOT
// emits an undirected DOT graph with pinned positions:
//
//   - bonds inside the cell are black;
//   - periodic bonds are red and labeled with their translation, read from
//     the edge's From node to its To node;
//   - for a 1D component (one periodicity vector p), bonds translating by ±p
//     are drawn thick, dashed and red to show the chain axis.
//
// Parallel bonds are emitted one statement each; Graphviz spreads them.
package render
