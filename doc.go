// Package lvperiodic finds how a crystal's coordination network repeats in
// space: isolated, chain, layer or framework.
//
// 🚀 What is lvperiodic?
//
//	A thread-safe periodic-multigraph library where every bond carries the
//	integer lattice translation between the two environments it joins:
//		• Core primitives: environments (nodes) with site indices, bonds with roles and translations
//		• Periodicity: all-simple-paths and cycle-basis engines, 0D to 3D
//		• Centering: pull every environment into one unit cell
//		• Supergraph: m-fold expansion along a chain axis
//		• Components: cached periodicity, splitting, minimal JSON
//		• Adapters: YAML/HCL run configs, net notation, Graphviz DOT, HTTP service
//
// Under the hood, everything is organized in small packages:
//
//	vec3/        - integer 3-vectors and incremental rank reduction
//	core/        - Graph, Node, Edge; role-aware translations
//	bfs/, dfs/   - traversals, simple paths, cycle basis
//	periodicity/ - the two engines and Result
//	centering/   - elastic centering
//	supergraph/  - single-axis expansion
//	component/   - ConnectedComponent
//	matrix/      - bond multiplicity matrices and folding
//	builder/     - deterministic periodic nets for tests and demos
//	netfmt/, config/, render/, cache/, httpapi/, metrics/ - the edges of the system
//
// Quick ASCII example:
//
//	    Fe ── O ──(+x)── Fe'
//
// is a 1D chain: walking Fe → O → Fe closes a loop that translates by x.
//
//	go run github.com/katalvlaran/lvperiodic/cmd/lvperiodic -config run.yaml
package lvperiodic
