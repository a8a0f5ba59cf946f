// Package casc implements a Colored Abstract Simplicial Complex: a
// dimension-indexed Hasse diagram supporting combinatorial insertion,
// cascading removal, boundary/coboundary traversal, star/closure/link
// queries, orientation, and metadata-aware decimation.
//
// The library is organized as a small set of subpackages built around a
// single mutable core:
//
//	index/     — the vertex-key allocator (free-interval tree)
//	core/      — the Hasse diagram itself: Complex, SimplexId, EdgeId
//	simplexset/ — dimension-indexed sets and grouping maps over SimplexId
//	traverse/  — BFS kernels over boundary/coboundary/edge adjacency
//	query/     — Star, Closure, Link built from traverse primitives
//	orient/    — simplex orientation and pseudo-manifold detection
//	decimate/  — collapse-to-vertex with user-supplied payload synthesis
//	dot/       — Graphviz export
//	meshio/    — Geomview OFF mesh import/export
//
// This top-level package only re-exports the pieces needed to get a
// Complex running; everything else is used by importing the relevant
// subpackage directly.
package casc

// Version is the library's semantic version.
const Version = "0.1.0"
