// Package orient computes and checks a consistent orientation for a
// core.Complex's top-dimensional facets, following spec.md §4.7.
//
// Orientation state (per-edge and per-facet signs) is kept entirely
// inside this package's State rather than inside core.Complex: spec.md §1
// names orientation an "external collaborator" of the core, consuming
// only its read API (Name, Cover, Boundary/Coboundary, EdgeUp/EdgeDown).
// This mirrors how lvlath/graph/algorithms builds Prim/Kruskal's
// component bookkeeping (a union-find over shared edges, kept local to
// the algorithm) on top of lvlath/core's read-only accessors rather than
// storing algorithm-specific state on the Graph itself.
package orient
