// Package traverse implements the generic breadth-first traversal kernel
// over a core.Complex's Hasse diagram: walking up through cofaces, down
// through faces, or across parent->child edges, driven by a Visitor whose
// Visit method controls whether the walk expands past a given simplex.
//
// The walker shape (queue + per-dimension frontier + visited-set +
// early-return-on-visitor-signal) is grounded on lvlath/bfs.walker,
// generalized from a single flat vertex graph to a dimension-indexed
// Hasse diagram: instead of one queue of vertex IDs, the frontier here
// advances one whole dimension at a time, since coface/face edges only
// ever connect adjacent dimensions.
package traverse
