// Package simplexset provides SimplexSet, a dimension-indexed set of
// core.SimplexId handles, and SimplexMap, a dimension-indexed map keyed
// by a sorted vertex-key tuple, both with the per-dimension operations
// and whole-set algebra spec.md §4.5 describes.
//
// Both types generalize lvlath/core's map-of-map adjacency bookkeeping
// (a hash set per bucket, keyed by identity) to a bucket per complex
// dimension instead of a single flat vertex-ID space.
package simplexset
