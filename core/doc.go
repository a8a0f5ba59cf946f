// Package core implements the Hasse-diagram store at the heart of a
// colored abstract simplicial complex: a dimension-indexed arena of nodes
// with O(1) navigation between a k-simplex and every (k-1) face and
// (k+1) coface, insertion that materializes a simplex's full subsimplex
// closure with back-filled incidence links, and cascading removal.
//
// A Complex is parameterized, at construction, by a fixed top dimension D.
// Node and edge payloads are stored as opaque values (one per dimension
// "slot", dispatched at runtime rather than through a compile-time type
// parameter per dimension — Go generics cannot range over a caller-chosen,
// runtime-sized list of distinct payload types) and recovered with the
// package-level PayloadAs helper.
//
// Complex guards its node arena with an RWMutex the same way lvlath's
// core.Graph guards vertices/edges, so read-only queries in the traverse,
// query and orient packages may run concurrently with each other, but
// never concurrently with a mutation (Insert, Remove, SetPayload,
// SetEdgeData, decimate.Decimate).
package core
