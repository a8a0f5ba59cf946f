package traverse

import "github.com/katalvlaran/casc/core"

// Visitor is driven by the BFS kernel once per simplex. Returning false
// tells the walker not to expand past this simplex; other simplices in
// the same dimension frontier are still visited (the frontier is a set,
// not a per-branch decision).
type Visitor interface {
	Visit(dim int, h core.SimplexId) bool
}

// VisitorFunc adapts a plain func to Visitor.
type VisitorFunc func(dim int, h core.SimplexId) bool

// Visit implements Visitor.
func (f VisitorFunc) Visit(dim int, h core.SimplexId) bool { return f(dim, h) }

// EdgeVisitor is driven once per edge by VisitEdgeBFS.
type EdgeVisitor interface {
	Visit(e core.EdgeId) bool
}

// EdgeVisitorFunc adapts a plain func to EdgeVisitor.
type EdgeVisitorFunc func(e core.EdgeId) bool

// Visit implements EdgeVisitor.
func (f EdgeVisitorFunc) Visit(e core.EdgeId) bool { return f(e) }
