package traverse

import "github.com/katalvlaran/casc/core"

// VisitBFSUp walks from start toward higher dimensions: it visits start,
// and if the visitor returns true, enqueues every direct coface for the
// next frontier; the walk proceeds dimension by dimension (every
// dimension-k0 node in the current call's reach before any dimension-
// k0+1 node) until dimension c.Dim(). A set-based frontier deduplicates
// so each simplex is visited at most once.
func VisitBFSUp(c *core.Complex, start core.SimplexId, v Visitor) {
	visited := map[core.SimplexId]bool{start: true}
	frontier := []core.SimplexId{start}

	for len(frontier) > 0 {
		next := make([]core.SimplexId, 0)
		nextSeen := map[core.SimplexId]bool{}
		for _, h := range frontier {
			if !v.Visit(h.Dim(), h) {
				continue
			}
			for _, ch := range c.Coboundary(h) {
				if visited[ch] || nextSeen[ch] {
					continue
				}
				nextSeen[ch] = true
				visited[ch] = true
				next = append(next, ch)
			}
		}
		frontier = next
	}
}

// VisitBFSDown is the symmetric walk toward lower dimensions, using
// Boundary instead of Coboundary. It never visits the root (dimension 0):
// the walk terminates once the frontier only contains dimension-1
// simplices and the visitor has been given the chance to abort further
// expansion.
func VisitBFSDown(c *core.Complex, start core.SimplexId, v Visitor) {
	visited := map[core.SimplexId]bool{start: true}
	frontier := []core.SimplexId{start}

	for len(frontier) > 0 {
		next := make([]core.SimplexId, 0)
		nextSeen := map[core.SimplexId]bool{}
		for _, h := range frontier {
			if !v.Visit(h.Dim(), h) {
				continue
			}
			if h.Dim() <= 1 {
				continue // root is never a member of the frontier
			}
			for _, p := range c.Boundary(h) {
				if visited[p] || nextSeen[p] {
					continue
				}
				nextSeen[p] = true
				visited[p] = true
				next = append(next, p)
			}
		}
		frontier = next
	}
}

// VisitEdgeBFS walks upward from a starting edge, at each level replacing
// the frontier with the edges (current child, cover key) reachable from
// every edge's child endpoint, i.e. it drives the same up-BFS as
// VisitBFSUp but at edge granularity.
func VisitEdgeBFS(c *core.Complex, start core.EdgeId, v EdgeVisitor) {
	type edgeKey struct {
		child core.SimplexId
		key   core.Key
	}
	seenEdge := func(e core.EdgeId) edgeKey { return edgeKey{child: e.Up(), key: e.Key()} }

	visited := map[edgeKey]bool{seenEdge(start): true}
	frontier := []core.EdgeId{start}

	for len(frontier) > 0 {
		next := make([]core.EdgeId, 0)
		for _, e := range frontier {
			if !v.Visit(e) {
				continue
			}
			up := e.Up()
			for _, coverKey := range c.Cover(up) {
				ne, ok := c.EdgeUp(up, coverKey)
				if !ok {
					continue
				}
				k := seenEdge(ne)
				if visited[k] {
					continue
				}
				visited[k] = true
				next = append(next, ne)
			}
		}
		frontier = next
	}
}
