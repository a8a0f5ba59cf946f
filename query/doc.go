// Package query composes traverse's BFS primitives into the three
// classical simplicial-complex queries: Star, Closure and Link, over
// either a single handle or a simplexset.SimplexSet — the same
// compose-lower-level-primitives shape as lvlath/algorithms building
// Dijkstra/MST on top of lvlath/bfs and lvlath/dfs.
package query
