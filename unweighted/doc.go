// Package unweighted provides the adjacency-list graph type used by the
// bfs and dfs algorithm packages.
//
// What
//
//   - Graph: a directed or undirected graph with no edge weights, stored as
//     a mapping from vertex ID to an ordered sequence of neighbor IDs.
//   - Construction only ever adds: vertices and edges cannot be removed.
//   - Edge insertion appends; repeated AddEdge calls are NOT deduplicated.
//   - Undirectedness is resolved at query time by Neighbors: storage holds the
//     forward lists exactly as inserted, and reverse-implied neighbors are
//     derived on demand. Storage is never mutated by a query.
//
// Determinism
//
//	Vertices() enumerates in insertion order, and Neighbors preserves edge
//	insertion order, so every traversal built on this package is fully
//	reproducible without sorting.
//
// Errors
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - operation referenced an ID absent from the graph.
//
// Concurrency
//
//	None. The graph is a plain in-memory structure; callers that share one
//	across goroutines must serialize access externally.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddVertex, AddEdge, HasVertex: O(1) amortized
//   - HasEdge: O(deg)
//   - Neighbors: O(deg) directed, O(V + E) undirected (reverse scan)
package unweighted
