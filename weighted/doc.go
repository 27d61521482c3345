// Package weighted provides the weighted adjacency-list graph type used by
// the dijkstra, floydwarshall, and mst algorithm packages.
//
// What
//
//   - Graph: directed or undirected, with an explicit Vertex entity per ID.
//     Each Vertex exclusively owns its neighbor weight map; the targets it
//     names are plain IDs resolved back through the graph's vertex catalog.
//   - Vertices must be registered before edges: AddEdge fails when either
//     endpoint is missing.
//   - Duplicate neighbors are a silent no-op — the first weight wins.
//   - Undirected graphs mirror every edge into both endpoint maps with the
//     same weight at insertion time.
//
// Determinism
//
//	Vertices() enumerates in insertion order, each vertex lists its
//	neighbors in insertion order, and Edges() composes the two, so every
//	algorithm built on this package is reproducible without sorting.
//
// Errors
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexExists   - AddVertex re-add; the existing vertex is untouched.
//	ErrVertexNotFound - an edge endpoint is not a registered vertex.
//
// Concurrency
//
//	None. Callers that share a graph across goroutines must serialize access
//	externally.
package weighted
