// Package bfs provides breadth-first algorithms over an unweighted.Graph:
// traversal with visit hooks, fewest-hop shortest paths, distance layering,
// bipartiteness testing, and connected components.
//
// What
//
//   - BFS: explore every vertex reachable from a start vertex in
//     non-decreasing hop distance, each visited exactly once. Returns a
//     Result with the visit Order, per-vertex Depth, and Parent links.
//   - ShortestPath: the minimum-hop path between two vertices, tracking a
//     full path prefix per discovered vertex.
//   - VerticesAtDistance: exactly the vertices whose shortest hop distance
//     from the start equals n, with an early stop once the frontier passes n.
//   - IsBipartite: 2-colorability, checked across every component.
//   - ConnectedComponents: partition of the vertex set by repeated BFS.
//
// Determinism
//
//	unweighted.Graph enumerates vertices and neighbors in insertion order,
//	so visit sequences and tie-breaks are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per call on directed graphs; the undirected
//     reverse-implied neighbor scan makes each Neighbors call O(V + E),
//     giving O(V·(V + E)) worst case.
//   - Memory: O(V) for queue and bookkeeping maps; ShortestPath stores path
//     prefixes, O(V²) worst case.
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrPathNotFound, ErrNegativeDistance,
//	or any error returned by an OnVisit hook.
package bfs
