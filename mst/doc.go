// Package mst builds minimum spanning trees over an undirected
// weighted.Graph, via Kruskal or Prim.
//
// What
//
//   - Kruskal: sorts every edge record by ascending weight and greedily
//     accepts edges whose endpoints lie in different union-find sets, until
//     |V|-1 edges are accepted. Returns the accepted edge set and its total
//     weight. Undirected graphs surface each edge twice in Edges() (once per
//     endpoint); the mirror copy is naturally rejected because both
//     endpoints are already unioned by the first copy.
//   - Prim: grows the tree from the first-inserted vertex, maintaining the
//     best known edge weight from the growing tree to each outside vertex,
//     extracting the minimum by linear scan each round. Returns the total
//     tree weight only.
//
// Both report ErrDisconnected instead of under-counting or looping when no
// spanning tree exists, and both treat a single-vertex graph as a trivial
// tree of weight zero.
//
// Determinism
//
//	Kruskal's sort is stable over the insertion-ordered edge list and Prim
//	scans in vertex insertion order, so equal-weight ties resolve the same
//	way on every run. The two algorithms always agree on total weight, and
//	on the edge set itself up to equal-weight exchanges.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Kruskal: O(E log E) time for the sort, near-O(E) union-find.
//   - Prim:    O(V² + E) time — linear-scan extraction, no heap.
//
// Errors
//
//	ErrInvalidGraph, ErrDisconnected.
package mst
