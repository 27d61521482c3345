// Package dfs provides depth-first algorithms over an unweighted.Graph:
// path finding with an explicit stack, cycle detection, and topological sort.
//
// What
//
//   - FindPath: a depth-first (not necessarily shortest) path between two
//     vertices, discovered with an explicit stack and a per-vertex path
//     prefix map. Each prefix is cloned before extension, so recorded paths
//     never alias one another.
//   - HasCycle: three-color depth-first cycle detection, driven from every
//     component until a cycle is found or none remain.
//   - TopologicalSort: reversed post-order over all components of a directed
//     acyclic graph.
//
// All three are iterative: traversal state lives in an explicit frame stack,
// never in the call stack, so deep graphs cannot overflow recursion.
//
// Cycle semantics
//
//	HasCycle follows Neighbors, which resolves undirected edges
//	bidirectionally. In an undirected graph a single edge therefore reads as
//	the two-step walk u→v→u and reports a cycle; meaningful cycle queries are
//	directed-graph queries. TopologicalSort rejects undirected graphs outright.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) on directed graphs; undirected neighbor resolution
//     raises each Neighbors call to O(V + E).
//   - Memory: O(V) for frame stack and state maps; FindPath's path prefixes
//     are O(V²) worst case.
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrPathNotFound, ErrCycleDetected,
//	ErrUndirectedGraph.
package dfs
