// Package adjax is a compact toolbox of classical graph algorithms over
// two adjacency-list representations: an unweighted graph and a weighted one.
//
// 🚀 What is adjax?
//
//	A small, dependency-free library for the "build once, analyze many" workflow:
//		• unweighted/    — adjacency-list graph: directed or undirected, no weights
//		• bfs/           — traversal, fewest-hop paths, layering, bipartiteness, components
//		• dfs/           — iterative path finding, cycle detection, topological sort
//		• weighted/      — vertex entities carrying per-neighbor edge weights
//		• dijkstra/      — single-pair shortest distance
//		• floydwarshall/ — all-pairs shortest distances
//		• mst/           — minimum spanning trees: Kruskal and Prim
//		• graphio/       — legacy textual graph format reader
//
// ✨ Why choose adjax?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – vertex insertion order drives every traversal and tie-break
//   - Pure Go – no cgo, no hidden deps
//   - Typed failures – every precondition violation is a sentinel error you can errors.Is
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/katalvlaran/adjax
package adjax
