// Package graphio reads the legacy textual graph format into an
// unweighted.Graph.
//
// What:
//
//	A three-section line format, kept for compatibility with existing
//	graph files:
//
//	  line 1:  "G" (undirected) or "D" (directed)
//	  line 2:  comma-separated vertex ids
//	  line 3+: one bracket-wrapped edge pair per line, e.g. (A,B)
//
//	The pair syntax assumes single-character vertex ids: after splitting
//	on the comma, the second character of the first field and the first
//	character of the second field are the endpoint ids. New formats
//	should not propagate this convention.
//
// Determinism:
//
//	Vertices and edges enter the graph in file order, so every
//	insertion-order guarantee of unweighted.Graph carries over.
//
// Errors:
//
//	ErrMalformedInput for any structural deviation (bad header, missing
//	vertex line, unparseable pair), wrapped with the offending line.
//	Edge lines naming an unknown start vertex surface
//	unweighted.ErrVertexNotFound.
//
// See Read and ReadFile for usage.
package graphio
