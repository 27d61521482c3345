// Package dijkstra computes the single-pair shortest distance on a
// weighted.Graph with non-negative edge weights.
//
// What
//
//   - ShortestDistance(g, start, target): total weight of the cheapest route
//     from start to target, or +Inf when no route exists.
//
// How
//
//	Classic Dijkstra over an unsettled-vertex pool: distances start at +Inf
//	except the start (0); each round extracts the minimum-distance unsettled
//	vertex by a linear scan in vertex insertion order (no priority queue —
//	ties break deterministically toward the earlier-inserted vertex), settles
//	it, and relaxes its neighbors with dist[u] + weight(u,v). The walk stops
//	the moment the target itself is extracted: at that point its distance is
//	final.
//
// Preconditions
//
//	Both endpoints must be registered (ErrVertexNotFound) and every edge
//	weight must be non-negative (ErrNegativeWeight, detected by an upfront
//	scan that fails fast before any relaxation).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V² + E) — V linear-scan extractions of O(V) plus one
//     relaxation per edge.
//   - Memory: O(V).
package dijkstra
