package mst

import (
	"math"

	"github.com/katalvlaran/adjax/weighted"
)

// Prim computes the total weight of the minimum spanning tree of an
// undirected weighted graph, growing from the first-inserted vertex.
//
// A best-known-weight map starts at +Inf for every vertex except the start
// (0). Each round extracts the minimum-weight outside vertex by a linear
// scan in vertex insertion order, adds its weight to the running total, and
// relaxes its neighbors with the raw edge weight (tree-to-vertex cost, not a
// path distance). An extraction at +Inf proves no edge crosses from the
// tree to the remainder: the graph is disconnected.
//
// Returns ErrInvalidGraph for nil or directed graphs and ErrDisconnected
// when the graph admits no spanning tree. An empty graph is disconnected by
// convention; a single vertex yields weight zero.
// Complexity: O(V² + E) time, O(V) memory.
func Prim(g *weighted.Graph) (float64, error) {
	if g == nil || g.Directed() {
		return 0, ErrInvalidGraph
	}

	ids := g.VertexIDs()
	if len(ids) == 0 {
		return 0, ErrDisconnected
	}

	best := make(map[string]float64, len(ids))
	outside := make(map[string]bool, len(ids))
	for _, id := range ids {
		best[id] = math.Inf(1)
		outside[id] = true
	}
	best[ids[0]] = 0

	var total float64
	for len(outside) > 0 {
		u := minOutside(ids, best, outside)
		if math.IsInf(best[u], 1) {
			return 0, ErrDisconnected
		}
		total += best[u]
		delete(outside, u)

		v, _ := g.Vertex(u)
		for _, e := range v.Edges() {
			if outside[e.To] && e.Weight < best[e.To] {
				best[e.To] = e.Weight
			}
		}
	}

	return total, nil
}

// minOutside returns the outside vertex with the smallest best-known weight,
// scanning in vertex insertion order so ties are deterministic.
func minOutside(ids []string, best map[string]float64, outside map[string]bool) string {
	min := ""
	for _, id := range ids {
		if !outside[id] {
			continue
		}
		if min == "" || best[id] < best[min] {
			min = id
		}
	}

	return min
}
