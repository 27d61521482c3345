package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/adjax/weighted"
)

// ShortestDistance returns the total weight of the cheapest route from start
// to target. An unreachable target yields math.Inf(1) with a nil error.
// Returns ErrNilGraph, ErrVertexNotFound for a missing endpoint, or
// ErrNegativeWeight when the upfront edge scan finds a negative weight.
// Complexity: O(V² + E) time, O(V) memory.
func ShortestDistance(g *weighted.Graph, start, target string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return 0, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.HasVertex(target) {
		return 0, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}

	// Fail fast on negative weights before any relaxation happens.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return 0, fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// ids fixes the scan order; the unsettled pool shrinks as vertices settle.
	ids := g.VertexIDs()
	dist := make(map[string]float64, len(ids))
	unsettled := make(map[string]bool, len(ids))
	for _, id := range ids {
		dist[id] = math.Inf(1)
		unsettled[id] = true
	}
	dist[start] = 0

	for len(unsettled) > 0 {
		u := extractMin(ids, dist, unsettled)

		// The minimum unsettled distance is final; once the target is
		// extracted no shorter route can appear.
		if u == target {
			return dist[u], nil
		}
		delete(unsettled, u)

		if math.IsInf(dist[u], 1) {
			// Everything left is unreachable.
			continue
		}

		v, _ := g.Vertex(u)
		for _, e := range v.Edges() {
			if !unsettled[e.To] {
				continue
			}
			if cand := dist[u] + e.Weight; cand < dist[e.To] {
				dist[e.To] = cand
			}
		}
	}

	return dist[target], nil
}

// extractMin returns the unsettled vertex with the smallest tentative
// distance, scanning in vertex insertion order so ties are deterministic.
func extractMin(ids []string, dist map[string]float64, unsettled map[string]bool) string {
	min := ""
	for _, id := range ids {
		if !unsettled[id] {
			continue
		}
		if min == "" || dist[id] < dist[min] {
			min = id
		}
	}

	return min
}
