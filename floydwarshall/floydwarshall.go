// Package floydwarshall implements the Floyd-Warshall all-pairs
// shortest-path algorithm over the weighted.Graph vertex catalog.
package floydwarshall

import (
	"errors"
	"math"

	"github.com/katalvlaran/adjax/weighted"
)

// ErrNilGraph indicates that a nil *weighted.Graph was passed to Distances.
var ErrNilGraph = errors.New("floydwarshall: graph is nil")

// Distances returns the all-pairs shortest-distance table for g.
// dist[i][j] is the cheapest route weight from i to j, math.Inf(1) when j is
// unreachable from i, and 0 on the diagonal. An empty graph yields an empty
// table.
// Complexity: O(V³) time, O(V²) memory.
func Distances(g *weighted.Graph) (map[string]map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.VertexIDs()
	dist := make(map[string]map[string]float64, len(ids))

	// Seed: zero diagonal, direct edge weights, +Inf elsewhere.
	for _, i := range ids {
		row := make(map[string]float64, len(ids))
		for _, j := range ids {
			row[j] = math.Inf(1)
		}
		row[i] = 0
		dist[i] = row
	}
	for _, e := range g.Edges() {
		// A self-loop never improves on the zero diagonal; neighbor records
		// are unique per target, so no min against an earlier weight is needed.
		if e.Weight < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Weight
		}
	}

	// Relax through every intermediate vertex k.
	for _, k := range ids {
		for _, i := range ids {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for _, j := range ids {
				if cand := ik + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	return dist, nil
}
