package bfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// IsBipartite reports whether g is 2-colorable: no edge may connect two
// vertices of the same color. Every component is checked — a fresh BFS
// coloring is started from each still-uncolored vertex, in insertion order —
// so vertices unreachable from the first vertex are not vacuously accepted.
// An empty graph is bipartite.
// Complexity: O(V + E) directed, O(V·(V+E)) undirected.
func IsBipartite(g *unweighted.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	colors := make(map[string]bool, g.VertexCount())

	for _, root := range g.Vertices() {
		if _, colored := colors[root]; colored {
			continue
		}
		colors[root] = true
		queue := []string{root}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			nbrs, err := g.Neighbors(v)
			if err != nil {
				return false, fmt.Errorf("bfs: neighbors of %q: %w", v, err)
			}
			for _, nbr := range nbrs {
				c, colored := colors[nbr]
				if !colored {
					colors[nbr] = !colors[v]
					queue = append(queue, nbr)
					continue
				}
				if c == colors[v] {
					// Same color on both endpoints: an odd cycle exists.
					return false, nil
				}
			}
		}
	}

	return true, nil
}
