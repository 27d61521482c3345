package bfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// ConnectedComponents partitions the vertex set: each component is explored
// by BFS from the first not-yet-visited vertex in insertion order, and every
// vertex appears in exactly one component. Components are listed in the order
// their first vertex was inserted; vertices within a component appear in
// discovery order.
//
// Exploration follows Neighbors, so undirected graphs are traversed
// bidirectionally while directed graphs yield forward-reachability sets.
// Complexity: O(V + E) directed, O(V·(V+E)) undirected.
func ConnectedComponents(g *unweighted.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	visited := make(map[string]bool, g.VertexCount())
	var components [][]string

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		visited[root] = true
		component := []string{root}
		queue := []string{root}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			nbrs, err := g.Neighbors(v)
			if err != nil {
				return nil, fmt.Errorf("bfs: neighbors of %q: %w", v, err)
			}
			for _, nbr := range nbrs {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				component = append(component, nbr)
				queue = append(queue, nbr)
			}
		}
		components = append(components, component)
	}

	return components, nil
}
