package bfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// ShortestPath returns the minimum-hop path from start to target, inclusive
// of both endpoints. Discovery extends a full path prefix per vertex: the
// predecessor's recorded path is cloned before the new vertex is appended,
// so no two entries share a backing array.
// Returns ErrStartVertexNotFound if start is absent and ErrPathNotFound if
// target is never reached. A path from a vertex to itself is [start].
// Complexity: O(V + E) traversal; path prefixes cost O(V²) memory worst case.
func ShortestPath(g *unweighted.Graph, start, target string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// paths[v] is the fewest-hop path start..v; presence doubles as the seen-set.
	paths := map[string][]string{start: {start}}
	queue := []string{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if v == target {
			break
		}

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", v, err)
		}
		for _, nbr := range nbrs {
			if _, discovered := paths[nbr]; discovered {
				continue
			}
			// Clone before extending; sharing the predecessor's slice would
			// let a later append overwrite a sibling's recorded path.
			p := make([]string, len(paths[v]), len(paths[v])+1)
			copy(p, paths[v])
			paths[nbr] = append(p, nbr)
			queue = append(queue, nbr)
		}
	}

	path, ok := paths[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q unreachable from %q", ErrPathNotFound, target, start)
	}

	return path, nil
}

// VerticesAtDistance returns exactly the vertices whose shortest hop distance
// from start equals n, in discovery order. BFS processes vertices in
// non-decreasing distance, so the walk stops as soon as a popped vertex lies
// beyond n: every vertex of the target layer has been collected by then.
// Returns ErrStartVertexNotFound if start is absent, ErrNegativeDistance for
// n < 0. VerticesAtDistance(g, v, 0) is always [v].
// Complexity: O(V + E) bounded by the first n+1 BFS layers.
func VerticesAtDistance(g *unweighted.Graph, start string, n int) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDistance, n)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	var layer []string
	dist := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if dist[v] == n {
			layer = append(layer, v)
		} else if dist[v] > n {
			break
		}

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", v, err)
		}
		for _, nbr := range nbrs {
			if _, discovered := dist[nbr]; discovered {
				continue
			}
			dist[nbr] = dist[v] + 1
			queue = append(queue, nbr)
		}
	}

	return layer, nil
}
