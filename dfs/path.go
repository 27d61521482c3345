package dfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// FindPath returns a depth-first path from start to target, inclusive of both
// endpoints. The path is valid but not guaranteed shortest; use
// bfs.ShortestPath for minimum hop count.
//
// Discovery records a full path prefix per vertex. The predecessor's prefix
// is cloned before the new vertex is appended: sharing the underlying array
// would let one vertex's append clobber the tail of a sibling's path.
// Returns ErrStartVertexNotFound if start is absent and ErrPathNotFound if
// target is never discovered.
// Complexity: O(V + E) traversal, O(V²) worst-case path storage.
func FindPath(g *unweighted.Graph, start, target string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	// paths[v] is the discovered path start..v; presence doubles as the seen-set.
	paths := map[string][]string{start: {start}}
	stack := []string{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if v == target {
			return paths[v], nil
		}

		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %q: %w", v, err)
		}
		for _, nbr := range nbrs {
			if _, discovered := paths[nbr]; discovered {
				continue
			}
			p := make([]string, len(paths[v]), len(paths[v])+1)
			copy(p, paths[v])
			paths[nbr] = append(p, nbr)
			stack = append(stack, nbr)
		}
	}

	return nil, fmt.Errorf("%w: %q unreachable from %q", ErrPathNotFound, target, start)
}
