package bfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// queueItem pairs a vertex ID with its hop depth from the start.
type queueItem struct {
	id    string
	depth int
}

// BFS runs breadth-first search on g starting from start.
// Every reachable vertex is visited exactly once, in non-decreasing hop
// distance; a seen-set guarantees each vertex is enqueued at most once.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, or any
// error returned by an OnVisit hook.
// Complexity: O(V + E) directed, O(V·(V+E)) undirected (see package doc).
func BFS(g *unweighted.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}

	seen := map[string]bool{start: true}
	queue := []queueItem{{id: start, depth: 0}}
	res.Depth[start] = 0

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		res.Order = append(res.Order, item.id)
		if err := o.OnVisit(item.id, item.depth); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}

		nbrs, err := g.Neighbors(item.id)
		if err != nil {
			// Edge targets are unvalidated at insertion time; a dangling
			// target surfaces here as a lookup failure.
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range nbrs {
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			res.Depth[nbr] = item.depth + 1
			res.Parent[nbr] = item.id
			queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}
