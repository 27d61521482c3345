package dfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// frame is one explicit-stack entry: a vertex and the index of the next
// neighbor to examine. Neighbors are fetched once, on push.
type frame struct {
	id   string
	nbrs []string
	next int
}

// HasCycle reports whether g contains a cycle. Traversal is three-color
// depth-first with an explicit stack, restarted from every still-white
// vertex in insertion order, so cycles confined to later components are
// found too. An edge back to a gray vertex (one still on the stack) proves
// a cycle.
//
// Neighbor resolution follows the graph's directedness: in an undirected
// graph every edge is walkable both ways, so any edge at all constitutes a
// cycle (see the package documentation).
// Complexity: O(V + E) directed, O(V·(V+E)) undirected.
func HasCycle(g *unweighted.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	state := make(map[string]int, g.VertexCount())

	for _, root := range g.Vertices() {
		if state[root] != white {
			continue
		}
		found, err := cycleFrom(g, root, state)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// cycleFrom runs one depth-first walk rooted at root, reporting whether a
// gray back-edge was seen.
func cycleFrom(g *unweighted.Graph, root string, state map[string]int) (bool, error) {
	nbrs, err := g.Neighbors(root)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", root, err)
	}
	state[root] = gray
	stack := []frame{{id: root, nbrs: nbrs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.nbrs) {
			state[top.id] = black
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		switch state[nbr] {
		case gray:
			return true, nil
		case white:
			nn, err := g.Neighbors(nbr)
			if err != nil {
				return false, fmt.Errorf("dfs: neighbors of %q: %w", nbr, err)
			}
			state[nbr] = gray
			stack = append(stack, frame{id: nbr, nbrs: nn})
		}
	}

	return false, nil
}
