package dfs

import (
	"fmt"

	"github.com/katalvlaran/adjax/unweighted"
)

// TopologicalSort computes a linear ordering of all vertices in a directed
// acyclic graph such that for every edge u→v, u appears before v.
//
// The walk is iterative post-order depth-first, restarted from every
// still-white vertex in insertion order, then reversed. A gray back-edge
// aborts with ErrCycleDetected — a cyclic graph admits no ordering.
// Undirected graphs are rejected with ErrUndirectedGraph.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g *unweighted.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	state := make(map[string]int, g.VertexCount())
	order := make([]string, 0, g.VertexCount())

	for _, root := range g.Vertices() {
		if state[root] != white {
			continue
		}
		if err := postorderFrom(g, root, state, &order); err != nil {
			return nil, err
		}
	}

	// Reverse post-order to produce the topological order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// postorderFrom runs one depth-first walk rooted at root, appending each
// vertex to order after all its descendants are fully explored.
func postorderFrom(g *unweighted.Graph, root string, state map[string]int, order *[]string) error {
	nbrs, err := g.Neighbors(root)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", root, err)
	}
	state[root] = gray
	stack := []frame{{id: root, nbrs: nbrs}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.nbrs) {
			state[top.id] = black
			*order = append(*order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.nbrs[top.next]
		top.next++

		switch state[nbr] {
		case gray:
			return ErrCycleDetected
		case white:
			nn, err := g.Neighbors(nbr)
			if err != nil {
				return fmt.Errorf("dfs: neighbors of %q: %w", nbr, err)
			}
			state[nbr] = gray
			stack = append(stack, frame{id: nbr, nbrs: nn})
		}
	}

	return nil
}
