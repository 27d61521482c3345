package unweighted

// AddVertex registers id with an empty neighbor sequence.
// Re-adding an existing vertex resets its neighbors to empty.
// Returns ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.adj[id]; !exists {
		g.order = append(g.order, id)
	}
	g.adj[id] = nil

	return nil
}

// AddEdge appends end to start's neighbor sequence.
// The reverse entry is never stored, even for undirected graphs; Neighbors
// resolves undirectedness at query time. Duplicate calls append duplicate
// entries. end is not validated and may name a vertex added later.
// Returns ErrVertexNotFound if start is absent.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(start, end string) error {
	if _, ok := g.adj[start]; !ok {
		return ErrVertexNotFound
	}
	g.adj[start] = append(g.adj[start], end)

	return nil
}

// HasVertex reports whether id is registered in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether end appears in start's stored neighbor sequence.
// Only the forward direction is consulted, matching the storage model.
// Returns ErrVertexNotFound if start is absent.
// Complexity: O(deg(start)).
func (g *Graph) HasEdge(start, end string) (bool, error) {
	nbrs, ok := g.adj[start]
	if !ok {
		return false, ErrVertexNotFound
	}
	for _, n := range nbrs {
		if n == end {
			return true, nil
		}
	}

	return false, nil
}

// Neighbors returns the neighbors of id.
//
// Directed graphs: a copy of the stored adjacency sequence, edge insertion
// order and duplicates preserved.
//
// Undirected graphs: every vertex whose stored list mentions id (reverse-implied
// neighbors, in vertex insertion order), followed by id's own stored list.
// Each stored edge is thereby treated as bidirectional without ever mutating
// the adjacency lists.
//
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg) directed, O(V + E) undirected.
func (g *Graph) Neighbors(id string) ([]string, error) {
	own, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	if g.directed {
		out := make([]string, len(own))
		copy(out, own)

		return out, nil
	}

	// Reverse-implied neighbors first, in vertex insertion order.
	var out []string
	for _, v := range g.order {
		for _, n := range g.adj[v] {
			if n == id {
				out = append(out, v)
				break
			}
		}
	}
	out = append(out, own...)

	return out, nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }
