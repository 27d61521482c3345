package weighted

import "fmt"

// AddVertex registers a new vertex entity under id.
// Returns ErrEmptyVertexID for "" and ErrVertexExists when id is already
// registered; the existing vertex is left untouched in that case.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return ErrVertexExists
	}
	g.vertices[id] = &Vertex{id: id, weights: make(map[string]float64)}
	g.order = append(g.order, id)

	return nil
}

// Vertex returns the vertex entity registered under id, if any.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether id is registered in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// AddEdge records v as u's neighbor with the given weight. Both endpoints
// must already be registered; a missing one fails with ErrVertexNotFound and
// leaves the graph unchanged. For undirected graphs the mirror entry v→u is
// inserted with the same weight. A duplicate neighbor is a no-op with the
// first weight winning (the mirror follows the same rule per endpoint).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	from, ok := g.vertices[u]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %q", ErrVertexNotFound, u)
	}
	to, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("%w: edge endpoint %q", ErrVertexNotFound, v)
	}

	from.addNeighbor(v, weight)
	if !g.directed {
		to.addNeighbor(u, weight)
	}

	return nil
}

// Vertices returns all vertex entities in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.vertices[id])
	}

	return out
}

// VertexIDs returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Edges returns every directed neighbor record in the graph: vertices in
// insertion order, each vertex's records in neighbor insertion order. For
// undirected graphs each edge appears twice, once per endpoint — consumers
// like Kruskal rely on union-find to skip the mirror copy.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, id := range g.order {
		out = append(out, g.vertices[id].Edges()...)
	}

	return out
}
