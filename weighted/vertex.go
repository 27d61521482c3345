package weighted

// ID returns the unique identifier of this vertex.
func (v *Vertex) ID() string { return v.id }

// addNeighbor records to as a neighbor with the given weight.
// A duplicate target is a no-op: the first weight wins.
func (v *Vertex) addNeighbor(to string, weight float64) {
	if _, exists := v.weights[to]; exists {
		return
	}
	v.weights[to] = weight
	v.order = append(v.order, to)
}

// Neighbors returns the neighbor IDs of this vertex in insertion order.
// Complexity: O(deg).
func (v *Vertex) Neighbors() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)

	return out
}

// Weight returns the edge weight from this vertex to the given neighbor,
// and whether such a neighbor record exists.
// Complexity: O(1).
func (v *Vertex) Weight(to string) (float64, bool) {
	w, ok := v.weights[to]

	return w, ok
}

// Edges returns this vertex's neighbor records in insertion order.
// Complexity: O(deg).
func (v *Vertex) Edges() []Edge {
	out := make([]Edge, 0, len(v.order))
	for _, to := range v.order {
		out = append(out, Edge{From: v.id, To: to, Weight: v.weights[to]})
	}

	return out
}
